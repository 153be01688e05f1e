//go:build js || wasm

package router

import (
	"syscall/js"

	"github.com/vcrobe/nojs-effects/console"
)

var popstateListener js.Func

// Start wires the Router to the browser history and navigates to the current
// location. Back and forward buttons navigate without pushing a new entry.
func (r *Router) Start() error {
	r.mu.Lock()
	r.pushState = func(path string) {
		js.Global().Get("history").Call("pushState", nil, "", path)
	}
	r.mu.Unlock()

	popstateListener = js.FuncOf(func(this js.Value, args []js.Value) any {
		path := js.Global().Get("location").Get("pathname").String()
		if err := r.navigate(path, false); err != nil {
			console.Error("[Router] popstate navigation failed:", err.Error())
		}
		return nil
	})
	js.Global().Call("addEventListener", "popstate", popstateListener)

	initialPath := js.Global().Get("location").Get("pathname").String()
	if initialPath == "" {
		initialPath = "/"
	}
	return r.navigate(initialPath, false)
}

// Cleanup removes the popstate listener.
func (r *Router) Cleanup() {
	if popstateListener.Truthy() {
		js.Global().Call("removeEventListener", "popstate", popstateListener)
		popstateListener.Release()
	}
}
