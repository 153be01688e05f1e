//go:build js || wasm

package events

import "syscall/js"

// AdaptNoArgEvent wraps a handler that ignores the DOM event.
func AdaptNoArgEvent(handler func()) func(js.Value) {
	return func(js.Value) {
		handler()
	}
}

// AdaptChangeEvent wraps a handler that wants the value of the event target.
func AdaptChangeEvent(handler func(ChangeEventArgs)) func(js.Value) {
	return func(e js.Value) {
		handler(ChangeEventArgs{Value: e.Get("target").Get("value").String()})
	}
}

// AdaptSubmitEvent wraps a form submit handler. The browser's default
// navigation is always prevented.
func AdaptSubmitEvent(handler func()) func(js.Value) {
	return func(e js.Value) {
		e.Call("preventDefault")
		handler()
	}
}

// AdaptNavigateEvent wraps a link click handler, preventing the browser from
// following the link itself.
func AdaptNavigateEvent(handler func()) func(js.Value) {
	return func(e js.Value) {
		e.Call("preventDefault")
		handler()
	}
}
