//go:build js || wasm

package console

import (
	"syscall/js"
)

func Log(args ...any) {
	js.Global().Get("console").Call("log", args...)
}

func Warn(args ...any) {
	js.Global().Get("console").Call("warn", args...)
}

func Error(args ...any) {
	js.Global().Get("console").Call("error", args...)
}
