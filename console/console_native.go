//go:build !wasm
// +build !wasm

package console

// Native builds have no browser console; messages go to the structured
// logger installed with SetLogger, which discards them by default.

// Log writes an informational message.
func Log(args ...any) {
	Logger().Sugar().Info(args...)
}

// Warn writes a warning.
func Warn(args ...any) {
	Logger().Sugar().Warn(args...)
}

// Error writes an error.
func Error(args ...any) {
	Logger().Sugar().Error(args...)
}
