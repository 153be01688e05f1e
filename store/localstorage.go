//go:build js || wasm

package store

import "syscall/js"

// LocalStorage is a Store backed by the browser's window.localStorage.
type LocalStorage struct{}

// Compile-time assertion to ensure LocalStorage implements Store.
var _ Store = LocalStorage{}

func localStorage() js.Value {
	return js.Global().Get("localStorage")
}

// Get implements Store.
func (LocalStorage) Get(key string) (string, bool, error) {
	v := localStorage().Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false, nil
	}
	return v.String(), true, nil
}

// Set implements Store. Quota errors surface as a panic from the JS bridge
// and are not recovered here.
func (LocalStorage) Set(key, value string) error {
	localStorage().Call("setItem", key, value)
	return nil
}

// Close implements Store; localStorage needs no cleanup.
func (LocalStorage) Close() error {
	return nil
}
