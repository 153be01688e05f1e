//go:build dev
// +build dev

package runtime

// In dev builds, panics in lifecycle methods propagate to aid debugging and fast failure.

func (t *tree) callOnInit(initializer Initializer, key string) {
	initializer.OnInit()
}

func (t *tree) callOnParametersSet(receiver ParameterReceiver, key string) {
	receiver.OnParametersSet()
}

func (t *tree) callOnAfterRender(hook AfterRenderer, key string, firstRender bool) {
	hook.OnAfterRender(firstRender)
}

func (t *tree) callOnDestroy(cleaner Cleaner, key string) {
	cleaner.OnDestroy()
}
