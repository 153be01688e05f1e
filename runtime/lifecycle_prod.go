//go:build !dev
// +build !dev

package runtime

import "go.uber.org/zap"

// In production builds, panics in lifecycle methods are recovered and logged
// so one faulty component cannot take the application down.

func (t *tree) recoverHook(hook, key string) {
	if rec := recover(); rec != nil {
		t.logger.Error("lifecycle method panicked",
			zap.String("hook", hook),
			zap.String("component", key),
			zap.Any("panic", rec))
	}
}

func (t *tree) callOnInit(initializer Initializer, key string) {
	defer t.recoverHook("OnInit", key)
	initializer.OnInit()
}

func (t *tree) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer t.recoverHook("OnParametersSet", key)
	receiver.OnParametersSet()
}

func (t *tree) callOnAfterRender(hook AfterRenderer, key string, firstRender bool) {
	defer t.recoverHook("OnAfterRender", key)
	hook.OnAfterRender(firstRender)
}

func (t *tree) callOnDestroy(cleaner Cleaner, key string) {
	defer t.recoverHook("OnDestroy", key)
	cleaner.OnDestroy()
}
