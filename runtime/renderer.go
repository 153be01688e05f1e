package runtime

import "github.com/vcrobe/nojs-effects/vdom"

// Renderer defines the minimal set of runtime operations used by Render() code.
// This interface has NO build tags, making it available to both WASM and native builds.
type Renderer interface {
	// RenderChild is used by Render code to render child components.
	// The key parameter uniquely identifies the component instance for state preservation.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()

	// Navigate performs client-side navigation to the given path.
	Navigate(path string) error

	// Dispatch runs task on the renderer's execution context, after any render
	// in progress. Background work (fetch goroutines, timers) must hand its
	// results to components through Dispatch; it is safe to call from any goroutine.
	Dispatch(task func())
}

// NavigationManager resolves navigation requests. The router implements it.
type NavigationManager interface {
	Navigate(path string) error
}
