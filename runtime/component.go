package runtime

import "github.com/vcrobe/nojs-effects/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native builds.
// The Render method accepts the Renderer interface (not concrete type) so every
// renderer implementation can use it.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// ComponentFactory builds a component for a matched route.
type ComponentFactory func(params map[string]string) Component

// Initializer is implemented by components that need one-time setup.
// OnInit runs once per instance, before its first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that react to new props.
// OnParametersSet runs before every render, including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// PropUpdater is implemented by components that keep state across renders.
// When a parent re-renders, it builds a fresh value carrying the new props;
// the renderer keeps the existing instance and hands it the fresh value.
type PropUpdater interface {
	ApplyProps(source Component)
}

// AfterRenderer is implemented by components with side effects.
// OnAfterRender runs after every render of the instance has been committed,
// children before parents. firstRender is true on the first call only.
// Calling StateHasChanged from here schedules another render pass.
type AfterRenderer interface {
	OnAfterRender(firstRender bool)
}

// Cleaner is implemented by components that hold resources.
// OnDestroy runs once when the instance leaves the tree.
type Cleaner interface {
	OnDestroy()
}
