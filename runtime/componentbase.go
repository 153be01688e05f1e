package runtime

import (
	"fmt"

	"github.com/vcrobe/nojs-effects/console"
)

// ComponentBase is embedded by components. It holds the renderer the
// component is mounted in and gives it StateHasChanged, Dispatch and Navigate.
type ComponentBase struct {
	renderer Renderer
}

// SetRenderer is called by the renderer on every render of the instance.
func (b *ComponentBase) SetRenderer(r Renderer) {
	b.renderer = r
}

// GetRenderer returns the renderer the component is mounted in, or nil.
func (b *ComponentBase) GetRenderer() Renderer {
	return b.renderer
}

// StateHasChanged asks for a re-render. Inside a render pass, including
// after-render hooks, the request is folded into one more pass.
func (b *ComponentBase) StateHasChanged() {
	if b.renderer == nil {
		console.Error("StateHasChanged called, but renderer is nil (component not mounted?)")
		return
	}
	b.renderer.ReRender()
}

// Dispatch runs task on the renderer's execution context. Without a renderer
// the task runs immediately on the calling goroutine.
func (b *ComponentBase) Dispatch(task func()) {
	if b.renderer == nil {
		task()
		return
	}
	b.renderer.Dispatch(task)
}

// Navigate hands path to the renderer's NavigationManager.
func (b *ComponentBase) Navigate(path string) error {
	if b.renderer == nil {
		return fmt.Errorf("navigate called, but renderer is nil (component not mounted?)")
	}
	return b.renderer.Navigate(path)
}
