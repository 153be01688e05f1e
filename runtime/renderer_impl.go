//go:build js || wasm
// +build js wasm

package runtime

import (
	"fmt"

	"github.com/vcrobe/nojs-effects/console"
	"github.com/vcrobe/nojs-effects/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the concrete browser implementation of the Renderer interface.
// It manages the component instance tree and patches the DOM under mountID.
type RendererImpl struct {
	tree             *tree
	currentComponent Component         // The currently active root component (set by router or directly)
	currentKey       string            // Key of the root component
	navManager       NavigationManager // Optional: router for client-side navigation
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
	tasks            chan func()
}

// NewRenderer creates a new runtime renderer.
// If navManager is provided, the renderer will support client-side routing.
// If navManager is nil, the renderer works without routing (useful for non-SPA apps).
func NewRenderer(navManager NavigationManager, mountID string) *RendererImpl {
	r := &RendererImpl{
		tree:       newTree(console.Logger()),
		navManager: navManager,
		mountID:    mountID,
		tasks:      make(chan func(), 64),
	}
	// Go/WASM runs every goroutine on the single JS thread, so draining here
	// serializes dispatched tasks with event handlers and renders.
	go r.drain()
	return r
}

func (r *RendererImpl) drain() {
	for task := range r.tasks {
		task()
	}
}

// SetCurrentComponent sets the component to be rendered.
// This is typically called by the router's onChange callback when navigation occurs.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	if r.currentComponent != nil && key != r.currentKey {
		r.tree.destroyAll()
	}
	r.currentComponent = comp
	r.currentKey = key
}

// RenderRoot starts the rendering process for the entire application.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}
	r.currentComponent.SetRenderer(r)
	r.tree.render(r, r.currentKey, r.currentComponent, r.paint)
}

// paint writes a freshly rendered tree to the DOM.
func (r *RendererImpl) paint(newVDOM *vdom.VNode) {
	if r.prevVDOM == nil || r.prevVDOM.ComponentKey != newVDOM.ComponentKey {
		// Initial render, or a different root: clear and render fresh
		vdom.Clear(r.mountID, r.prevVDOM)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}
	r.prevVDOM = newVDOM
}

// RenderChild is called by Render code to render a child component.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	return r.tree.renderChild(r, key, childWithProps)
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	if r.tree.requestRender() {
		return
	}
	r.RenderRoot()
}

// Dispatch queues task to run after the current event handler returns.
func (r *RendererImpl) Dispatch(task func()) {
	r.tasks <- task
}

// Navigate delegates to the NavigationManager (router) to perform client-side navigation.
// Returns an error if no router is configured.
func (r *RendererImpl) Navigate(path string) error {
	if r.navManager == nil {
		return fmt.Errorf("no router configured for navigation")
	}
	return r.navManager.Navigate(path)
}
