package runtime

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vcrobe/nojs-effects/vdom"
)

// Compile-time assertion to ensure HeadlessRenderer implements the Renderer interface.
var _ Renderer = (*HeadlessRenderer)(nil)

// HeadlessRenderer renders components into an in-memory VDOM tree. It is the
// native counterpart of RendererImpl, used by the CLI and by tests.
//
// Rendering and dispatched tasks all run on the goroutine that drives the
// renderer (the one calling RenderRoot, RunPending, Await or RunUntil), which
// makes that goroutine the single execution context components rely on.
type HeadlessRenderer struct {
	tree       *tree
	tasks      chan func()
	navManager NavigationManager
	logger     *zap.Logger

	currentComponent Component
	currentKey       string
	current          *vdom.VNode
	renders          int
}

// HeadlessOption configures a HeadlessRenderer.
type HeadlessOption func(*HeadlessRenderer)

// WithLogger sets the logger used for lifecycle failures.
func WithLogger(l *zap.Logger) HeadlessOption {
	return func(h *HeadlessRenderer) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithTaskBuffer sets how many dispatched tasks may be queued before Dispatch blocks.
func WithTaskBuffer(n int) HeadlessOption {
	return func(h *HeadlessRenderer) {
		h.tasks = make(chan func(), n)
	}
}

// NewHeadlessRenderer creates a renderer with no output surface.
// navManager may be nil.
func NewHeadlessRenderer(navManager NavigationManager, opts ...HeadlessOption) *HeadlessRenderer {
	h := &HeadlessRenderer{
		tasks:      make(chan func(), 64),
		navManager: navManager,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.tree = newTree(h.logger)
	return h
}

// SetCurrentComponent sets the root component. Replacing the root with a
// different key destroys every instance of the previous tree.
func (h *HeadlessRenderer) SetCurrentComponent(comp Component, key string) {
	if h.currentComponent != nil && key != h.currentKey {
		h.tree.destroyAll()
	}
	h.currentComponent = comp
	h.currentKey = key
	comp.SetRenderer(h)
}

// RenderRoot renders the root component, runs after-render hooks and keeps
// rendering until the tree settles. It returns the resulting tree.
func (h *HeadlessRenderer) RenderRoot() *vdom.VNode {
	if h.currentComponent == nil {
		return nil
	}
	h.tree.render(h, h.currentKey, h.currentComponent, func(n *vdom.VNode) {
		h.current = n
		h.renders++
	})
	return h.current
}

// ReRender re-renders the root, or folds the request into the pass in progress.
func (h *HeadlessRenderer) ReRender() {
	if h.tree.requestRender() {
		return
	}
	h.RenderRoot()
}

// RenderChild implements Renderer.
func (h *HeadlessRenderer) RenderChild(key string, childWithProps Component) *vdom.VNode {
	return h.tree.renderChild(h, key, childWithProps)
}

// Navigate delegates to the NavigationManager.
func (h *HeadlessRenderer) Navigate(path string) error {
	if h.navManager == nil {
		return fmt.Errorf("no router configured for navigation")
	}
	return h.navManager.Navigate(path)
}

// Dispatch queues task. It may be called from any goroutine; the task runs
// when the driving goroutine calls RunPending, Await or RunUntil.
func (h *HeadlessRenderer) Dispatch(task func()) {
	h.tasks <- task
}

// Tasks exposes the dispatch queue to hosts that run their own event loop.
// A host that receives from it must run each task on the goroutine that
// drives rendering.
func (h *HeadlessRenderer) Tasks() <-chan func() {
	return h.tasks
}

// RunPending runs every queued task without blocking and returns how many ran.
func (h *HeadlessRenderer) RunPending() int {
	n := 0
	for {
		select {
		case task := <-h.tasks:
			task()
			n++
		default:
			return n
		}
	}
}

// Await blocks until at least one task has been dispatched, runs it together
// with anything else already queued, and returns. It fails when ctx is done first.
func (h *HeadlessRenderer) Await(ctx context.Context) error {
	select {
	case task := <-h.tasks:
		task()
		h.RunPending()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunUntil runs dispatched tasks until done reports true or ctx ends.
func (h *HeadlessRenderer) RunUntil(ctx context.Context, done func() bool) error {
	h.RunPending()
	for !done() {
		if err := h.Await(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Current returns the most recently rendered tree.
func (h *HeadlessRenderer) Current() *vdom.VNode {
	return h.current
}

// RenderCount returns how many render passes have been painted.
func (h *HeadlessRenderer) RenderCount() int {
	return h.renders
}

// Instances returns the number of mounted component instances.
func (h *HeadlessRenderer) Instances() int {
	return h.tree.size()
}

// Close destroys every mounted instance. Tasks still queued are discarded.
func (h *HeadlessRenderer) Close() {
	h.tree.destroyAll()
	for {
		select {
		case <-h.tasks:
		default:
			return
		}
	}
}
