package testcomponents

import (
	"context"
	"testing"
	"time"

	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/vdom"
)

// DefaultAwait bounds how long tests wait for background work to dispatch.
const DefaultAwait = 2 * time.Second

// TestRenderer is a minimal test harness for in-memory testing without
// browser or WASM dependencies. It wraps runtime.HeadlessRenderer, so
// components get the full lifecycle (OnInit, OnParametersSet, OnAfterRender,
// OnDestroy) and dispatched tasks run only when the test asks for them.
//
// It allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
// - Step through asynchronous completions deterministically
type TestRenderer struct {
	*runtime.HeadlessRenderer
	component runtime.Component
}

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	h := runtime.NewHeadlessRenderer(nil)
	h.SetCurrentComponent(comp, "__root__")
	return &TestRenderer{HeadlessRenderer: h, component: comp}
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.Current()
}

// MustAwait waits for the next dispatched task and runs it, failing the test
// if nothing arrives within DefaultAwait.
func (r *TestRenderer) MustAwait(t testing.TB) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), DefaultAwait)
	defer cancel()
	if err := r.Await(ctx); err != nil {
		t.Fatalf("no task dispatched within %s: %v", DefaultAwait, err)
	}
}

// MustRunUntil runs dispatched tasks until done reports true, failing the
// test after DefaultAwait.
func (r *TestRenderer) MustRunUntil(t testing.TB, done func() bool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), DefaultAwait)
	defer cancel()
	if err := r.RunUntil(ctx, done); err != nil {
		t.Fatalf("condition not reached within %s: %v", DefaultAwait, err)
	}
}
