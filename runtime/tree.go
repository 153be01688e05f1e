package runtime

import (
	"go.uber.org/zap"

	"github.com/vcrobe/nojs-effects/vdom"
)

// maxRenderPasses bounds how many times after-render hooks may request another
// pass before the renderer gives up on reaching a stable tree.
const maxRenderPasses = 32

type renderedInstance struct {
	key       string
	component Component
}

// tree is the part of a renderer that does not touch the platform: it owns
// the keyed component instances and drives their lifecycle. RendererImpl and
// HeadlessRenderer both delegate to it.
type tree struct {
	instances     map[string]Component
	activeKeys    map[string]bool // Components rendered in the current pass
	afterRendered map[string]bool // Components whose OnAfterRender has run at least once
	rendered      []renderedInstance
	logger        *zap.Logger

	rendering bool // A pass is running; ReRender requests are coalesced
	dirty     bool // Another pass was requested while rendering
}

func newTree(logger *zap.Logger) *tree {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &tree{
		instances:     make(map[string]Component),
		activeKeys:    make(map[string]bool),
		afterRendered: make(map[string]bool),
		logger:        logger,
	}
}

// requestRender records a render request. It returns true when a pass is in
// progress, in which case the request has been folded into it.
func (t *tree) requestRender() bool {
	if t.rendering {
		t.dirty = true
		return true
	}
	return false
}

// render runs render passes for root until no component asks for another one.
// paint receives every new tree before the after-render hooks of that pass run.
func (t *tree) render(r Renderer, key string, root Component, paint func(*vdom.VNode)) *vdom.VNode {
	if t.rendering {
		t.dirty = true
		return nil
	}
	t.rendering = true
	defer func() { t.rendering = false }()

	var out *vdom.VNode
	for pass := 1; ; pass++ {
		t.dirty = false
		t.activeKeys = make(map[string]bool)
		t.rendered = t.rendered[:0]

		out = t.renderChild(r, key, root)
		if out != nil && out.ComponentKey == "" {
			out.ComponentKey = key
		}
		if paint != nil {
			paint(out)
		}
		t.commit()

		if !t.dirty {
			return out
		}
		if pass >= maxRenderPasses {
			t.logger.Warn("render did not settle; dropping further passes",
				zap.String("root", key), zap.Int("passes", pass))
			t.dirty = false
			return out
		}
	}
}

// renderChild handles the core logic of instance creation and reuse.
func (t *tree) renderChild(r Renderer, key string, childWithProps Component) *vdom.VNode {
	t.activeKeys[key] = true

	instance, exists := t.instances[key]
	if !exists {
		// First time seeing this component at this location, so store the new instance.
		instance = childWithProps
		t.instances[key] = instance
	} else if instance != childWithProps {
		// Preserve the existing instance to keep state; copy the new props onto it.
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	instance.SetRenderer(r)

	if !exists {
		if initializer, ok := instance.(Initializer); ok {
			t.callOnInit(initializer, key)
		}
	}
	if receiver, ok := instance.(ParameterReceiver); ok {
		t.callOnParametersSet(receiver, key)
	}

	out := instance.Render(r)
	// Post-order: children are appended before their parent.
	t.rendered = append(t.rendered, renderedInstance{key: key, component: instance})
	return out
}

// commit destroys the instances that were not rendered in this pass and then
// runs the after-render hooks of the ones that were.
func (t *tree) commit() {
	for key, instance := range t.instances {
		if t.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(Cleaner); ok {
			t.callOnDestroy(cleaner, key)
		}
		delete(t.instances, key)
		delete(t.afterRendered, key)
	}

	rendered := append([]renderedInstance(nil), t.rendered...)
	for _, ri := range rendered {
		hook, ok := ri.component.(AfterRenderer)
		if !ok {
			continue
		}
		first := !t.afterRendered[ri.key]
		t.afterRendered[ri.key] = true
		t.callOnAfterRender(hook, ri.key, first)
	}
}

// destroyAll tears down every instance, e.g. when the root is replaced or the
// host shuts down.
func (t *tree) destroyAll() {
	for key, instance := range t.instances {
		if cleaner, ok := instance.(Cleaner); ok {
			t.callOnDestroy(cleaner, key)
		}
	}
	t.instances = make(map[string]Component)
	t.afterRendered = make(map[string]bool)
	t.activeKeys = make(map[string]bool)
	t.rendered = t.rendered[:0]
}

// size returns the number of live instances.
func (t *tree) size() int {
	return len(t.instances)
}
