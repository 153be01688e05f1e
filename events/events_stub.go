//go:build !wasm
// +build !wasm

package events

import "github.com/vcrobe/nojs-effects/vdom"

// Native builds keep handlers as plain Go funcs so headless hosts and tests
// can fire them directly. The browser adapters live in events.go.

// AdaptNoArgEvent returns handler unchanged.
func AdaptNoArgEvent(handler func()) func() {
	return handler
}

// AdaptChangeEvent returns handler unchanged.
func AdaptChangeEvent(handler func(ChangeEventArgs)) func(ChangeEventArgs) {
	return handler
}

// AdaptSubmitEvent returns handler unchanged.
func AdaptSubmitEvent(handler func()) func() {
	return handler
}

// AdaptNavigateEvent returns handler unchanged.
func AdaptNavigateEvent(handler func()) func() {
	return handler
}

// Click fires the click handler of n. It reports whether n had one.
func Click(n *vdom.VNode) bool {
	if n == nil {
		return false
	}
	if n.OnClick != nil {
		n.OnClick()
		return true
	}
	if h, ok := n.Attributes["onClick"].(func()); ok {
		h()
		return true
	}
	return false
}

// Input fires the onInput handler of n, falling back to onChange, with value
// as the new field value. The node's Content is updated first, the way the
// browser updates the element before dispatching the event.
func Input(n *vdom.VNode, value string) bool {
	if n == nil {
		return false
	}
	for _, key := range []string{"onInput", "onChange"} {
		if h, ok := n.Attributes[key].(func(ChangeEventArgs)); ok {
			n.Content = value
			h(ChangeEventArgs{Value: value})
			return true
		}
	}
	return false
}

// Submit fires the onSubmit handler of a form node.
func Submit(n *vdom.VNode) bool {
	if n == nil {
		return false
	}
	if h, ok := n.Attributes["onSubmit"].(func()); ok {
		h()
		return true
	}
	return false
}
