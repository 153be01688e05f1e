//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-effects/console"
)

// voidTags never carry children or text content.
var voidTags = map[string]bool{"input": true, "img": true, "hr": true, "br": true}

// releaseCallbacks releases all js.Func objects stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}
	for _, cb := range v.GetEventCallbacks() {
		if jsFunc, ok := cb.(js.Func); ok {
			jsFunc.Release()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}
	releaseCallbacks(v)
	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// Clear empties the mount element and releases the callbacks of the tree
// that was rendered into it.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}
	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}
	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}
	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	if el := createElement(n); el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func querySelector(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
	}
	return mount
}

// setAttributeValue sets an attribute on an element, handling boolean attributes and event handlers correctly.
func setAttributeValue(el js.Value, key string, value any) {
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
		// Reflect boolean state on the property too; disabled buttons rely on it.
		el.Set(key, boolVal)
		return
	}
	if _, ok := value.(func(js.Value)); ok {
		return
	}
	el.Call("setAttribute", key, value)
}

// attachEventListeners attaches handlers stored under "on*" attributes.
// "onClick" becomes a "click" listener, "onInput" an "input" listener, and so on.
func attachEventListeners(el js.Value, vnode *VNode) {
	for key, value := range vnode.Attributes {
		if !isEventAttribute(key) {
			continue
		}
		handler, ok := value.(func(js.Value))
		if !ok {
			continue
		}
		eventName := string(key[2]+('a'-'A')) + key[3:]
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				handler(args[0])
			}
			return nil
		})
		el.Call("addEventListener", eventName, cb)
		vnode.AddEventCallback(cb)
	}

	if vnode.OnClick != nil {
		onClick := vnode.OnClick
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			onClick()
			return nil
		})
		el.Call("addEventListener", "click", cb)
		vnode.AddEventCallback(cb)
	}
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n)

	switch {
	case n.Tag == "input" || n.Tag == "textarea":
		el.Set("value", n.Content)
	case voidTags[n.Tag]:
	default:
		if n.Content != "" {
			el.Call("appendChild", doc.Call("createTextNode", n.Content))
		}
		for _, child := range n.Children {
			if childEl := createElement(child); childEl.Truthy() {
				el.Call("appendChild", childEl)
			}
		}
	}
	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}
	mount := querySelector(mountSelector)
	if !mount.Truthy() {
		return
	}
	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}
	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)
	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	if parent := domElement.Get("parentNode"); parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	if oldVNode.ComponentKey != newVNode.ComponentKey || oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == TextTag {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	releaseCallbacks(oldVNode)
	attachEventListeners(domElement, newVNode)

	if newVNode.Tag == "input" || newVNode.Tag == "textarea" {
		// Leave a focused field alone so typing is not disturbed
		if !domElement.Call("matches", ":focus").Bool() &&
			domElement.Get("value").String() != newVNode.Content {
			domElement.Set("value", newVNode.Content)
		}
		return
	}
	if voidTags[newVNode.Tag] {
		return
	}

	// Content is rendered as a leading text node, so it takes part in child patching
	patchChildren(domElement, withContent(oldVNode), withContent(newVNode))
}

func withContent(n *VNode) []*VNode {
	if n.Content == "" {
		return n.Children
	}
	children := make([]*VNode, 0, len(n.Children)+1)
	children = append(children, Text(n.Content))
	return append(children, n.Children...)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists && !isEventAttribute(key) {
			domElement.Call("removeAttribute", key)
		}
	}
	for key, value := range newAttrs {
		if isEventAttribute(key) {
			continue
		}
		if old, ok := oldAttrs[key]; !ok || old != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldChildren = compact(oldChildren)
	newChildren = compact(newChildren)

	minLen := min(len(oldChildren), len(newChildren))
	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		if childElement := domChildren.Call("item", i); childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := len(oldChildren); i < len(newChildren); i++ {
		if newChild := createElement(newChildren[i]); newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := len(oldChildren) - 1; i >= len(newChildren); i-- {
		deepReleaseCallbacks(oldChildren[i])
		if childElement := domChildren.Call("item", i); childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}

// compact drops nil children, which conditional rendering produces.
func compact(nodes []*VNode) []*VNode {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n != nil && !(n.Tag == TextTag && n.Content == "") {
			out = append(out, n)
		}
	}
	return out
}
