package vdom

import (
	"fmt"
	"strings"
)

// Find returns the first node in depth-first pre-order for which match
// returns true, or nil.
func (v *VNode) Find(match func(*VNode) bool) *VNode {
	if v == nil {
		return nil
	}
	if match(v) {
		return v
	}
	for _, child := range v.Children {
		if found := child.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node for which match returns true, in depth-first
// pre-order.
func (v *VNode) FindAll(match func(*VNode) bool) []*VNode {
	var out []*VNode
	v.walk(func(n *VNode) {
		if match(n) {
			out = append(out, n)
		}
	})
	return out
}

func (v *VNode) walk(fn func(*VNode)) {
	if v == nil {
		return
	}
	fn(v)
	for _, child := range v.Children {
		child.walk(fn)
	}
}

// FindByTag returns the first node with the given tag.
func (v *VNode) FindByTag(tag string) *VNode {
	return v.Find(func(n *VNode) bool { return n.Tag == tag })
}

// FindByAttr returns the first node whose attribute key renders as value.
func (v *VNode) FindByAttr(key, value string) *VNode {
	return v.Find(func(n *VNode) bool {
		attr, ok := n.Attributes[key]
		return ok && fmt.Sprint(attr) == value
	})
}

// FindByID returns the node with the given id attribute.
func (v *VNode) FindByID(id string) *VNode {
	return v.FindByAttr("id", id)
}

// Attr returns the string form of an attribute, or "" when it is not set.
func (v *VNode) Attr(key string) string {
	if v == nil {
		return ""
	}
	attr, ok := v.Attributes[key]
	if !ok {
		return ""
	}
	return fmt.Sprint(attr)
}

// TextContent concatenates the text of the node and all its descendants, the
// way the DOM textContent property does. Input values are not included.
func (v *VNode) TextContent() string {
	var sb strings.Builder
	v.walk(func(n *VNode) {
		if n.Tag == "input" || n.Tag == "textarea" {
			return
		}
		sb.WriteString(n.Content)
	})
	return sb.String()
}
