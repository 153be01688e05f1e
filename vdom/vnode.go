package vdom

// VNode represents a virtual DOM node.
type VNode struct {
	Tag          string         // The HTML tag name, or "#text" for a bare text node
	Attributes   map[string]any // The attributes of the node
	Children     []*VNode       // The child nodes
	Content      string         // Text content, or the value of an input element
	OnClick      func()         // Optional click event handler
	ComponentKey string         // Key of the component that produced this subtree, if any

	eventCallbacks []any
}

// TextTag is the tag used for bare text nodes.
const TextTag = "#text"

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				// Remove from attributes so it doesn't get rendered as an HTML attribute
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// AddEventCallback records a platform callback attached to the rendered element
// so it can be released when the node is discarded.
func (v *VNode) AddEventCallback(cb any) {
	v.eventCallbacks = append(v.eventCallbacks, cb)
}

// GetEventCallbacks returns the callbacks recorded with AddEventCallback.
func (v *VNode) GetEventCallbacks() []any {
	return v.eventCallbacks
}

// ClearEventCallbacks forgets all recorded callbacks.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return NewVNode(TextTag, nil, nil, content)
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// InputText returns a VNode representing an <input type="text"> element.
// The value is carried in Content.
func InputText(value string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = "text"
	return NewVNode("input", attrs, nil, value)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Button creates a <button> VNode with the given label and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// Form creates a <form> VNode.
func Form(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("form", attrs, children, "")
}

// Label creates a <label> VNode.
func Label(text string, attrs map[string]any) *VNode {
	return NewVNode("label", attrs, nil, text)
}

// Strong creates a <strong> VNode.
func Strong(text string) *VNode {
	return NewVNode("strong", nil, nil, text)
}

// Small creates a <small> VNode.
func Small(text string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("small", attrs, children, text)
}

// Span creates a <span> VNode.
func Span(text string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("span", attrs, children, text)
}

// Pre creates a <pre> VNode.
func Pre(text string, attrs map[string]any) *VNode {
	return NewVNode("pre", attrs, nil, text)
}

// Hr creates a <hr> VNode.
func Hr() *VNode {
	return NewVNode("hr", nil, nil, "")
}

// Img creates an <img> VNode.
func Img(src, alt string) *VNode {
	return NewVNode("img", map[string]any{"src": src, "alt": alt}, nil, "")
}

// Section creates a <section> VNode.
func Section(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("section", attrs, children, "")
}

// Heading creates an <h1>..<h6> VNode. Levels outside 1..6 are clamped.
func Heading(level int, text string, children ...*VNode) *VNode {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return NewVNode("h"+string(rune('0'+level)), nil, children, text)
}

// Sup creates a <sup> VNode.
func Sup(text string) *VNode {
	return NewVNode("sup", nil, nil, text)
}

// Ul creates a <ul> VNode.
func Ul(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("ul", attrs, children, "")
}

// Li creates a <li> VNode.
func Li(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("li", attrs, children, "")
}

// Anchor creates an <a> VNode linking to href.
func Anchor(href, text string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["href"] = href
	return NewVNode("a", attrs, nil, text)
}
