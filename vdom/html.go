package vdom

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML serializes the tree rooted at n as HTML. Event handlers are
// dropped, false boolean attributes are omitted and true ones are written
// with an empty value. Attributes are written in key order so the output is
// stable.
func RenderHTML(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}
	return html.Render(w, toHTMLNode(n))
}

// HTMLString is RenderHTML into a string.
func HTMLString(n *VNode) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toHTMLNode(n *VNode) *html.Node {
	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttributes(n),
	}

	switch n.Tag {
	case "input":
		// Content is the input's value, already emitted as an attribute
	case "textarea":
		if n.Content != "" {
			el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
		}
	default:
		if n.Content != "" {
			el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
		}
		for _, child := range n.Children {
			if child == nil {
				continue
			}
			el.AppendChild(toHTMLNode(child))
		}
	}
	return el
}

func htmlAttributes(n *VNode) []html.Attribute {
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]html.Attribute, 0, len(keys)+1)
	for _, k := range keys {
		if isEventAttribute(k) {
			continue
		}
		switch v := n.Attributes[k].(type) {
		case bool:
			if v {
				attrs = append(attrs, html.Attribute{Key: k})
			}
		case nil:
		default:
			attrs = append(attrs, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		}
	}
	if n.Tag == "input" && n.Content != "" {
		attrs = append(attrs, html.Attribute{Key: "value", Val: n.Content})
	}
	return attrs
}

// isEventAttribute reports whether key names an event handler ("onClick",
// "onInput", ...). Handlers never reach the serialized output.
func isEventAttribute(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on") && key[2] >= 'A' && key[2] <= 'Z'
}
