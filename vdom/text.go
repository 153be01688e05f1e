package vdom

import (
	"strings"
)

// TextOptions controls RenderText.
type TextOptions struct {
	// Decorate, when set, receives every element together with its rendered
	// text and returns the text to emit. Returning "" hides the element.
	Decorate func(n *VNode, text string) string
}

var blockTags = map[string]bool{
	"div": true, "p": true, "form": true, "section": true, "article": true,
	"header": true, "footer": true, "main": true, "nav": true, "aside": true,
	"ul": true, "ol": true, "li": true, "pre": true, "hr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// RenderText renders the tree as plain text for terminals and logs. Block
// elements start on their own line, inputs show as [value], buttons as
// (label) and <hr> as a dashed rule. Blank lines are collapsed.
func RenderText(n *VNode, opts TextOptions) string {
	var sb strings.Builder
	writeText(&sb, n, opts)

	lines := strings.Split(sb.String(), "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimRight(line, " ")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func writeText(sb *strings.Builder, n *VNode, opts TextOptions) {
	if n == nil {
		return
	}

	var inner strings.Builder
	switch n.Tag {
	case TextTag:
		sb.WriteString(n.Content)
		return
	case "input", "textarea":
		inner.WriteString("[" + n.Content + "]")
	case "button":
		label := n.Content
		if label == "" {
			var child strings.Builder
			for _, c := range n.Children {
				writeText(&child, c, opts)
			}
			label = strings.TrimSpace(child.String())
		}
		inner.WriteString("(" + label + ")")
	case "hr":
		inner.WriteString("----------------")
	case "img":
		if alt := n.Attr("alt"); alt != "" {
			inner.WriteString("<" + alt + ">")
		}
	default:
		inner.WriteString(n.Content)
		for _, c := range n.Children {
			writeText(&inner, c, opts)
		}
	}

	text := inner.String()
	if n.Tag == "button" || n.Tag == "input" {
		text += " "
	}
	if opts.Decorate != nil {
		text = opts.Decorate(n, text)
	}
	if blockTags[n.Tag] {
		sb.WriteString("\n" + text + "\n")
		return
	}
	sb.WriteString(text)
}
