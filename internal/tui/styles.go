//go:build !wasm

package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vcrobe/nojs-effects/vdom"
)

var (
	accent      = lipgloss.Color("#8BC34A")
	destructive = lipgloss.Color("#e53935")
	muted       = lipgloss.Color("#6b7280")
)

// Styles holds the lipgloss styles used to paint a rendered tree.
type Styles struct {
	Title    lipgloss.Style
	Strong   lipgloss.Style
	Heading  lipgloss.Style
	Alert    lipgloss.Style
	Faint    lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Prompt   lipgloss.Style
	Help     lipgloss.Style
	Spinner  lipgloss.Style
}

// DefaultStyles returns the styles used when none are configured.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Strong:   lipgloss.NewStyle().Bold(true),
		Heading:  lipgloss.NewStyle().Bold(true).Underline(true),
		Alert:    lipgloss.NewStyle().Foreground(destructive),
		Faint:    lipgloss.NewStyle().Faint(true),
		Button:   lipgloss.NewStyle().Foreground(accent),
		Disabled: lipgloss.NewStyle().Foreground(muted),
		Prompt:   lipgloss.NewStyle().Foreground(accent),
		Help:     lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		Spinner:  lipgloss.NewStyle().Foreground(accent),
	}
}

// PlainStyles returns styles that add no escape sequences, for tests and
// terminals without color.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title: plain, Strong: plain, Heading: plain, Alert: plain, Faint: plain,
		Button: plain, Disabled: plain, Prompt: plain, Help: plain, Spinner: plain,
	}
}

// Render renders a tree as terminal text painted with s.
func Render(n *vdom.VNode, s Styles) string {
	return vdom.RenderText(n, vdom.TextOptions{
		Decorate: func(n *vdom.VNode, text string) string { return s.decorate(n, text, nil) },
	})
}

// decorate paints one element. index numbers the buttons alt+N can press.
func (s Styles) decorate(n *vdom.VNode, text string, index map[*vdom.VNode]int) string {
	switch n.Tag {
	case "input", "textarea":
		if index == nil {
			return text
		}
		// The interactive field is drawn by the text input below the tree
		return ""
	case "strong":
		return s.Strong.Render(text)
	case "h1", "h2", "h3":
		return s.Heading.Render(text)
	case "small", "sup":
		return s.Faint.Render(text)
	case "button", "a":
		if disabled, _ := n.Attributes["disabled"].(bool); disabled {
			return s.Disabled.Render(text)
		}
		if i, ok := index[n]; ok && i <= 9 {
			text = strconv.Itoa(i) + ":" + text
		}
		return s.Button.Render(text)
	}
	if n.Attr("role") == "alert" {
		return s.Alert.Render(text)
	}
	return text
}
