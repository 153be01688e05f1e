//go:build !wasm
// +build !wasm

package vdom

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func greetingTree() *VNode {
	return Div(nil,
		Form(map[string]any{"onSubmit": func() {}},
			Label("Name: ", map[string]any{"for": "name"}),
			InputText("Ada", map[string]any{"id": "name", "onInput": func(string) {}}),
		),
		Strong("Hello Ada"),
		Div(nil, Text("Stored: Ada")),
	)
}

// TestRenderHTML_DropsHandlersAndOrdersAttributes verifies that event handlers
// never reach the output and attributes are written in key order.
func TestRenderHTML_DropsHandlersAndOrdersAttributes(t *testing.T) {
	got, err := HTMLString(greetingTree())
	if err != nil {
		t.Fatalf("HTMLString returned error: %v", err)
	}

	want := `<div><form><label for="name">Name: </label>` +
		`<input id="name" type="text" value="Ada"/></form>` +
		`<strong>Hello Ada</strong><div>Stored: Ada</div></div>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HTML mismatch (-want +got):\n%s", diff)
	}
}

// TestRenderHTML_BooleanAttributes verifies true booleans render bare and
// false booleans are omitted.
func TestRenderHTML_BooleanAttributes(t *testing.T) {
	enabled := Button("Submit", map[string]any{"type": "submit", "disabled": false})
	disabled := Button("Submit", map[string]any{"type": "submit", "disabled": true})

	got, _ := HTMLString(enabled)
	if got != `<button type="submit">Submit</button>` {
		t.Errorf("unexpected enabled button: %s", got)
	}
	got, _ = HTMLString(disabled)
	if got != `<button disabled="" type="submit">Submit</button>` {
		t.Errorf("unexpected disabled button: %s", got)
	}
}

// TestRenderHTML_EscapesText verifies text and attribute values are escaped.
func TestRenderHTML_EscapesText(t *testing.T) {
	n := Div(map[string]any{"title": `"quoted"`}, Text("<script>alert(1)</script>"))
	got, err := HTMLString(n)
	if err != nil {
		t.Fatalf("HTMLString returned error: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("text was not escaped: %s", got)
	}
	if !strings.Contains(got, `title="&#34;quoted&#34;"`) {
		t.Errorf("attribute was not escaped: %s", got)
	}
}

// TestRenderText_Layout verifies block elements break lines and inline
// elements stay on the same line.
func TestRenderText_Layout(t *testing.T) {
	got := RenderText(greetingTree(), TextOptions{})
	want := "Name: [Ada]\nHello Ada\nStored: Ada"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
}

// TestRenderText_Decorate verifies the decorator can restyle and hide elements.
func TestRenderText_Decorate(t *testing.T) {
	got := RenderText(greetingTree(), TextOptions{
		Decorate: func(n *VNode, text string) string {
			switch n.Tag {
			case "input", "label":
				return ""
			case "strong":
				return strings.ToUpper(text)
			}
			return text
		},
	})
	want := "HELLO ADA\nStored: Ada"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
}

// TestQueries verifies the lookup helpers used by hosts and tests.
func TestQueries(t *testing.T) {
	tree := greetingTree()

	input := tree.FindByID("name")
	if input == nil || input.Tag != "input" {
		t.Fatalf("FindByID(name) = %v", input)
	}
	if input.Attr("type") != "text" {
		t.Errorf("expected type=text, got %q", input.Attr("type"))
	}
	if tree.FindByTag("strong").Content != "Hello Ada" {
		t.Errorf("FindByTag(strong) returned wrong node")
	}
	if n := tree.FindByAttr("role", "alert"); n != nil {
		t.Errorf("expected no alert node, got %v", n)
	}

	divs := tree.FindAll(func(n *VNode) bool { return n.Tag == "div" })
	if len(divs) != 2 {
		t.Errorf("expected 2 divs, got %d", len(divs))
	}

	if got := tree.TextContent(); got != "Name: Hello AdaStored: Ada" {
		t.Errorf("unexpected TextContent %q", got)
	}
}

// TestNewVNode_ExtractsClickHandler verifies a func() onClick attribute is
// moved to the OnClick field.
func TestNewVNode_ExtractsClickHandler(t *testing.T) {
	clicked := false
	b := Button("Go", map[string]any{"onClick": func() { clicked = true }})
	if _, ok := b.Attributes["onClick"]; ok {
		t.Fatalf("onClick should be removed from attributes")
	}
	b.OnClick()
	if !clicked {
		t.Errorf("OnClick did not call the handler")
	}
}

// TestHeading_ClampsLevel verifies out-of-range levels are clamped.
func TestHeading_ClampsLevel(t *testing.T) {
	if h := Heading(0, "x"); h.Tag != "h1" {
		t.Errorf("expected h1, got %s", h.Tag)
	}
	if h := Heading(9, "x"); h.Tag != "h6" {
		t.Errorf("expected h6, got %s", h.Tag)
	}
}
