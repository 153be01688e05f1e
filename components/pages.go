package components

import (
	"github.com/vcrobe/nojs-effects/console"
	"github.com/vcrobe/nojs-effects/events"
	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/vdom"
)

// Exercise routes.
const (
	GreetingPath = "/exercise/02"
	PokemonPath  = "/exercise/06"
)

// Index links to both exercises.
type Index struct {
	runtime.ComponentBase
}

func (c *Index) navigate(path string) {
	if err := c.Navigate(path); err != nil {
		console.Error("Navigation failed:", err.Error())
	}
}

func (c *Index) Render(r runtime.Renderer) *vdom.VNode {
	link := func(path, title string) *vdom.VNode {
		return vdom.Li(nil, vdom.Anchor(path, title, map[string]any{
			"onClick": events.AdaptNavigateEvent(func() { c.navigate(path) }),
		}))
	}
	return vdom.Div(nil,
		vdom.Heading(1, "Effect exercises"),
		vdom.Ul(nil,
			link(GreetingPath, "02: persistent state"),
			link(PokemonPath, "06: HTTP requests"),
		),
	)
}

// NotFound is shown for unknown paths.
type NotFound struct {
	runtime.ComponentBase
	Path string
}

func (c *NotFound) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"role": "alert"},
		vdom.Heading(1, "Not found"),
		vdom.Paragraph("No page at "+c.Path, nil),
	)
}
