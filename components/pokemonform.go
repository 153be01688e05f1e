package components

import (
	"github.com/vcrobe/nojs-effects/events"
	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/vdom"
)

// QuickPicks are the names offered as one-click submissions.
var QuickPicks = []string{"pikachu", "charizard", "ninetales"}

// PokemonForm is a name field with a submit button and a few quick picks.
// The field follows PokemonName when the parent changes it.
type PokemonForm struct {
	runtime.ComponentBase

	// Props
	PokemonName string
	OnSubmit    func(name string)

	// Value is the field's current text.
	Value string

	externalName runtime.Effect[string]
}

func (c *PokemonForm) OnInit() {
	c.Value = c.PokemonName
}

func (c *PokemonForm) ApplyProps(source runtime.Component) {
	if s, ok := source.(*PokemonForm); ok {
		c.PokemonName = s.PokemonName
		c.OnSubmit = s.OnSubmit
	}
}

func (c *PokemonForm) OnAfterRender(firstRender bool) {
	c.externalName.Run(c.PokemonName, func() {
		if c.Value != c.PokemonName {
			c.Value = c.PokemonName
			c.StateHasChanged()
		}
	})
}

func (c *PokemonForm) HandleInput(e events.ChangeEventArgs) {
	c.Value = e.Value
	c.StateHasChanged()
}

// HandleSubmit submits the field's value. An empty field submits nothing.
func (c *PokemonForm) HandleSubmit() {
	if c.Value == "" {
		return
	}
	c.submit(c.Value)
}

// HandleSelect fills the field with name and submits it.
func (c *PokemonForm) HandleSelect(name string) {
	c.Value = name
	c.StateHasChanged()
	c.submit(name)
}

func (c *PokemonForm) submit(name string) {
	if c.OnSubmit != nil {
		c.OnSubmit(name)
	}
}

func (c *PokemonForm) Render(r runtime.Renderer) *vdom.VNode {
	picks := vdom.Small("Try ", nil)
	for i, name := range QuickPicks {
		switch {
		case i == len(QuickPicks)-1:
			picks.Children = append(picks.Children, vdom.Text(", or "))
		case i > 0:
			picks.Children = append(picks.Children, vdom.Text(", "))
		}
		picks.Children = append(picks.Children, vdom.Button(`"`+name+`"`, map[string]any{
			"class":   "invisible-button",
			"type":    "button",
			"onClick": events.AdaptNoArgEvent(func() { c.HandleSelect(name) }),
		}))
	}

	return vdom.Form(map[string]any{
		"class":    "pokemon-form",
		"onSubmit": events.AdaptSubmitEvent(c.HandleSubmit),
	},
		vdom.Label("Pokemon Name", map[string]any{"for": "pokemonName-input"}),
		picks,
		vdom.Div(nil,
			vdom.InputText(c.Value, map[string]any{
				"class":       "pokemonName-input",
				"id":          "pokemonName-input",
				"name":        "pokemonName",
				"placeholder": "Which pokemon?",
				"onInput":     events.AdaptChangeEvent(c.HandleInput),
			}),
			vdom.Button("Submit", map[string]any{
				"type":     "submit",
				"disabled": c.Value == "",
			}),
		),
	)
}
