package components

import (
	"strconv"

	"github.com/vcrobe/nojs-effects/console"
	"github.com/vcrobe/nojs-effects/events"
	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/store"
	"github.com/vcrobe/nojs-effects/vdom"
)

// NameKey is the store key the greeting persists its name under.
const NameKey = "name"

// Greeting is a name field whose value survives reloads. The name is read
// from the store once, when the component is created; every change is
// written back by an effect that also bumps Count.
type Greeting struct {
	runtime.ComponentBase

	// Props
	InitialName string
	Store       store.Store

	// State
	Name  string
	Count int

	nameEffect runtime.Effect[string]
}

// OnInit seeds Name from the store, falling back to InitialName.
func (c *Greeting) OnInit() {
	c.Name = c.InitialName
	if c.Store == nil {
		return
	}
	v, ok, err := c.Store.Get(NameKey)
	switch {
	case err != nil:
		console.Warn("greeting: reading stored name failed, using initial name:", err.Error())
	case ok:
		c.Name = v
	}
}

// ApplyProps takes the store from a re-rendered parent. InitialName only
// matters on creation.
func (c *Greeting) ApplyProps(source runtime.Component) {
	if s, ok := source.(*Greeting); ok {
		c.Store = s.Store
	}
}

// OnAfterRender persists the name whenever it differs from the last
// persisted one, including the first render.
func (c *Greeting) OnAfterRender(firstRender bool) {
	c.nameEffect.Run(c.Name, c.persistName)
}

func (c *Greeting) persistName() {
	if c.Store != nil {
		if err := c.Store.Set(NameKey, c.Name); err != nil {
			console.Warn("greeting: persisting name failed:", err.Error())
		}
	}
	c.Count++
	c.StateHasChanged()
}

// HandleNameInput is bound to the input's input event.
func (c *Greeting) HandleNameInput(e events.ChangeEventArgs) {
	c.SetName(e.Value)
}

// SetName replaces the name and re-renders.
func (c *Greeting) SetName(name string) {
	c.Name = name
	c.StateHasChanged()
}

// Stored returns what the store currently holds under NameKey.
func (c *Greeting) Stored() string {
	if c.Store == nil {
		return ""
	}
	v, _, err := c.Store.Get(NameKey)
	if err != nil {
		return ""
	}
	return v
}

func (c *Greeting) Render(r runtime.Renderer) *vdom.VNode {
	var greeting *vdom.VNode
	if c.Name != "" {
		greeting = vdom.Strong("Hello " + c.Name)
	} else {
		greeting = vdom.Text("Please type your name")
	}

	return vdom.Div(nil,
		vdom.Form(map[string]any{"onSubmit": events.AdaptSubmitEvent(func() {})},
			vdom.Label("Name: ", map[string]any{"for": "name"}),
			vdom.InputText(c.Name, map[string]any{
				"id":      "name",
				"onInput": events.AdaptChangeEvent(c.HandleNameInput),
			}),
		),
		greeting,
		vdom.Div(nil, vdom.Text("Stored: "+c.Stored())),
		vdom.Div(nil, vdom.Text("Count: "+strconv.Itoa(c.Count))),
	)
}
