// Package components holds the two exercise applications and the
// presentational components they render.
package components

import (
	"go.uber.org/zap"

	"github.com/vcrobe/nojs-effects/pokemon"
	"github.com/vcrobe/nojs-effects/resource"
	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/signals"
	"github.com/vcrobe/nojs-effects/store"
	"github.com/vcrobe/nojs-effects/vdom"
)

// GreetingApp is the root of the persisted-name exercise.
type GreetingApp struct {
	runtime.ComponentBase
	InitialName string
	Store       store.Store
}

func (a *GreetingApp) Render(r runtime.Renderer) *vdom.VNode {
	return r.RenderChild("greeting", &Greeting{InitialName: a.InitialName, Store: a.Store})
}

// PokemonApp is the root of the fetch exercise. It holds the submitted name
// and passes it to the form and to PokemonInfo.
type PokemonApp struct {
	runtime.ComponentBase

	Fetch  pokemon.Fetcher
	Policy resource.Policy
	Logger *zap.Logger
	// InitialPokemonName is submitted on creation. Empty by default.
	InitialPokemonName string

	pokemonName *signals.Signal[string]
	unsubscribe func()
	status      resource.Status
}

func (a *PokemonApp) OnInit() {
	a.pokemonName = signals.NewSignal(a.InitialPokemonName)
	a.unsubscribe = a.pokemonName.Subscribe(a.StateHasChanged)
}

func (a *PokemonApp) OnDestroy() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
}

// HandleSubmit replaces the current name. Submitting the current name again
// does nothing.
func (a *PokemonApp) HandleSubmit(name string) {
	a.pokemonName.Set(name)
}

// PokemonName returns the current name.
func (a *PokemonApp) PokemonName() string {
	if a.pokemonName == nil {
		return ""
	}
	return a.pokemonName.Get()
}

// Status returns the status last reported by PokemonInfo.
func (a *PokemonApp) Status() resource.Status {
	return a.status
}

func (a *PokemonApp) statusChanged(s resource.Status) {
	a.status = s
}

func (a *PokemonApp) Render(r runtime.Renderer) *vdom.VNode {
	name := a.PokemonName()
	return vdom.Div(map[string]any{"class": "pokemon-info-app"},
		r.RenderChild("pokemon-form", &PokemonForm{PokemonName: name, OnSubmit: a.HandleSubmit}),
		vdom.Hr(),
		vdom.Div(map[string]any{"class": "pokemon-info"},
			r.RenderChild("pokemon-info", &PokemonInfo{
				PokemonName:    name,
				Fetch:          a.Fetch,
				Policy:         a.Policy,
				Logger:         a.Logger,
				OnStatusChange: a.statusChanged,
			}),
		),
	)
}
