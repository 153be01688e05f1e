package components

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/vcrobe/nojs-effects/pokemon"
	"github.com/vcrobe/nojs-effects/resource"
	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/vdom"
)

var errNoSupplier = errors.New("no pokemon supplier configured")

// PokemonInfo fetches the Pokémon named by PokemonName whenever the name
// changes and renders the request's current state.
type PokemonInfo struct {
	runtime.ComponentBase

	// Props
	PokemonName    string
	Fetch          pokemon.Fetcher
	Policy         resource.Policy
	Logger         *zap.Logger
	OnStatusChange func(resource.Status)

	res        *resource.Resource[*pokemon.Pokemon]
	nameEffect runtime.Effect[string]
}

// OnInit creates the request tracker. Fetch and Policy are fixed from here on.
func (c *PokemonInfo) OnInit() {
	fetch := c.Fetch
	if fetch == nil {
		fetch = func(context.Context, string) (*pokemon.Pokemon, error) {
			return nil, errNoSupplier
		}
	}
	c.res = resource.New(fetch,
		resource.WithPolicy(c.Policy),
		resource.WithDispatcher(c.Dispatch),
		resource.WithOnChange(c.resourceChanged),
		resource.WithLogger(c.Logger),
	)
}

func (c *PokemonInfo) ApplyProps(source runtime.Component) {
	if s, ok := source.(*PokemonInfo); ok {
		c.PokemonName = s.PokemonName
		c.OnStatusChange = s.OnStatusChange
	}
}

// OnAfterRender issues one request per change of PokemonName. An empty name
// resets the state to idle.
func (c *PokemonInfo) OnAfterRender(firstRender bool) {
	c.nameEffect.Run(c.PokemonName, func() {
		c.res.Request(c.PokemonName)
	})
}

// OnDestroy cancels the request in flight.
func (c *PokemonInfo) OnDestroy() {
	c.res.Close()
}

// State returns the state of the current request.
func (c *PokemonInfo) State() resource.State[*pokemon.Pokemon] {
	if c.res == nil {
		return resource.Idle[*pokemon.Pokemon]()
	}
	return c.res.State()
}

func (c *PokemonInfo) resourceChanged() {
	if c.OnStatusChange != nil {
		c.OnStatusChange(c.res.State().Status)
	}
	c.StateHasChanged()
}

func (c *PokemonInfo) Render(r runtime.Renderer) *vdom.VNode {
	st := c.State()
	switch st.Status {
	case resource.StatusIdle:
		return vdom.Text("Submit a pokemon")
	case resource.StatusRejected:
		return vdom.Div(map[string]any{"role": "alert"},
			vdom.Text("There was an error: "),
			vdom.Pre(st.Err.Error(), map[string]any{"style": "white-space: normal"}),
		)
	case resource.StatusPending:
		return r.RenderChild("pokemon-info-fallback", &PokemonInfoFallback{Name: st.Key})
	default:
		return r.RenderChild("pokemon-data-view", &PokemonDataView{Pokemon: st.Data})
	}
}
