package components

import (
	"go.uber.org/zap"

	"github.com/vcrobe/nojs-effects/pokemon"
	"github.com/vcrobe/nojs-effects/resource"
	"github.com/vcrobe/nojs-effects/router"
	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/store"
)

// Deps are the collaborators the exercise pages are built with.
type Deps struct {
	Store       store.Store
	Fetch       pokemon.Fetcher
	Policy      resource.Policy
	InitialName string
	Logger      *zap.Logger
}

// RegisterRoutes adds the index, both exercises and the not-found page to r.
// "/exercise/06/{name}" opens the fetch exercise with name already submitted.
func RegisterRoutes(r *router.Router, d Deps) {
	r.Handle("/", func(map[string]string) runtime.Component {
		return &Index{}
	})
	r.Handle(GreetingPath, func(map[string]string) runtime.Component {
		return &GreetingApp{InitialName: d.InitialName, Store: d.Store}
	})
	r.Handle(PokemonPath, func(map[string]string) runtime.Component {
		return &PokemonApp{Fetch: d.Fetch, Policy: d.Policy, Logger: d.Logger}
	})
	r.Handle(PokemonPath+"/{name}", func(params map[string]string) runtime.Component {
		return &PokemonApp{
			Fetch:              d.Fetch,
			Policy:             d.Policy,
			Logger:             d.Logger,
			InitialPokemonName: params["name"],
		}
	})
	r.HandleNotFound(func(path string) runtime.Component {
		return &NotFound{Path: path}
	})
}
