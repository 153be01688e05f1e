//go:build !wasm
// +build !wasm

package components

import (
	"fmt"
	"testing"

	"github.com/vcrobe/nojs-effects/pokemon"
	"github.com/vcrobe/nojs-effects/router"
	"github.com/vcrobe/nojs-effects/store"
	"github.com/vcrobe/nojs-effects/testcomponents"
)

// TestRegisterRoutes verifies each path resolves to its page.
func TestRegisterRoutes(t *testing.T) {
	r := router.New()
	RegisterRoutes(r, Deps{Store: store.NewMemStore(), InitialName: "Ada"})

	cases := map[string]string{
		"/":                  "*components.Index",
		GreetingPath:         "*components.GreetingApp",
		PokemonPath:          "*components.PokemonApp",
		PokemonPath + "/mew": "*components.PokemonApp",
		"/exercise/99":       "*components.NotFound",
	}
	for path, want := range cases {
		comp, _, _ := r.Resolve(path)
		if got := typeName(comp); got != want {
			t.Errorf("Resolve(%q) = %s, want %s", path, got, want)
		}
	}
}

// TestRegisterRoutes_PokemonByName verifies the name segment is submitted on mount.
func TestRegisterRoutes_PokemonByName(t *testing.T) {
	r := router.New()
	RegisterRoutes(r, Deps{Fetch: pokemon.NewFixtures(0).Fetch})

	comp, _, _ := r.Resolve(PokemonPath + "/bulbasaur")
	app := comp.(*PokemonApp)
	renderer := testcomponents.NewTestRenderer(app)
	renderer.RenderRoot()
	renderer.MustRunUntil(t, func() bool { return app.Status().Settled() })

	if got := infoNode(t, renderer.GetCurrentVDOM()).FindByTag("h2").Content; got != "Bulbasaur" {
		t.Errorf("expected Bulbasaur, got %q", got)
	}
	if got := renderer.GetCurrentVDOM().FindByID("pokemonName-input").Content; got != "bulbasaur" {
		t.Errorf("expected the form to show the name, got %q", got)
	}
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
