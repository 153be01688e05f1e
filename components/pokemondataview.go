package components

import (
	"strconv"

	"github.com/vcrobe/nojs-effects/pokemon"
	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/vdom"
)

// FallbackImage is shown while a Pokémon is loading.
const FallbackImage = "/img/pokemon/fallback-pokemon.jpg"

type attackRow struct {
	name, kind, damage string
}

// dataView renders the card shared by PokemonDataView and PokemonInfoFallback.
func dataView(name, number, image, fetchedAt string, attacks []attackRow) *vdom.VNode {
	items := make([]*vdom.VNode, 0, len(attacks))
	for _, a := range attacks {
		items = append(items, vdom.Li(nil,
			vdom.Label(a.name, nil),
			vdom.Text(": "),
			vdom.Span(a.damage+" ", nil, vdom.Small("("+a.kind+")", nil)),
		))
	}

	return vdom.Div(nil,
		vdom.Div(map[string]any{"class": "pokemon-info__img-wrapper"},
			vdom.Img(image, name),
		),
		vdom.Section(nil, vdom.Heading(2, name, vdom.Sup(number))),
		vdom.Section(nil, vdom.Ul(nil, items...)),
		vdom.Small(fetchedAt, map[string]any{"class": "pokemon-info__fetch-time"}),
	)
}

// PokemonDataView shows a fetched Pokémon.
type PokemonDataView struct {
	runtime.ComponentBase
	Pokemon *pokemon.Pokemon
}

func (c *PokemonDataView) ApplyProps(source runtime.Component) {
	if s, ok := source.(*PokemonDataView); ok {
		c.Pokemon = s.Pokemon
	}
}

func (c *PokemonDataView) Render(r runtime.Renderer) *vdom.VNode {
	p := c.Pokemon
	if p == nil {
		return vdom.Div(nil)
	}
	attacks := make([]attackRow, 0, len(p.Attacks.Special))
	for _, a := range p.Attacks.Special {
		attacks = append(attacks, attackRow{name: a.Name, kind: a.Type, damage: strconv.Itoa(a.Damage)})
	}
	return dataView(p.Name, p.Number, p.Image, p.FetchedAt, attacks)
}

// PokemonInfoFallback is the placeholder card shown while Name loads.
type PokemonInfoFallback struct {
	runtime.ComponentBase
	Name string
}

func (c *PokemonInfoFallback) ApplyProps(source runtime.Component) {
	if s, ok := source.(*PokemonInfoFallback); ok {
		c.Name = s.Name
	}
}

func (c *PokemonInfoFallback) Render(r runtime.Renderer) *vdom.VNode {
	return dataView(c.Name, "XXX", FallbackImage, "loading...", []attackRow{
		{name: "Loading Attack 1", kind: "Type", damage: "XX"},
		{name: "Loading Attack 2", kind: "Type", damage: "XX"},
	})
}
