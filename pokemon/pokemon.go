// Package pokemon supplies Pokémon data to the fetch exercise: a GraphQL
// client for the public Pokémon API and an offline fixture supplier.
package pokemon

import (
	"fmt"

	"github.com/vcrobe/nojs-effects/resource"
)

// FetchedAtLayout is the time layout of Pokemon.FetchedAt.
const FetchedAtLayout = "15:04:05.000"

// Attack is one special attack.
type Attack struct {
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	Damage int    `json:"damage" yaml:"damage"`
}

// Attacks groups a Pokémon's attacks.
type Attacks struct {
	Special []Attack `json:"special" yaml:"special"`
}

// Pokemon is the payload of a successful fetch.
type Pokemon struct {
	ID      string  `json:"id" yaml:"id"`
	Number  string  `json:"number" yaml:"number"`
	Name    string  `json:"name" yaml:"name"`
	Image   string  `json:"image" yaml:"image"`
	Attacks Attacks `json:"attacks" yaml:"attacks"`
	// FetchedAt is stamped by the supplier when the data arrives, formatted
	// with FetchedAtLayout.
	FetchedAt string `json:"fetchedAt,omitempty" yaml:"fetchedAt,omitempty"`
}

// Fetcher loads a Pokémon by name.
type Fetcher = resource.Fetcher[*Pokemon]

// Error is a failure reported by the data source. Message is shown to the
// user verbatim.
type Error struct {
	Name    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound returns the error reported when no Pokémon is called name.
func NotFound(name string) *Error {
	return &Error{Name: name, Message: fmt.Sprintf(`No pokemon with the name "%s"`, name)}
}
