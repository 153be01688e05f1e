package pokemon

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// Fixtures is an offline Fetcher serving a fixed set of Pokémon.
type Fixtures struct {
	mu      sync.RWMutex
	byName  map[string]Pokemon
	delay   time.Duration
	now     func() time.Time
	fetches int
}

// NewFixtures returns Fixtures preloaded with Builtin. delay is applied to
// every fetch and honors cancellation.
func NewFixtures(delay time.Duration) *Fixtures {
	f := &Fixtures{byName: make(map[string]Pokemon), delay: delay, now: time.Now}
	for _, p := range Builtin {
		f.Add(p)
	}
	return f
}

// Add registers p under its lower-cased name.
func (f *Fixtures) Add(p Pokemon) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byName[strings.ToLower(p.Name)] = p
}

// SetClock sets the clock used to stamp FetchedAt.
func (f *Fixtures) SetClock(now func() time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = now
}

// Names returns the registered names, sorted.
func (f *Fixtures) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.byName))
	for name := range f.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fetches returns how many times Fetch has been called.
func (f *Fixtures) Fetches() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.fetches
}

// Fetch implements Fetcher.
func (f *Fixtures) Fetch(ctx context.Context, name string) (*Pokemon, error) {
	f.mu.Lock()
	f.fetches++
	f.mu.Unlock()

	if f.delay > 0 {
		t := time.NewTimer(f.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.RLock()
	p, ok := f.byName[strings.ToLower(name)]
	now := f.now
	f.mu.RUnlock()
	if !ok {
		return nil, NotFound(name)
	}
	p.Attacks.Special = append([]Attack(nil), p.Attacks.Special...)
	p.FetchedAt = now().Format(FetchedAtLayout)
	return &p, nil
}

// Builtin is the data served by NewFixtures.
var Builtin = []Pokemon{
	{
		ID:     "UG9rZW1vbjowMjU=",
		Number: "025",
		Name:   "Pikachu",
		Image:  "/img/pokemon/pikachu.jpg",
		Attacks: Attacks{Special: []Attack{
			{Name: "Discharge", Type: "Electric", Damage: 35},
			{Name: "Thunder", Type: "Electric", Damage: 100},
			{Name: "Thunderbolt", Type: "Electric", Damage: 55},
		}},
	},
	{
		ID:     "UG9rZW1vbjowMDY=",
		Number: "006",
		Name:   "Charizard",
		Image:  "/img/pokemon/charizard.jpg",
		Attacks: Attacks{Special: []Attack{
			{Name: "Dragon Claw", Type: "Dragon", Damage: 35},
			{Name: "Fire Blast", Type: "Fire", Damage: 100},
			{Name: "Flamethrower", Type: "Fire", Damage: 55},
		}},
	},
	{
		ID:     "UG9rZW1vbjowMzg=",
		Number: "038",
		Name:   "Ninetales",
		Image:  "/img/pokemon/ninetales.jpg",
		Attacks: Attacks{Special: []Attack{
			{Name: "Fire Blast", Type: "Fire", Damage: 100},
			{Name: "Flamethrower", Type: "Fire", Damage: 55},
			{Name: "Heat Wave", Type: "Fire", Damage: 80},
		}},
	},
	{
		ID:     "UG9rZW1vbjowMDE=",
		Number: "001",
		Name:   "Bulbasaur",
		Image:  "/img/pokemon/bulbasaur.jpg",
		Attacks: Attacks{Special: []Attack{
			{Name: "Power Whip", Type: "Grass", Damage: 70},
			{Name: "Seed Bomb", Type: "Grass", Damage: 40},
			{Name: "Sludge Bomb", Type: "Poison", Damage: 55},
		}},
	},
}
