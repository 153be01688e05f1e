//go:build !wasm

package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-effects/components"
	"github.com/vcrobe/nojs-effects/pokemon"
	"github.com/vcrobe/nojs-effects/resource"
	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/store"
)

func mount(t *testing.T, root runtime.Component, opts ...Option) (Model, *runtime.HeadlessRenderer) {
	t.Helper()
	r := runtime.NewHeadlessRenderer(nil)
	r.SetCurrentComponent(root, "root")
	t.Cleanup(r.Close)
	return New(r, "Test", append([]Option{WithStyles(PlainStyles())}, opts...)...), r
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(m Model, s string) Model {
	for _, ch := range s {
		m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{ch}})
	}
	return m
}

// nextTask feeds the next dispatched task to the model, as waitForTask would.
func nextTask(t *testing.T, m Model, r *runtime.HeadlessRenderer) Model {
	t.Helper()
	select {
	case task := <-r.Tasks():
		return send(m, taskMsg(task))
	case <-time.After(2 * time.Second):
		t.Fatal("no task dispatched")
		return m
	}
}

func TestModel_TypingDrivesGreeting(t *testing.T) {
	st := store.NewMemStore()
	m, _ := mount(t, &components.GreetingApp{Store: st})
	assert.Contains(t, m.View(), "Please type your name")

	m = typeText(m, "Ada")

	view := m.View()
	assert.Contains(t, view, "Hello Ada")
	assert.Contains(t, view, "Stored: Ada")
	assert.Contains(t, view, "Count: 4")

	v, ok, err := st.Get(components.NameKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Ada", v)
}

func TestModel_SeedsInputFromStoredName(t *testing.T) {
	st := store.NewMemStoreWith(map[string]string{components.NameKey: "Grace"})
	m, _ := mount(t, &components.GreetingApp{Store: st})

	assert.Equal(t, "Grace", m.input.Value())
	assert.Contains(t, m.View(), "Hello Grace")
}

func TestModel_SubmitRunsFetchThroughTasks(t *testing.T) {
	app := &components.PokemonApp{Fetch: pokemon.NewFixtures(0).Fetch}
	m, r := mount(t, app)

	m = typeText(m, "pikachu")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, resource.StatusPending, app.Status())
	assert.Contains(t, m.View(), "Loading Attack 1")

	m = nextTask(t, m, r)

	require.Equal(t, resource.StatusResolved, app.Status())
	view := m.View()
	assert.Contains(t, view, "Pikachu")
	assert.Contains(t, view, "Discharge")
}

func TestModel_AltDigitPressesQuickPick(t *testing.T) {
	app := &components.PokemonApp{Fetch: pokemon.NewFixtures(0).Fetch}
	m, r := mount(t, app)
	assert.Contains(t, m.View(), `2:("charizard")`)

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true})

	assert.Equal(t, "charizard", app.PokemonName())
	assert.Equal(t, "charizard", m.input.Value())

	m = nextTask(t, m, r)
	assert.Contains(t, m.View(), "Charizard")
}

func TestModel_EmptySubmitDoesNothing(t *testing.T) {
	app := &components.PokemonApp{Fetch: pokemon.NewFixtures(0).Fetch}
	m, _ := mount(t, app)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, resource.StatusIdle, app.Status())
	assert.Contains(t, m.View(), "Submit a pokemon")
}

func TestModel_Busy(t *testing.T) {
	busy := true
	m, _ := mount(t, &components.GreetingApp{Store: store.NewMemStore()}, WithBusy(func() bool { return busy }))
	withSpinner := m.View()

	busy = false
	assert.NotEqual(t, withSpinner, m.View())
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, _ := mount(t, &components.GreetingApp{Store: store.NewMemStore()})

		next, cmd := m.Update(tea.KeyMsg{Type: key})

		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "key %v should quit", key)
		assert.Empty(t, next.(Model).View())
	}
}

func TestButtonIndex(t *testing.T) {
	n, ok := buttonIndex(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}, Alt: true})
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	_, ok = buttonIndex(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	assert.False(t, ok)
	_, ok = buttonIndex(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	assert.False(t, ok)
}

func TestRender_KeepsFieldsForStaticOutput(t *testing.T) {
	st := store.NewMemStoreWith(map[string]string{components.NameKey: "Ada"})
	r := runtime.NewHeadlessRenderer(nil)
	r.SetCurrentComponent(&components.GreetingApp{Store: st}, "root")
	defer r.Close()

	got := Render(r.RenderRoot(), PlainStyles())

	assert.Equal(t, "Name: [Ada]\nHello Ada\nStored: Ada\nCount: 1", got)
}
