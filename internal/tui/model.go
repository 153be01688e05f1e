//go:build !wasm

// Package tui hosts a component tree inside a bubbletea program.
//
// Keystrokes become the events the tree's handlers expect: typing drives the
// first text field, enter submits the form that owns an onSubmit handler and
// alt+N presses the Nth button. Tasks dispatched by background work are
// received by a command and run from Update, so every render happens on the
// program's goroutine.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vcrobe/nojs-effects/events"
	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/vdom"
)

// taskMsg carries a task dispatched to the renderer.
type taskMsg func()

// Option configures a Model.
type Option func(*Model)

// WithStyles replaces DefaultStyles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithBusy shows a spinner next to the field while busy reports true.
func WithBusy(busy func() bool) Option {
	return func(m *Model) { m.busy = busy }
}

// Model is the bubbletea model for one mounted root component.
type Model struct {
	renderer *runtime.HeadlessRenderer
	title    string
	styles   Styles
	input    textinput.Model
	spinner  spinner.Model
	busy     func() bool
	quitting bool
}

// New renders the renderer's root once and returns a model driving it. The
// caller keeps ownership of the renderer and closes it after the program exits.
func New(renderer *runtime.HeadlessRenderer, title string, opts ...Option) Model {
	m := Model{
		renderer: renderer,
		title:    title,
		styles:   DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	renderer.RenderRoot()

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.PromptStyle = m.styles.Prompt
	m.input.CharLimit = 256
	m.input.Focus()
	if f := m.field(); f != nil {
		m.input.Placeholder = f.Attr("placeholder")
	}
	m.syncInput()

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = m.styles.Spinner
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForTask(m.renderer.Tasks()))
}

// waitForTask receives the next dispatched task. Exactly one waiter is
// outstanding at a time: Init starts it and every taskMsg re-arms it.
func waitForTask(tasks <-chan func()) tea.Cmd {
	return func() tea.Msg {
		return taskMsg(<-tasks)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskMsg:
		msg()
		m.renderer.RunPending()
		m.syncInput()
		return m, waitForTask(m.renderer.Tasks())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			events.Submit(m.renderer.Current().Find(hasSubmit))
			m.syncInput()
			return m, nil
		}

		if n, ok := buttonIndex(msg); ok {
			if buttons := m.buttons(); n < len(buttons) {
				events.Click(buttons[n])
				m.syncInput()
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != before {
			events.Input(m.field(), v)
			m.syncInput()
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	index := make(map[*vdom.VNode]int)
	for i, b := range m.buttons() {
		index[b] = i + 1
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n")
	}
	b.WriteString(vdom.RenderText(m.renderer.Current(), vdom.TextOptions{
		Decorate: func(n *vdom.VNode, text string) string { return m.styles.decorate(n, text, index) },
	}))
	b.WriteString("\n\n")
	if m.busy != nil && m.busy() {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")

	help := "enter submit · esc quit"
	if len(index) > 0 {
		help = "enter submit · alt+1.." + strconv.Itoa(min(len(index), 9)) + " press · esc quit"
	}
	b.WriteString(m.styles.Help.Render(help))
	return b.String()
}

// field returns the text field typing is routed to.
func (m Model) field() *vdom.VNode {
	return m.renderer.Current().Find(func(n *vdom.VNode) bool {
		return n.Tag == "input" && (n.Attributes["onInput"] != nil || n.Attributes["onChange"] != nil)
	})
}

// syncInput copies the field's value into the text input after the tree
// changed it, e.g. a quick pick or a restored name.
func (m *Model) syncInput() {
	f := m.field()
	if f == nil {
		return
	}
	if f.Content != m.input.Value() {
		m.input.SetValue(f.Content)
	}
}

// buttons returns the nodes alt+N can press, in document order.
func (m Model) buttons() []*vdom.VNode {
	return m.renderer.Current().FindAll(func(n *vdom.VNode) bool {
		if n.OnClick != nil {
			return true
		}
		_, ok := n.Attributes["onClick"].(func())
		return ok
	})
}

func hasSubmit(n *vdom.VNode) bool {
	_, ok := n.Attributes["onSubmit"].(func())
	return ok
}

// buttonIndex maps alt+1..alt+9 to a zero-based button index.
func buttonIndex(msg tea.KeyMsg) (int, bool) {
	if !msg.Alt || msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}
