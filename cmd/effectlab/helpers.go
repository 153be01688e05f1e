//go:build !wasm

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-effects/internal/tui"
	"github.com/vcrobe/nojs-effects/pokemon"
	"github.com/vcrobe/nojs-effects/resource"
	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/vdom"
)

var errNotTerminal = errors.New("--interactive needs a terminal")

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// write prints a rendered tree in the selected format. Text is colored only
// when w is a terminal.
func (a *app) write(w io.Writer, n *vdom.VNode) error {
	if a.format == formatHTML {
		if err := vdom.RenderHTML(w, n); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
		_, err := fmt.Fprintln(w)
		return err
	}

	styles := tui.PlainStyles()
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		styles = tui.DefaultStyles()
	}
	_, err := fmt.Fprintln(w, tui.Render(n, styles))
	return err
}

// fetcher returns the configured pokemon supplier.
func (a *app) fetcher() pokemon.Fetcher {
	p := a.cfg.Pokemon
	if p.Offline {
		return pokemon.NewFixtures(p.Delay).Fetch
	}
	return pokemon.NewClient(
		pokemon.WithEndpoint(p.Endpoint),
		pokemon.WithTimeout(p.Timeout),
		pokemon.WithDelay(p.Delay),
		pokemon.WithLogger(a.logger.Named("pokemon")),
	).Fetch
}

func (a *app) policy() resource.Policy {
	// Validated by config.Load
	p, _ := a.cfg.Policy()
	return p
}

func (a *app) newRenderer(nav runtime.NavigationManager) *runtime.HeadlessRenderer {
	return runtime.NewHeadlessRenderer(nav, runtime.WithLogger(a.logger.Named("runtime")))
}

// runInteractive hands the mounted renderer to a bubbletea program until the
// user quits.
func (a *app) runInteractive(cmd *cobra.Command, r *runtime.HeadlessRenderer, title string, opts ...tui.Option) error {
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !isTerminal(out) || !isTerminal(os.Stdin) {
		return errNotTerminal
	}
	p := tea.NewProgram(tui.New(r, title, opts...),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("interactive session: %w", err)
	}
	return nil
}
