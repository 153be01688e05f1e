//go:build !wasm

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vcrobe/nojs-effects/components"
	"github.com/vcrobe/nojs-effects/internal/tui"
	"github.com/vcrobe/nojs-effects/resource"
	"github.com/vcrobe/nojs-effects/vdom"
)

func newPokemonCmd(a *app) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "pokemon [NAME...]",
		Short: "Run the pokemon fetch exercise",
		Long: `pokemon submits each NAME to its own copy of the fetch exercise, waits for
every lookup to settle and prints the pages in argument order. Lookups run
concurrently. The command fails when any lookup ends in an error, after
printing every page.`,
		Example: `  effectlab pokemon pikachu charizard
  effectlab pokemon --offline --format html pikachu
  effectlab pokemon --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if len(args) > 1 {
					return fmt.Errorf("--interactive takes at most one name")
				}
				return a.runPokemonInteractive(cmd, args)
			}
			if len(args) == 0 {
				return fmt.Errorf("at least one pokemon name is required (or use --interactive)")
			}

			pages, failed, err := a.lookup(cmd, args)
			if err != nil {
				return err
			}
			for i, page := range pages {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := a.write(cmd.OutOrStdout(), page); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d lookups failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "search in a terminal UI")
	return cmd
}

// lookup mounts one PokemonApp per name, each on its own renderer, and runs
// them until their request settles. Empty names render the idle page.
func (a *app) lookup(cmd *cobra.Command, names []string) ([]*vdom.VNode, int, error) {
	fetch := a.fetcher()
	policy := a.policy()

	pages := make([]*vdom.VNode, len(names))
	statuses := make([]resource.Status, len(names))

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, name := range names {
		g.Go(func() error {
			pokemonApp := &components.PokemonApp{
				Fetch:              fetch,
				Policy:             policy,
				Logger:             a.logger.Named("resource"),
				InitialPokemonName: name,
			}
			r := a.newRenderer(nil)
			defer r.Close()
			r.SetCurrentComponent(pokemonApp, "pokemon")
			r.RenderRoot()

			// An empty name stays idle and never issues a request.
			done := func() bool { return name == "" || pokemonApp.Status().Settled() }
			if err := r.RunUntil(ctx, done); err != nil {
				return fmt.Errorf("lookup %q: %w", name, err)
			}
			pages[i] = r.Current()
			statuses[i] = pokemonApp.Status()
			a.logger.Debug("lookup settled", zap.String("name", name), zap.Stringer("status", statuses[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	failed := 0
	for _, s := range statuses {
		if s == resource.StatusRejected {
			failed++
		}
	}
	return pages, failed, nil
}

func (a *app) runPokemonInteractive(cmd *cobra.Command, args []string) error {
	pokemonApp := &components.PokemonApp{
		Fetch:  a.fetcher(),
		Policy: a.policy(),
		Logger: a.logger.Named("resource"),
	}
	if len(args) == 1 {
		pokemonApp.InitialPokemonName = args[0]
	}

	r := a.newRenderer(nil)
	defer r.Close()
	r.SetCurrentComponent(pokemonApp, "pokemon")

	return a.runInteractive(cmd, r, "Pokemon",
		tui.WithBusy(func() bool { return pokemonApp.Status() == resource.StatusPending }))
}
