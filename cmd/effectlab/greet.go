//go:build !wasm

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-effects/components"
	"github.com/vcrobe/nojs-effects/events"
	"github.com/vcrobe/nojs-effects/store"
)

func newGreetCmd(a *app) *cobra.Command {
	var (
		names       []string
		initial     string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Run the persisted-name exercise",
		Long: `greet mounts the greeting, types each --name into its field in order and
prints the page. The last name is kept in the configured store and greets
you on the next run.`,
		Example: `  effectlab greet --name Ada
  effectlab greet --store sqlite --name Ada --name Grace
  effectlab greet --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive && len(names) > 0 {
				return fmt.Errorf("--name cannot be combined with --interactive")
			}
			if !cmd.Flags().Changed("initial") {
				initial = a.cfg.Greeting.InitialName
			}

			st, err := store.Open(a.cfg.Store.Backend, a.cfg.Store.DataDir)
			if err != nil {
				return err
			}
			defer st.Close()

			r := a.newRenderer(nil)
			defer r.Close()
			r.SetCurrentComponent(&components.GreetingApp{InitialName: initial, Store: st}, "greeting")

			if interactive {
				return a.runInteractive(cmd, r, "Greeting")
			}

			r.RenderRoot()
			for _, name := range names {
				if !events.Input(r.Current().FindByID("name"), name) {
					return fmt.Errorf("greeting has no name field")
				}
			}
			return a.write(cmd.OutOrStdout(), r.Current())
		},
	}

	cmd.Flags().StringArrayVar(&names, "name", nil, "type NAME into the field; repeat to type several")
	cmd.Flags().StringVar(&initial, "initial", "", "name used when the store holds none")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "edit the name in a terminal UI")
	return cmd
}
