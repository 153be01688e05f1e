//go:build !wasm

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-effects/components"
	"github.com/vcrobe/nojs-effects/router"
	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/store"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		settle      time.Duration
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "render [PATH]",
		Short: "Print the page the web build serves at PATH",
		Long: `render resolves PATH with the web build's routes and prints the page.
With --settle it keeps running background work until none arrives for that
long, e.g. to print a fetched pokemon at /exercise/06/pikachu. With
--interactive the page opens in a terminal UI where links can be followed.`,
		Example: `  effectlab render /
  effectlab render --settle 2s /exercise/06/pikachu
  effectlab render --interactive /`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}

			st, err := store.Open(a.cfg.Store.Backend, a.cfg.Store.DataDir)
			if err != nil {
				return err
			}
			defer st.Close()

			rt := router.New()
			components.RegisterRoutes(rt, components.Deps{
				Store:       st,
				Fetch:       a.fetcher(),
				Policy:      a.policy(),
				InitialName: a.cfg.Greeting.InitialName,
				Logger:      a.logger.Named("resource"),
			})

			r := a.newRenderer(rt)
			defer r.Close()
			// Followed links replace the root
			rt.OnChange(func(comp runtime.Component, key string) {
				r.SetCurrentComponent(comp, key)
				r.RenderRoot()
			})

			comp, key, ok := rt.Resolve(path)
			r.SetCurrentComponent(comp, key)
			if interactive {
				return a.runInteractive(cmd, r, "effectlab "+path)
			}

			r.RenderRoot()
			if settle > 0 {
				runUntilQuiet(cmd.Context(), r, settle)
			}

			if err := a.write(cmd.OutOrStdout(), r.Current()); err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no route for %s", path)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&settle, "settle", 0, "run background work until idle for this long")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "open the page in a terminal UI")
	return cmd
}

// runUntilQuiet runs dispatched tasks until none arrives within quiet.
func runUntilQuiet(ctx context.Context, r *runtime.HeadlessRenderer, quiet time.Duration) {
	for {
		waitCtx, cancel := context.WithTimeout(ctx, quiet)
		err := r.Await(waitCtx)
		cancel()
		if err != nil {
			return
		}
	}
}
