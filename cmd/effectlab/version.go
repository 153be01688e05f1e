//go:build !wasm

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	version    = "0.3.0"
	modulePath = "github.com/vcrobe/nojs-effects"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the effectlab version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "effectlab v%s\nmodule: %s\n", version, modulePath)
			return nil
		},
	}
}
