//go:build !wasm

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcrobe/nojs-effects/console"
	"github.com/vcrobe/nojs-effects/internal/config"
	"github.com/vcrobe/nojs-effects/internal/logging"
)

const (
	formatText = "text"
	formatHTML = "html"

	logFileName = "effectlab.log"

	// skipConfig marks commands that run without loading configuration.
	skipConfig = "skip-config"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configDir string
	format    string

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd creates the top-level "effectlab" command with global flags
// and all subcommands registered.
func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "effectlab",
		Short: "Run the effect exercises from a terminal",
		Long: `effectlab hosts the persisted-name and pokemon fetch exercises outside the
browser. Each command mounts the same components the web build uses and
prints the settled page, or drives it interactively with --interactive.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// Sync on a terminal's stderr fails with EINVAL; nothing to report
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configDir, "config", "", "configuration directory (default: "+config.DefaultDir+")")
	pf.String("data-dir", "", "data directory for the durable store (default: <config>/data)")
	pf.String("store", "", "store backend: bolt, sqlite or memory")
	pf.Bool("offline", false, "serve built-in pokemon instead of calling the API")
	pf.String("endpoint", "", "pokemon GraphQL endpoint")
	pf.String("stale-policy", "", "stale result policy: suppress-stale or last-resolved-wins")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.format, "format", formatText, "output format: text or html")

	root.AddCommand(newGreetCmd(a))
	root.AddCommand(newPokemonCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads configuration and installs the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipConfig] == "true" {
		return nil
	}
	if a.format != formatText && a.format != formatHTML {
		return fmt.Errorf("unknown format %q (want %s or %s)", a.format, formatText, formatHTML)
	}

	cfg, err := config.Load(a.configDir, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	// The terminal belongs to the UI in interactive mode, so logs go to a file
	var paths []string
	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		paths = []string{filepath.Join(cfg.Dir, logFileName)}
	}
	logger, err := logging.New(cfg.Log.Verbose, paths...)
	if err != nil {
		return err
	}
	a.logger = logger
	console.SetLogger(logger)

	logger.Debug("configuration loaded",
		zap.String("dir", cfg.Dir),
		zap.String("store", cfg.Store.Backend),
		zap.Bool("offline", cfg.Pokemon.Offline),
		zap.String("stale_policy", cfg.Resource.StalePolicy))
	return nil
}
