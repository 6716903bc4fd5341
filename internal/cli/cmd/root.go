// Package cmd provides Cobra CLI commands for lrucache.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/lrucache/internal/cli"
	"github.com/bnema/lrucache/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options
	rootCmd   = newRootCmd()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lrucache",
		Short: "Explore a fixed-capacity LRU cache",
		Long: `lrucache - a fixed-capacity least-recently-used cache.

Replay operation traces against the cache or drive it interactively and
watch the recency order change.

Trace format, one operation per line:
  put <key> <value>
  get <key>
  # comments and blank lines are ignored`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&appOpts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/lrucache/config.toml)")
	flags.IntVarP(&appOpts.Capacity, "capacity", "c", 0, "cache capacity (overrides config)")
	flags.StringVar(&appOpts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	return root
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
