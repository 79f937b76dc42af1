package main

import (
	"os"

	"github.com/spf13/cobra"

	"assetfetch/internal/config"
	"assetfetch/internal/logger"
)

// Root command flags
var (
	cfgFile  string
	logLevel string
	verbose  bool
)

func main() {
	root := createRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// createRootCommand wires up the CLI
func createRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "assetfetch",
		Short: "fetches hash-verified assets into a local directory",
		Long: `Assetfetch downloads the assets declared in a manifest over HTTP(S)
into a local directory and verifies each against its declared sha256.
A hash ledger kept next to the assets records what was last fetched, so
repeated runs with an unchanged asset set perform zero transfers.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Path to a YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn or error")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Verbose per-asset progress output")

	root.AddCommand(createFetchCommand())
	root.AddCommand(createVerifyCommand())
	root.AddCommand(createListCommand())
	attachLoggingHooks(root)
	return root
}

// resolveRequestedLogLevel prefers an explicit --log-level and falls
// back to debug when --verbose is set. Empty means "use the config".
func resolveRequestedLogLevel(cmd *cobra.Command) string {
	if logLevel != "" {
		return logLevel
	}
	if cmd != nil {
		if v, err := cmd.Flags().GetBool("verbose"); err == nil && v {
			return "debug"
		}
	}
	return ""
}

// attachLoggingHooks installs a pre-run hook on every subcommand that
// resolves the requested log level and initializes the logger before
// the command body runs.
func attachLoggingHooks(root *cobra.Command) {
	for _, cmd := range root.Commands() {
		cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
			level := resolveRequestedLogLevel(cmd)
			if level == "" {
				cfg, err := config.Load(cfgFile)
				if err != nil {
					return err
				}
				level = cfg.Logging.Level
			}
			return logger.Setup(level)
		}
	}
}
