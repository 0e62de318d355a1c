// Command csvfleet exposes the csvhelper and fleet operations on the command
// line, one subcommand per operation.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"csvfleet/internal/config"
	"csvfleet/internal/infrastructure"
)

// app carries what every subcommand needs once the root command has run its setup
type app struct {
	cfgFile  string
	logLevel string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "csvfleet",
		Short: "Inspect and reshape CSV files and fleet tag columns",
		Long: `csvfleet inspects CSV files before they are loaded for analysis and
works with column names following the <prefix><two digit code>.<suffix>
fleet tag scheme.

Configuration comes from CSVFLEET_* environment variables and an optional
YAML file (--config or CSVFLEET_CONFIG_FILE).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			infrastructure.InfoContext(cmd.Context(), "Command completed",
				slog.String("command", cmd.CommandPath()))
			infrastructure.CloseLogFile()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file (default CSVFLEET_CONFIG_FILE)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.rowsCmd(),
		a.delimiterCmd(),
		a.previewCmd("head", "Show the first rows of a file"),
		a.previewCmd("tail", "Show the last rows of a file"),
		a.previewCmd("sample", "Show randomly drawn rows of a file"),
		a.nansCmd(),
		a.removeRowCmd(),
		a.subsetCmd(),
		a.loadCmd(),
		a.tagsCmd("roots", "List the tag roots of a file's columns"),
		a.tagsCmd("prefixes", "List the tag prefixes of a file's columns"),
		a.selectCmd(),
		a.calcCmd(),
		a.filesCmd(),
	)
	return root
}

// setup loads the configuration, starts the logger and gives the command a
// context carrying a fresh trace id
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = infrastructure.EnsureTraceID(ctx)
	cmd.SetContext(ctx)

	a.cfg = cfg
	a.logger = infrastructure.WithComponent(logger, "cli")
	a.logger.DebugContext(ctx, "Running command",
		slog.String("command", cmd.CommandPath()),
		slog.String("config_file", a.cfgFile))
	return nil
}

// fail logs err against the command's trace id and returns it for cobra to print
func (a *app) fail(cmd *cobra.Command, err error) error {
	infrastructure.WithError(a.logger, err).ErrorContext(cmd.Context(), "Command failed",
		slog.String("command", cmd.CommandPath()))
	return err
}
