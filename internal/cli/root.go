// Package cli implements the quickquotes command line
package cli

import (
	"fmt"
	"io"

	"github.com/Justice-Caban/QuickQuotes/internal/config"
	"github.com/Justice-Caban/QuickQuotes/internal/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries state shared by every command
type app struct {
	configDir string
	logLevel  string

	cfg     *config.Config
	logger  zerolog.Logger
	logFile io.Closer
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "quickquotes",
		Short: "Browse, save and share quotes in your terminal",
		Long: `QuickQuotes is a quote gallery for the terminal.

Run without arguments to open the interactive gallery, or use the
subcommands to manage quotes and themes from scripts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "directory holding config.yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	root.AddCommand(newThemeCmd(a))
	root.AddCommand(newQuoteCmd(a))
	root.AddCommand(newExportCmd(a))

	return root
}

// Execute runs the command line
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration and builds the logger. The TUI logs to a file
// since it owns the terminal; every other command logs to stderr.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configDir != "" {
		config.SetConfigDir(a.configDir)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	levelName := cfg.Logging.Level
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := config.ParseLogLevel(levelName)
	if err != nil {
		return err
	}

	if cmd == cmd.Root() {
		logger, f, err := fileLogger(cfg.Paths.Log, level)
		if err != nil {
			return err
		}
		a.logger, a.logFile = logger, f
	} else {
		a.logger = consoleLogger(cmd.ErrOrStderr(), level)
	}

	a.logger.Debug().Str("config", config.GetConfigPath()).Str("command", cmd.CommandPath()).Msg("configuration loaded")
	return nil
}

func (a *app) teardown() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// openStorage opens the configured database
func (a *app) openStorage() (*storage.Storage, error) {
	st, err := storage.NewStorage(a.cfg.Paths.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", a.cfg.Paths.Database, err)
	}
	return st, nil
}
