// Command eats is the campuseats terminal client: an interactive browser
// for campus restaurants and their menus, with login, favorites, and
// profile management.
//
// Run without arguments to start the interactive interface; subcommands
// cover the same operations non-interactively.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"campuseats/cmd/eats/tui"
	"campuseats/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "eats",
	Short: "campuseats - find campus restaurants and today's menus",
	Long: `campuseats is a terminal client for the campus restaurant service.

It shows nearby student restaurants on a list and a marker map, fetches
daily and weekly menus, and manages your account and favorite restaurant.

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		cfg, err := loadConfig()
		if err == nil {
			if cfg.Logging.File != "" {
				zcfg.OutputPaths = []string{cfg.Logging.File}
			}
			if lvl, perr := zapcore.ParseLevel(cfg.Logging.Level); perr == nil {
				zcfg.Level = zap.NewAtomicLevelAt(lvl)
			}
		}
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// runInteractive launches the bubbletea interface.
func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	model, err := tui.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize interface: %w", err)
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.campuseats/config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
