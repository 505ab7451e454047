package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ekaraman/focusflow/internal/core/config"
	"github.com/ekaraman/focusflow/internal/core/engine"
)

var (
	dbPath      string
	versionInfo string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "focusflow",
	Short: "Pomodoro session tracker",
	Long: `focusflow - log focus sessions, track daily streaks, and earn badges

Records completed pomodoro sessions with distraction counts, scores each
one, and keeps daily-goal streaks and achievement badges up to date.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to status if no subcommand specified
		return statusCmd.RunE(cmd, args)
	},
}

func init() {
	// Global flags
	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}
	defaultDB := filepath.Join(home, ".config", "focusflow", "focus.db")

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "Database path")
}

// openApp loads config and wires the engine over the selected database.
func openApp() (*engine.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app, err := engine.Open(dbPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return app, nil
}
