package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const DefaultCelebration = `{{emoji}} Logged {{minutes}} min of {{category}}. Focus score: {{score}}/100.{{#streak}}
🔥 {{streak}}-day streak going!{{/streak}}`

type Config struct {
	Timezone             string // IANA name, empty means system local
	DailyGoalMinutes     int    // 0 means use the stored/default goal
	CelebrationTemplate  string
	ReportFooterTemplate string // optional extra line under reports
}

type tomlConfig struct {
	Timezone         string `toml:"timezone"`
	DailyGoalMinutes int    `toml:"daily_goal_minutes"`
	ReportFooter     string `toml:"report_footer"`
}

// Load reads config from ~/.config/focusflow/. A missing directory or
// file means defaults.
func Load() (*Config, error) {
	cfg := &Config{
		CelebrationTemplate: DefaultCelebration,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // Use defaults
	}

	configDir := filepath.Join(home, ".config", "focusflow")
	tomlPath := filepath.Join(configDir, "config.toml")
	celebrationPath := filepath.Join(configDir, "celebration.txt")

	// Load TOML config if it exists
	if _, err := os.Stat(tomlPath); err == nil {
		var tc tomlConfig
		if _, err := toml.DecodeFile(tomlPath, &tc); err == nil {
			cfg.Timezone = tc.Timezone
			cfg.DailyGoalMinutes = tc.DailyGoalMinutes
			cfg.ReportFooterTemplate = tc.ReportFooter
		}
	}

	// If custom celebration template exists, use it
	if data, err := os.ReadFile(celebrationPath); err == nil {
		cfg.CelebrationTemplate = string(data)
	}

	return cfg, nil
}

// Location resolves the configured timezone, falling back to the
// system's local zone when unset or unparseable.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// DefaultDBPath returns ~/.config/focusflow/focus.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "focusflow", "focus.db"), nil
}
