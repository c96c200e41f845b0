package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration. Values here are defaults for the
// CLI flags; flags always win.
type Config struct {
	// Output format: "text" (tab-separated) or "ndjson"
	Format string `mapstructure:"format"`
	// What to do with malformed JSON lines: "stderr" or "ignore"
	Errors string `mapstructure:"errors"`
	// Disable colored output even on a terminal
	NoColor bool `mapstructure:"no_color"`
	// Suppress the "[info] Loaded session file" line
	Quiet bool `mapstructure:"quiet"`
	// Enable zap debug logging
	Verbose bool `mapstructure:"verbose"`
	// Only print the last N matched records (0 = all)
	Last int `mapstructure:"last"`
	// Override the sessions index used for autodetection
	SessionsIndex string `mapstructure:"sessions_index"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Format: "text",
		Errors: "stderr",
		Last:   0,
	}
}

// Load loads configuration from files and environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("clawgrep")
	v.SetConfigType("yaml")

	// Config paths, lowest precedence first
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "clawgrep"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(".clawgrep")
	}
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("CLAWGREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.BindEnv("format", "CLAWGREP_FORMAT")
	v.BindEnv("errors", "CLAWGREP_ERRORS")
	v.BindEnv("no_color", "CLAWGREP_NO_COLOR")
	v.BindEnv("quiet", "CLAWGREP_QUIET")
	v.BindEnv("verbose", "CLAWGREP_VERBOSE")
	v.BindEnv("last", "CLAWGREP_LAST")
	v.BindEnv("sessions_index", "CLAWGREP_SESSIONS_INDEX")

	cfg := Default()
	v.SetDefault("format", cfg.Format)
	v.SetDefault("errors", cfg.Errors)
	v.SetDefault("no_color", cfg.NoColor)
	v.SetDefault("quiet", cfg.Quiet)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("last", cfg.Last)
	v.SetDefault("sessions_index", cfg.SessionsIndex)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found; use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
