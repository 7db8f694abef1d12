package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/baeum-app/baeum/internal/drill"
)

// Config carries every tunable the app wires at construction. Nothing reads
// configuration from ambient state; components receive what they need
// explicitly.
type Config struct {
	DBPath       string           `mapstructure:"db_path"`
	SessionLimit int              `mapstructure:"session_limit"`
	TimedMode    bool             `mapstructure:"timed_mode"`
	TimerSeconds int              `mapstructure:"timer_seconds"`
	Tones        []drill.ToneTier `mapstructure:"tones"`
}

// Load reads configuration in priority order: defaults, then an optional
// config file ($XDG_CONFIG_HOME/baeum/config.yaml), then BAEUM_* env vars.
// A missing config file is fine; a malformed one is an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("session_limit", 20)
	v.SetDefault("timed_mode", false)
	v.SetDefault("timer_seconds", 15)

	v.SetEnvPrefix("BAEUM")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.Tones) == 0 {
		cfg.Tones = drill.DefaultToneTable
	}
	if cfg.SessionLimit < 1 {
		cfg.SessionLimit = 20
	}
	if cfg.TimerSeconds < 1 {
		cfg.TimerSeconds = 15
	}
	return &cfg, nil
}

func configDir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "baeum"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "baeum"), nil
}
