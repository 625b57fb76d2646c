package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/clocklab/clocklab/internal/model"

	"github.com/spf13/viper"
)

const (
	defaultUpdateInterval = model.DefaultUpdateInterval
	defaultSkin           = model.DefaultSkin
)

// cliConfig holds the TUI configuration.
type cliConfig struct {
	UpdateInterval time.Duration `mapstructure:"update-interval"`
	Skin           string        `mapstructure:"skin"`
	DefaultMode    string        `mapstructure:"default-mode"`
	Debug          bool          `mapstructure:"debug"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("CLOCKLAB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("update-interval", defaultUpdateInterval)
	v.SetDefault("skin", defaultSkin)
	v.SetDefault("default-mode", model.DefaultMode.String())
	v.SetDefault("debug", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "clocklab", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// parseMode maps a config mode name to a Mode value.
func parseMode(name string) (model.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "static":
		return model.ModeStatic, nil
	case "live":
		return model.ModeLive, nil
	default:
		return model.ModeStatic, fmt.Errorf("unknown mode %q (want static or live)", name)
	}
}
