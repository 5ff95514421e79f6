package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pipdeck/pipdeck/internal/model"
)

const (
	defaultPollInterval = model.DefaultPollInterval
	defaultPipPath      = model.DefaultPipPath
	defaultSkin         = model.DefaultSkin
)

// cliConfig holds the TUI configuration.
type cliConfig struct {
	PipPath      string        `mapstructure:"pip-path"`
	PollInterval time.Duration `mapstructure:"poll-interval"`
	Skin         string        `mapstructure:"skin"`
	ChartTopN    int           `mapstructure:"chart-top-n"`
	HistoryFile  string        `mapstructure:"history-file"`
	LogFile      string        `mapstructure:"log-file"`
	LogLevel     string        `mapstructure:"log-level"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("PIPDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("pip-path", defaultPipPath)
	v.SetDefault("poll-interval", defaultPollInterval)
	v.SetDefault("skin", defaultSkin)
	v.SetDefault("chart-top-n", model.DefaultChartTopN)
	v.SetDefault("history-file", filepath.Join(configDir(home), "history.jsonl"))
	v.SetDefault("log-file", "")
	v.SetDefault("log-level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir(home), "config.yml"))
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

func configDir(home string) string {
	return filepath.Join(home, ".config", "pipdeck")
}
