package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Default configuration values.
const (
	defaultConfigPath = "hillclimb.json"
	defaultLogLevel   = "info"
)

// appConfig holds the command configuration. Flags override these values.
type appConfig struct {
	MaxExpansions int    `json:"max_expansions"`
	ShowPath      bool   `json:"show_path"`
	Render        bool   `json:"render"`
	LogLevel      string `json:"log_level"`
}

func defaultConfig() appConfig {
	return appConfig{
		LogLevel: defaultLogLevel,
	}
}

// loadConfig loads configuration from path over the defaults.
// A missing file yields the defaults.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return appConfig{}, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, cfg.validate()
}

// validate normalizes and checks cfg.
func (c *appConfig) validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("max_expansions must be >= 0, got %d", c.MaxExpansions)
	}
	return nil
}
