// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gridmate/gridmate/logger"
)

const (
	configDirName  = ".gridmate"
	configFileName = "config.yaml"
)

var configDirOverride string

// SetConfigDir overrides the config directory for the current process.
// Empty value clears the override.
func SetConfigDir(dir string) {
	configDirOverride = strings.TrimSpace(dir)
}

// Config is the root configuration structure.
type Config struct {
	Chat     ChatConfig     `json:"chat" yaml:"chat"`
	Document DocumentConfig `json:"document" yaml:"document"`
	UI       UIConfig       `json:"ui,omitempty" yaml:"ui,omitempty"`
	Logging  LoggingConfig  `json:"logging,omitempty" yaml:"logging,omitempty"`
}

// ChatConfig contains chat sidebar settings.
type ChatConfig struct {
	Prompt          string `json:"prompt,omitempty" yaml:"prompt,omitempty"`                   // input prompt, defaults to "gridmate> "
	Placeholder     string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`         // canned assistant reply
	ResponseDelayMS int    `json:"responseDelayMs,omitempty" yaml:"responseDelayMs,omitempty"` // placeholder response delay, defaults to 1500
}

// DocumentConfig describes the host workbook the panels attach to.
type DocumentConfig struct {
	Pages       []string `json:"pages,omitempty" yaml:"pages,omitempty"`             // page names, first is initially active
	DefaultPage string   `json:"defaultPage,omitempty" yaml:"defaultPage,omitempty"` // page opened when leaving agent mode
}

// UIConfig contains layout settings.
type UIConfig struct {
	LogRatio float64 `json:"logRatio,omitempty" yaml:"logRatio,omitempty"` // share of the chat view given to the debug log
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Enabled *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Level   string `json:"level,omitempty" yaml:"level,omitempty"`   // debug, info, warn, error
	Stdout  bool   `json:"stdout,omitempty" yaml:"stdout,omitempty"` // log to stdout
	File    string `json:"file,omitempty" yaml:"file,omitempty"`     // log file path
}

// ConfigDir returns the directory holding the config file.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// ConfigPath returns the full path of the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file and fills unset fields with defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config file, creating the config directory first.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	logger.Info("config saved", "path", path)
	return nil
}

// ResponseDelay returns the placeholder response delay as a duration.
func (c *Config) ResponseDelay() time.Duration {
	return time.Duration(c.Chat.ResponseDelayMS) * time.Millisecond
}

// BuildLoggerConfig converts the logging section into logger settings.
func (c *Config) BuildLoggerConfig() logger.Config {
	enabled := true
	if c.Logging.Enabled != nil {
		enabled = *c.Logging.Enabled
	}
	return logger.Config{
		Enabled: enabled,
		Level:   c.Logging.Level,
		Stdout:  c.Logging.Stdout,
		File:    c.Logging.File,
	}
}
