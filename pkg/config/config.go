// Package config loads per-user settings for an application from an
// XDG-compliant YAML file and environment variables.
//
// Priority: environment > config file > built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds user overrides for an application.
type Config struct {
	// DefaultCommand replaces the application's fallback command when set.
	// An empty string disables the fallback.
	DefaultCommand *string `yaml:"default_command,omitempty"`
	// Verbose makes the verbose flag default to on.
	Verbose bool `yaml:"verbose,omitempty"`
	// NoColor disables styled output.
	NoColor bool `yaml:"no_color,omitempty"`
	// Cwd overrides the reported working directory.
	Cwd string `yaml:"cwd,omitempty"`
}

// Loader loads configuration for one application.
type Loader struct {
	appName   string
	envPrefix string
}

// NewLoader creates a loader for appName. Environment variables are read
// with the upper-cased app name as prefix, e.g. MY_APP_VERBOSE.
func NewLoader(appName string) *Loader {
	return &Loader{
		appName:   appName,
		envPrefix: strings.ToUpper(strings.ReplaceAll(appName, "-", "_")),
	}
}

// Load reads the config file, if any, and applies environment overrides.
func (l *Loader) Load() (*Config, error) {
	cfg, err := l.loadFile()
	if err != nil {
		return nil, err
	}

	l.applyEnvironmentOverrides(cfg)
	return cfg, nil
}

// Path returns the config file location: <PREFIX>_CONFIG when set,
// otherwise $XDG_CONFIG_HOME/<app>/config.yaml.
func (l *Loader) Path() string {
	if customPath := os.Getenv(l.envPrefix + "_CONFIG"); customPath != "" {
		return customPath
	}
	return filepath.Join(xdg.ConfigHome, l.appName, "config.yaml")
}

// Save writes cfg to the config file location.
func (l *Loader) Save(cfg *Config) error {
	path := l.Path()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// loadFile reads the YAML config file. A missing file is not an error.
func (l *Loader) loadFile() (*Config, error) {
	path := l.Path()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// applyEnvironmentOverrides applies <PREFIX>_DEFAULT_COMMAND,
// <PREFIX>_VERBOSE, <PREFIX>_NO_COLOR and <PREFIX>_CWD. The conventional
// NO_COLOR variable is honoured as well.
func (l *Loader) applyEnvironmentOverrides(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(l.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if v.IsSet("default_command") {
		cmd := v.GetString("default_command")
		cfg.DefaultCommand = &cmd
	}
	if v.IsSet("verbose") {
		cfg.Verbose = v.GetBool("verbose")
	}
	if v.IsSet("no_color") {
		cfg.NoColor = v.GetBool("no_color")
	}
	if v.IsSet("cwd") {
		cfg.Cwd = v.GetString("cwd")
	}

	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
}
