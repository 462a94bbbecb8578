package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath overrides the location of the global config file.
const EnvConfigPath = "GITLINK_CONFIG"

// Default values.
const (
	DefaultRemote = "origin"
	DefaultRef    = "HEAD"
)

// Config holds the gitlink configuration
type Config struct {
	Remote    string            `toml:"remote"`
	Ref       string            `toml:"ref"`
	Hyperlink bool              `toml:"hyperlink"`
	Hosts     map[string]string `toml:"hosts"` // hostname -> forge name
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Remote:    DefaultRemote,
		Ref:       DefaultRef,
		Hyperlink: true,
	}
}

// Path returns the path to the global config file.
// GITLINK_CONFIG takes precedence over ~/.config/gitlink/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitlink", "config.toml"), nil
}

// Load reads the global config file.
// Returns Default() if the file doesn't exist (no error).
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from path.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Decode over the defaults so absent keys keep their default value.
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Hosts = normalizeHosts(cfg.Hosts)
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config stored in ctx, or defaults if none.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok && cfg != nil {
		return cfg
	}
	cfg := Default()
	return &cfg
}
