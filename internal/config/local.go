package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repository config file at the workspace root.
const LocalConfigFileName = ".gitlink.toml"

// LocalConfig holds per-repo overrides from .gitlink.toml.
// Zero values mean "not set" (inherit from global).
type LocalConfig struct {
	Remote string            `toml:"remote"`
	Ref    string            `toml:"ref"`
	Hosts  map[string]string `toml:"hosts"` // merged over global hosts
}

// LoadLocal reads .gitlink.toml from root.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(root string) (*LocalConfig, error) {
	configFile := filepath.Join(root, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	local.Hosts = normalizeHosts(local.Hosts)
	if local.Remote != "" {
		if err := ValidateRemote(local.Remote); err != nil {
			return nil, fmt.Errorf("%s: %w", configFile, err)
		}
	}
	if local.Ref != "" {
		if err := ValidateRef(local.Ref); err != nil {
			return nil, fmt.Errorf("%s: %w", configFile, err)
		}
	}
	if err := validateHosts(local.Hosts); err != nil {
		return nil, fmt.Errorf("%s: %w", configFile, err)
	}

	return &local, nil
}

// MergeLocal merges a local per-repo config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global
	if local.Remote != "" {
		merged.Remote = local.Remote
	}
	if local.Ref != "" {
		merged.Ref = local.Ref
	}
	if len(local.Hosts) > 0 {
		merged.Hosts = make(map[string]string, len(global.Hosts)+len(local.Hosts))
		maps.Copy(merged.Hosts, global.Hosts)
		maps.Copy(merged.Hosts, local.Hosts)
	}
	return &merged
}

// ForWorkspace returns global merged with the .gitlink.toml found at root.
func ForWorkspace(global *Config, root string) (*Config, error) {
	local, err := LoadLocal(root)
	if err != nil {
		return nil, err
	}
	return MergeLocal(global, local), nil
}
