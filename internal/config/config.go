// Package config manages dotnetctl user preferences. Configuration is JSON
// at ~/.dotnetctl.json. A missing file yields an empty config so the tool
// works with defaults out of the box.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds user preferences.
type Config struct {
	// DotnetPath pins a specific dotnet binary instead of the PATH lookup.
	DotnetPath string `json:"dotnet_path,omitempty"`
	// ForceFormatTool makes `dotnetctl format` always go through
	// `dotnet tool run dotnet-format`.
	ForceFormatTool bool `json:"force_format_tool,omitempty"`
	// Verbosity is passed to toolchain verbs that accept --verbosity when
	// the caller does not set one (quiet, minimal, normal, detailed, diagnostic).
	Verbosity string `json:"verbosity,omitempty"`
}

// Path returns the absolute path to the configuration file.
func Path() string {
	home := os.Getenv("HOME")
	if home == "" {
		if wd, _ := os.Getwd(); wd != "" {
			return filepath.Join(wd, ".dotnetctl.json")
		}
	}
	return filepath.Join(home, ".dotnetctl.json")
}

// Load reads configuration from disk. A missing file returns an empty config
// and nil error; a corrupt file is treated as empty (non-fatal).
func Load() (*Config, error) {
	var cfg Config
	b, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return &Config{}, nil
	}
	return &cfg, nil
}

// Save writes configuration to disk.
func Save(cfg *Config) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(), b, 0o644)
}

// StateDir returns the dotnetctl state directory (~/.dotnetctl), creating it
// when missing.
func StateDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.Getwd()
	}
	dir := filepath.Join(home, ".dotnetctl")
	_ = os.MkdirAll(dir, 0o755)
	return dir
}
