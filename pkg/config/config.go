// pkg/config/config.go

// Package config loads tool configuration with layered precedence:
// built-in defaults, then the rig.yaml file, then RIG_-prefixed
// environment variables. Command-line flags override on top, applied by
// the CLI layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment variables read by Load.
const envPrefix = "RIG_"

// Config holds rig's tool-level settings.
type Config struct {
	// StackDir is the directory holding stack files.
	StackDir string `koanf:"stack_dir"`

	// AliasFile is the optional TOML registry of per-backend package
	// name aliases.
	AliasFile string `koanf:"alias_file"`

	// LogFile receives the structured log stream; empty disables file
	// logging.
	LogFile string `koanf:"log_file"`

	// Quiet suppresses console output below warnings.
	Quiet bool `koanf:"quiet"`

	// Verbosity raises log detail: 0 info, 1 debug, 2+ trace.
	Verbosity int `koanf:"verbosity"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StackDir:  filepath.Join(xdg.ConfigHome, "rig", "stacks"),
		AliasFile: filepath.Join(xdg.ConfigHome, "rig", "aliases.toml"),
		LogFile:   filepath.Join(xdg.StateHome, "rig", "rig.log"),
	}
}

// DefaultPath is where Load looks for rig.yaml when no path is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "rig", "rig.yaml")
}

// Load builds the effective configuration. An explicitly named file
// must exist; the default path is optional.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"stack_dir":  defaults.StackDir,
		"alias_file": defaults.AliasFile,
		"log_file":   defaults.LogFile,
		"quiet":      defaults.Quiet,
		"verbosity":  defaults.Verbosity,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
