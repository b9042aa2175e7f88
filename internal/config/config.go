// Package config loads tool configuration from defaults, an optional
// fluxo.yaml, FLUXO_* environment variables and command-line flags, in
// ascending order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds all tool options.
type Config struct {
	// HistoryFile is where the interactive shell persists line history.
	HistoryFile string `koanf:"history_file" yaml:"history_file"`
	// Color selects output styling: auto, always or never.
	Color string `koanf:"color" yaml:"color"`
	// Verbose enables debug-level logging.
	Verbose bool `koanf:"verbose" yaml:"verbose"`
	// Reduce tunes the normalization engine.
	Reduce ReduceConfig `koanf:"reduce" yaml:"reduce"`
}

// ReduceConfig bounds beta-reduction.
type ReduceConfig struct {
	// MaxSteps is the pass budget before reduction reports failure.
	MaxSteps int `koanf:"max_steps" yaml:"max_steps"`
}

const (
	DefaultColor    = "auto"
	DefaultMaxSteps = 10000

	defaultHistoryName = ".fluxo_history"
	envPrefix          = "FLUXO_"
)

// configFileUsed tracks the file the last Load call read, for diagnostics.
var configFileUsed string

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HistoryFile: defaultHistoryFile(),
		Color:       DefaultColor,
		Verbose:     false,
		Reduce:      ReduceConfig{MaxSteps: DefaultMaxSteps},
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultHistoryName
	}
	return filepath.Join(home, defaultHistoryName)
}

// findConfigFile finds the config file to use.
// Priority: explicit path > fluxo.yaml > fluxo.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"fluxo.yaml", "fluxo.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load layers configuration sources. Precedence (highest to lowest):
// flags > env vars > config file > defaults. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	def := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"history_file":     def.HistoryFile,
		"color":            def.Color,
		"verbose":          def.Verbose,
		"reduce.max_steps": def.Reduce.MaxSteps,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), kyaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// FLUXO_REDUCE_MAX_STEPS -> reduce.max_steps, FLUXO_COLOR -> color
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "reduce_", "reduce.", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// FileUsed reports the config file the last Load call read, if any.
func FileUsed() string {
	return configFileUsed
}

// WriteDefault writes the built-in configuration to path as YAML, refusing to
// clobber an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to render default config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
