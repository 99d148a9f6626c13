package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Package-level config file tracking and the loaded config for access by
// commands.
var (
	configFileUsed string
	currentConfig  *Config
)

// findConfigFile finds the config file to use.
// Priority: explicit path > leapprep.yaml > leapprep.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"leapprep.yaml", "leapprep.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load merges configuration from defaults, the config file, LEAPPREP_
// environment variables, and the given flag set (highest priority). The
// result is stored for later access via Current.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"delimiter":   DefaultDelimiter,
		"null_values": DefaultNullValues(),
		"history":     DefaultHistoryFile,
		"output":      DefaultOutput,
		"verbose":     false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	configFileUsed = ""
	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		configFileUsed = path
	}

	if err := k.Load(env.Provider("LEAPPREP_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LEAPPREP_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flag config: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	currentConfig = cfg
	return cfg, nil
}

// Current returns the most recently loaded config, or defaults if Load has
// not run.
func Current() *Config {
	if currentConfig != nil {
		return currentConfig
	}
	return DefaultConfig()
}

// GetConfigFileUsed returns the path of the config file that was loaded, if
// any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// NewLogger builds the CLI logger: debug-level text on stderr when verbose,
// otherwise discard.
func NewLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
