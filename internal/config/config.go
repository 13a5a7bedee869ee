// Package config assembles the application configuration from defaults, an
// optional YAML file, CONCENTRATION_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const EnvPrefix = "CONCENTRATION_"

type Config struct {
	// Seed fixes the random source. Zero seeds from the clock.
	Seed         int64  `koanf:"seed"`
	Theme        string `koanf:"theme"`
	ThemesFile   string `koanf:"themes_file"`
	BonusSeconds int    `koanf:"bonus_seconds" validate:"gte=0"`
	LogLevel     string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFile      string `koanf:"log_file"`
	SSH          SSH    `koanf:"ssh"`
}

type SSH struct {
	Address     string        `koanf:"address" validate:"required"`
	HostKey     string        `koanf:"host_key"`
	IdleTimeout time.Duration `koanf:"idle_timeout" validate:"gte=0"`
}

// BonusTimeLimit converts BonusSeconds for the engine, where a negative
// limit disables the bonus.
func (c Config) BonusTimeLimit() time.Duration {
	if c.BonusSeconds == 0 {
		return -1
	}
	return time.Duration(c.BonusSeconds) * time.Second
}

func defaults() map[string]any {
	return map[string]any{
		"seed":             0,
		"theme":            "",
		"themes_file":      "",
		"bonus_seconds":    6,
		"log_level":        "info",
		"log_file":         "",
		"ssh.address":      ":23234",
		"ssh.host_key":     "",
		"ssh.idle_timeout": "30m",
	}
}

// Load builds the configuration. path may be empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return Config{}, fmt.Errorf("could not set default %s: %w", key, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("could not load config %s: %w", path, err)
		}
	}

	// CONCENTRATION_SSH__IDLE_TIMEOUT -> ssh.idle_timeout
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return Config{}, fmt.Errorf("could not load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagKey(flags)), nil); err != nil {
			return Config{}, fmt.Errorf("could not load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// flagNames maps command-line flags to config keys where the two differ.
var flagNames = map[string]string{
	"themes-file":  "themes_file",
	"bonus":        "bonus_seconds",
	"log-level":    "log_level",
	"log-file":     "log_file",
	"ssh":          "ssh.address",
	"host-key":     "ssh.host_key",
	"idle-timeout": "ssh.idle_timeout",
}

// flagKey skips flags that are not configuration, such as --config itself.
func flagKey(fs *pflag.FlagSet) func(*pflag.Flag) (string, interface{}) {
	known := defaults()
	return func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagNames[f.Name]
		if !ok {
			key = strings.ReplaceAll(f.Name, "-", "_")
		}
		if _, ok := known[key]; !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}
