// Package config loads CLI settings from an optional YAML file and
// FORMGATE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Output formats understood by the CLI.
const (
	OutputPretty = "pretty"
	OutputJSON   = "json"
)

// EnvPrefix namespaces environment overrides, e.g. FORMGATE_LOCALE.
const EnvPrefix = "FORMGATE"

// Config holds resolved settings.
type Config struct {
	Locale  string `mapstructure:"locale"`
	Catalog string `mapstructure:"catalog"`
	Output  string `mapstructure:"output"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load resolves settings from file (when non-empty), then
// $HOME/.formgate.yaml when present, then the environment. A missing default
// file is not an error; a missing explicit file is.
//
// The result is not validated: callers layer flag overrides on top and call
// Validate on the final value.
func Load(v *viper.Viper, file string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	v.SetDefault("locale", "en")
	v.SetDefault("catalog", "")
	v.SetDefault("output", OutputPretty)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".formgate")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: read %s: %w", filepath.Join(home, ".formgate.yaml"), err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Output {
	case OutputPretty, OutputJSON:
	default:
		return fmt.Errorf("config: unsupported output %q (want %s or %s)", c.Output, OutputPretty, OutputJSON)
	}
	if strings.TrimSpace(c.Locale) == "" {
		return errors.New("config: locale must not be empty")
	}
	return nil
}
