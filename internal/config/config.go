// Package config loads kenyaloc CLI settings from a config file, the
// environment (KENYALOC_*) and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyGazetteer    = "gazetteer"
	KeyTypoDistance = "typo_distance"
	KeySearchLimit  = "search_limit"
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
)

// EnvPrefix prefixes every environment override, e.g. KENYALOC_LOG_LEVEL.
const EnvPrefix = "KENYALOC"

// Config holds the CLI settings.
type Config struct {
	// Gazetteer is a YAML gazetteer file; empty uses the built-in data.
	Gazetteer string `mapstructure:"gazetteer"`
	// TypoDistance enables the typo tier of the matcher (0 = disabled).
	TypoDistance int `mapstructure:"typo_distance"`
	// SearchLimit is the default result cap for the search command.
	SearchLimit int `mapstructure:"search_limit"`
	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// LogFormat is "console" or "json".
	LogFormat string `mapstructure:"log_format"`
}

// New returns a viper instance with defaults and environment overrides set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyGazetteer, "")
	v.SetDefault(KeyTypoDistance, 0)
	v.SetDefault(KeySearchLimit, 20)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds the flags that share a name with a config key
// ("typo-distance" binds "typo_distance").
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyGazetteer, KeyTypoDistance, KeySearchLimit, KeyLogLevel, KeyLogFormat} {
		f := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", f.Name, err)
		}
	}
	return nil
}

// Load reads the config file and returns the merged configuration. When
// configFile is empty, kenyaloc.yaml is looked up in the working directory
// and $HOME/.config/kenyaloc; a missing file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("kenyaloc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/kenyaloc")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.TypoDistance < 0 || c.TypoDistance > 2 {
		errs = append(errs, fmt.Errorf("config: typo_distance must be between 0 and 2, got %d", c.TypoDistance))
	}
	if c.SearchLimit < 1 {
		errs = append(errs, fmt.Errorf("config: search_limit must be positive, got %d", c.SearchLimit))
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("config: log_format must be console or json, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}
