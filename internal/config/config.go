// Package config loads the factmatch command configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "FACTMATCH"

// Config holds the command configuration.
// Flags > environment (FACTMATCH_*) > config file > defaults.
type Config struct {
	LogLevel    string // debug, info, warn, error
	LogFormat   string // text, json
	OutputStyle string // plain, table
	Engine      string // native, cel
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel:    "warn",
		LogFormat:   "text",
		OutputStyle: "plain",
		Engine:      "native",
	}
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"output":     "output.style",
	"engine":     "engine",
}

// Load reads the configuration file at configPath (optional), the
// environment, and any of the flags in flags that were set.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("log.level", d.LogLevel)
	v.SetDefault("log.format", d.LogFormat)
	v.SetDefault("output.style", d.OutputStyle)
	v.SetDefault("engine", d.Engine)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{
		LogLevel:    strings.ToLower(v.GetString("log.level")),
		LogFormat:   strings.ToLower(v.GetString("log.format")),
		OutputStyle: strings.ToLower(v.GetString("output.style")),
		Engine:      strings.ToLower(v.GetString("engine")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the command does not understand.
func (c *Config) Validate() error {
	if !oneOf(c.LogLevel, "debug", "info", "warn", "error") {
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	if !oneOf(c.LogFormat, "text", "json") {
		return fmt.Errorf("log.format must be text or json, got %q", c.LogFormat)
	}
	if !oneOf(c.OutputStyle, "plain", "table") {
		return fmt.Errorf("output.style must be plain or table, got %q", c.OutputStyle)
	}
	if !oneOf(c.Engine, "native", "cel") {
		return fmt.Errorf("engine must be native or cel, got %q", c.Engine)
	}
	return nil
}

func oneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
