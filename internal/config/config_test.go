package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/pflag"

	"github.com/ezachrisen/factmatch/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := config.Load("", nil)
	is.NoErr(err)
	is.Equal(cfg, config.Default())
}

func TestLoadFile(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "factmatch.yaml")
	is.NoErr(os.WriteFile(path, []byte("log:\n  level: debug\noutput:\n  style: table\nengine: cel\n"), 0o600))

	cfg, err := config.Load(path, nil)
	is.NoErr(err)
	is.Equal(cfg.LogLevel, "debug")
	is.Equal(cfg.LogFormat, "text")
	is.Equal(cfg.OutputStyle, "table")
	is.Equal(cfg.Engine, "cel")
}

func TestLoadEnvironment(t *testing.T) {
	is := is.New(t)

	t.Setenv("FACTMATCH_LOG_FORMAT", "json")
	t.Setenv("FACTMATCH_ENGINE", "CEL")

	cfg, err := config.Load("", nil)
	is.NoErr(err)
	is.Equal(cfg.LogFormat, "json")
	is.Equal(cfg.Engine, "cel")
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	is := is.New(t)

	t.Setenv("FACTMATCH_OUTPUT_STYLE", "table")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "plain", "")
	flags.String("engine", "native", "")
	is.NoErr(flags.Parse([]string{"--output", "plain"}))

	cfg, err := config.Load("", flags)
	is.NoErr(err)
	is.Equal(cfg.OutputStyle, "plain")
	is.Equal(cfg.Engine, "native")
}

func TestLoadMissingFile(t *testing.T) {
	is := is.New(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	is.True(err != nil)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *config.Config)
		ok     bool
	}{
		{"defaults", func(c *config.Config) {}, true},
		{"bad level", func(c *config.Config) { c.LogLevel = "loud" }, false},
		{"bad format", func(c *config.Config) { c.LogFormat = "xml" }, false},
		{"bad style", func(c *config.Config) { c.OutputStyle = "fancy" }, false},
		{"bad engine", func(c *config.Config) { c.Engine = "rete" }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			is := is.New(t)
			cfg := config.Default()
			c.mutate(cfg)
			err := cfg.Validate()
			is.Equal(err == nil, c.ok)
		})
	}
}
