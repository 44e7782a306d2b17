// Package cmd implements the factmatch command line.
package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ezachrisen/factmatch/internal/config"
	"github.com/ezachrisen/factmatch/internal/logging"
)

// app is the state shared by the subcommands, set up before each one runs.
type app struct {
	configFile string
	cfg        *config.Config
	log        zerolog.Logger
}

// NewRootCommand returns the factmatch command with all subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{
		cfg: config.Default(),
		log: zerolog.Nop(),
	}

	root := &cobra.Command{
		Use:           "factmatch",
		Short:         "Match facts against rules",
		Long:          `factmatch tests whether a fact (variable=value) satisfies a rule built from == and != terms combined with AND and OR.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log, err = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			a.log.Debug().
				Str("engine", cfg.Engine).
				Str("output", cfg.OutputStyle).
				Str("command", cmd.Name()).
				Msg("configuration loaded")
			return nil
		},
	}

	d := config.Default()
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file path")
	root.PersistentFlags().String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", d.LogFormat, "log format (text, json)")
	root.PersistentFlags().String("output", d.OutputStyle, "output style (plain, table)")

	root.AddCommand(
		newDemoCommand(a),
		newMatchCommand(a),
		newShowCommand(a),
	)
	return root
}

// Execute runs the command line and reports any error on stderr.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil {
		root.PrintErrln("Error:", err)
	}
	return err
}
