package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/ezachrisen/factmatch"
	"github.com/ezachrisen/factmatch/cel"
	"github.com/ezachrisen/factmatch/ruledef"
)

func newMatchCommand(a *app) *cobra.Command {
	var (
		ruleFile string
		explain  bool
	)

	cmd := &cobra.Command{
		Use:   "match -r RULE_FILE FACT...",
		Short: "Match facts against a rule definition",
		Long: `match loads a rule definition (YAML or JSON) and matches each fact
against it independently. Facts are written variable=value.`,
		Example: `  factmatch match -r rule.yaml x=5 y=2
  factmatch match -r rule.yaml --engine cel --explain x=3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			facts := make([]factmatch.Fact, 0, len(args))
			for _, s := range args {
				f, err := factmatch.ParseFact(s)
				if err != nil {
					return err
				}
				facts = append(facts, f)
			}

			rule, err := a.loadRule(ruleFile)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if err := a.matchFacts(w, rule, facts); err != nil {
				return err
			}
			if explain {
				for _, f := range facts {
					fmt.Fprintln(w)
					fmt.Fprintln(w, rule.Evaluate(f).Report(f))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&ruleFile, "rule", "r", "", "rule definition file (required)")
	cmd.Flags().BoolVar(&explain, "explain", false, "print an evaluation report for each fact")
	cmd.Flags().String("engine", "native", "matching engine (native, cel)")
	_ = cmd.MarkFlagRequired("rule")
	return cmd
}

func (a *app) loadRule(path string) (*factmatch.Rule, error) {
	rule, err := ruledef.Load(path)
	if err != nil {
		a.log.Error().Err(err).Str("file", path).Msg("loading rule")
		return nil, err
	}
	a.log.Debug().
		Str("rule", rule.Name).
		Int("conditions", factmatch.Count(rule.Condition)).
		Int("depth", factmatch.Depth(rule.Condition)).
		Msg("rule loaded")
	return rule, nil
}

// matcher returns the match function for the configured engine.
func (a *app) matcher(rule *factmatch.Rule) (func(factmatch.Fact) (bool, error), error) {
	if a.cfg.Engine != "cel" {
		return func(f factmatch.Fact) (bool, error) {
			return rule.Matches(f), nil
		}, nil
	}
	prg, err := cel.Compile(rule.Condition)
	if err != nil {
		return nil, fmt.Errorf("compiling rule %q: %w", rule.Name, err)
	}
	a.log.Debug().Str("rule", rule.Name).Str("expr", prg.Expr()).Msg("compiled to CEL")
	return prg.Matches, nil
}

// matchFacts matches each fact against the rule and prints one line (or
// table row) per fact.
func (a *app) matchFacts(w io.Writer, rule *factmatch.Rule, facts []factmatch.Fact) error {
	match, err := a.matcher(rule)
	if err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Fact", "Result"})
	for _, f := range facts {
		ok, err := match(f)
		if err != nil {
			return err
		}
		a.log.Debug().Str("fact", f.String()).Bool("match", ok).Msg("matched")
		if a.cfg.OutputStyle == "table" {
			tw.AppendRow(table.Row{f.String(), ok})
			continue
		}
		fmt.Fprintf(w, "%s : %t\n", f, ok)
	}

	if a.cfg.OutputStyle == "table" {
		style := table.StyleLight
		style.Format.Header = text.FormatDefault
		tw.SetStyle(style)
		fmt.Fprintln(w, tw.Render())
	}
	return nil
}

func (a *app) printRule(w io.Writer, rule *factmatch.Rule) error {
	if a.cfg.OutputStyle == "table" {
		_, err := fmt.Fprintln(w, rule.String())
		return err
	}
	_, err := fmt.Fprintf(w, "Rule Name: %s\nRule Condition:\n%s\n", rule.Name, rule.Condition)
	return err
}
