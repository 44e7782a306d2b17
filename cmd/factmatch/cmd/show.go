package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezachrisen/factmatch"
	"github.com/ezachrisen/factmatch/cel"
	"github.com/ezachrisen/factmatch/ruledef"
)

func newShowCommand(a *app) *cobra.Command {
	var (
		ruleFile string
		showCEL  bool
		showYAML bool
	)

	cmd := &cobra.Command{
		Use:   "show -r RULE_FILE",
		Short: "Print a rule definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := a.loadRule(ruleFile)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			switch {
			case showCEL:
				fmt.Fprintln(w, cel.Expr(rule.Condition))
			case showYAML:
				out, err := ruledef.Marshal(rule)
				if err != nil {
					return err
				}
				fmt.Fprint(w, string(out))
			default:
				if err := a.printRule(w, rule); err != nil {
					return err
				}
				fmt.Fprintln(w)
				fmt.Fprint(w, factmatch.Tree(rule.Condition))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&ruleFile, "rule", "r", "", "rule definition file (required)")
	cmd.Flags().BoolVar(&showCEL, "cel", false, "print the rule as a CEL expression")
	cmd.Flags().BoolVar(&showYAML, "yaml", false, "print the rule definition as YAML")
	cmd.MarkFlagsMutuallyExclusive("cel", "yaml")
	_ = cmd.MarkFlagRequired("rule")
	return cmd
}
