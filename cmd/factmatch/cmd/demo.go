package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ezachrisen/factmatch"
)

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in example rule against four facts",
		Long: `demo builds the rule "Test Rule" = OR(x == 5, y == 2), prints it,
and matches the facts x=5, y=2, x=3 and z=5 against it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd.OutOrStdout())
		},
	}
}

func (a *app) runDemo(w io.Writer) error {
	facts := []factmatch.Fact{
		factmatch.NewFact("x", "5"),
		factmatch.NewFact("y", "2"),
		factmatch.NewFact("x", "3"),
		factmatch.NewFact("z", "5"),
	}

	or, err := factmatch.NewCondition(factmatch.OrType, nil)
	if err != nil {
		return err
	}
	for _, t := range []factmatch.Term{
		factmatch.NewTerm("x", factmatch.Equal, "5"),
		factmatch.NewTerm("y", factmatch.Equal, "2"),
	} {
		c, err := factmatch.NewCondition(factmatch.TermType, &t)
		if err != nil {
			return err
		}
		if err := factmatch.AddChild(or, c); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Condition:\n%s\n\n", or)

	rule := factmatch.NewRule("Test Rule", or)
	if err := a.printRule(w, rule); err != nil {
		return err
	}
	fmt.Fprintln(w)

	a.log.Debug().Str("rule", rule.Name).Int("facts", len(facts)).Msg("matching")
	return a.matchFacts(w, rule, facts)
}
