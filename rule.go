package factmatch

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// A Rule gives a name to a condition tree.
//
// The rule owns its condition: once the rule is built, the tree must not be
// changed or attached to another parent. A built rule can be matched from
// any number of goroutines at the same time.
//
// # Example Rule Structures
//
//	Rule with a single term:
//	 The rule matches facts about the term's variable that
//	 satisfy the term's operator.
//
//	Rule with an OR of terms:
//	 The rule matches if any of the terms matches. Terms
//	 on different variables never match the same fact.
//
//	Rule with an AND of terms:
//	 The rule matches only if every term matches. This is
//	 useful to combine terms on the same variable, for example
//	 x != 3 AND x != 4.
type Rule struct {
	// A name for the rule. Not used for matching.
	Name string

	// The root of the condition tree. A rule without a condition
	// never matches.
	Condition Condition
}

// NewRule returns a rule with the name and root condition.
func NewRule(name string, c Condition) *Rule {
	return &Rule{
		Name:      name,
		Condition: c,
	}
}

// Matches reports whether the fact satisfies the rule's condition.
func (r *Rule) Matches(f Fact) bool {
	if r == nil || isNil(r.Condition) {
		return false
	}
	return r.Condition.Matches(f)
}

// Evaluate matches the fact against the rule and returns the evaluation
// trace. Result.Pass is always the same as Matches.
func (r *Rule) Evaluate(f Fact) *Result {
	if r == nil || isNil(r.Condition) {
		return &Result{}
	}
	return Evaluate(r.Condition, f)
}

// String returns a table of all the conditions in the rule, in evaluation
// order.
func (r *Rule) String() string {
	if r == nil {
		return ""
	}
	tw := table.NewWriter()
	tw.SetTitle("\nRULE: %s\n", r.Name)
	tw.AppendHeader(table.Row{"\nCondition", "\nType", "\nTerm", "Chil-\ndren"})

	for _, row := range conditionRows(r.Condition) {
		tw.AppendRow(row)
	}

	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	return tw.Render()
}

// Tree returns the rule name followed by a box-drawing picture of its
// condition tree.
func (r *Rule) Tree() string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(r.Name)
	sb.WriteString("\n")
	if !isNil(r.Condition) {
		sb.WriteString(Tree(r.Condition))
	}
	return sb.String()
}

func conditionRows(c Condition) []table.Row {
	rows := []table.Row{}
	_ = Walk(c, func(n Condition, depth int) error {
		term := ""
		if t, ok := n.(*TermCondition); ok {
			term = t.term.String()
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%s%s", strings.Repeat("  ", depth), label(n)),
			n.Type().String(),
			term,
			fmt.Sprintf("%d", len(children(n))),
		})
		return nil
	})
	return rows
}
