package factmatch

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Result of evaluating a condition tree against a fact.
type Result struct {
	// The condition that was evaluated
	Condition Condition

	// Whether the condition matched the fact.
	// For a node that was skipped, Pass is false.
	Pass bool

	// Whether the node was visited. AND stops at the first child that
	// fails and OR stops at the first child that passes; the remaining
	// children (and their descendants) are reported with Evaluated = false.
	Evaluated bool

	// Results of the child conditions, in insertion order.
	Results []*Result
}

// Evaluate matches the fact against the condition and records, for every
// node in the tree, whether it was visited and what it returned.
// The root result's Pass is always equal to c.Matches(f).
func Evaluate(c Condition, f Fact) *Result {
	if isNil(c) {
		return &Result{}
	}
	return evaluate(c, f, true)
}

func evaluate(c Condition, f Fact, run bool) *Result {
	r := &Result{
		Condition: c,
		Evaluated: run,
	}
	kids := children(c)
	if len(kids) > 0 {
		r.Results = make([]*Result, 0, len(kids))
	}

	switch n := c.(type) {
	case *TermCondition:
		if run {
			r.Pass = n.term.Matches(f)
		}
	case *And:
		r.Pass = run
		decided := false
		for _, child := range kids {
			cr := evaluate(child, f, run && !decided)
			r.Results = append(r.Results, cr)
			if cr.Evaluated && !cr.Pass {
				r.Pass = false
				decided = true
			}
		}
	case *Or:
		decided := false
		for _, child := range kids {
			cr := evaluate(child, f, run && !decided)
			r.Results = append(r.Results, cr)
			if cr.Evaluated && cr.Pass {
				r.Pass = true
				decided = true
			}
		}
	}
	return r
}

// EvaluatedCount returns the number of nodes that were visited.
func (u *Result) EvaluatedCount() int {
	if u == nil || !u.Evaluated {
		return 0
	}
	n := 1
	for _, c := range u.Results {
		n += c.EvaluatedCount()
	}
	return n
}

// String produces a table of the conditions in the tree and the result of
// evaluating each one.
func (u *Result) String() string {
	tw := table.NewWriter()
	tw.SetTitle("\nEVALUATION RESULT SUMMARY\n")
	tw.AppendHeader(table.Row{"\nCondition", "\nType", "Pass/\nFail", "Chil-\ndren", "Evalu-\nated"})
	for _, r := range u.resultsToRows(0) {
		tw.AppendRow(r)
	}
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	return tw.Render()
}

func boolString(b bool) string {
	switch b {
	case true:
		return "PASS"
	default:
		return "FAIL"
	}
}

// outcome is PASS or FAIL for evaluated nodes and SKIP for the rest.
func (u *Result) outcome() string {
	if !u.Evaluated {
		return "SKIP"
	}
	return boolString(u.Pass)
}

// resultsToRows transforms the Result tree to a list of rows
// for inclusion in a table.Writer table.
func (u *Result) resultsToRows(n int) []table.Row {
	if u.Condition == nil {
		return nil
	}
	indent := strings.Repeat("  ", n)
	rows := []table.Row{{
		fmt.Sprintf("%s%s", indent, label(u.Condition)),
		u.Condition.Type().String(),
		u.outcome(),
		fmt.Sprintf("%d", len(u.Results)),
		trueFalse(u.Evaluated),
	}}
	for _, cd := range u.Results {
		rows = append(rows, cd.resultsToRows(n+1)...)
	}
	return rows
}

func trueFalse(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
