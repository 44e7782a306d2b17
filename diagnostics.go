package factmatch

import (
	"fmt"
	"strings"

	"github.com/Delta456/box-cli-maker/v2"
	"github.com/alexeyco/simpletable"
	"github.com/dustin/go-humanize"
)

// Report renders a boxed diagnostic report of the evaluation: the fact,
// every node in the tree with its outcome, and a one-line summary.
func (u *Result) Report(f Fact) string {
	Box := box.New(box.Config{Px: 2, Py: 1, Type: "Double", TitlePos: "Top", ContentAlign: "Left"})

	s := strings.Builder{}
	s.WriteString("Fact:\n")
	s.WriteString("-----\n")
	s.WriteString(factTable(f).String())
	s.WriteString("\n\n")

	s.WriteString("Evaluation State:\n")
	s.WriteString("-----------------\n")
	s.WriteString(u.evaluationTable().String())
	s.WriteString("\n\n")

	total := 0
	if u.Condition != nil {
		total = Count(u.Condition)
	}
	s.WriteString(fmt.Sprintf("Result: %s (%s of %s conditions evaluated)",
		boolString(u.Pass), humanize.Comma(int64(u.EvaluatedCount())), humanize.Comma(int64(total))))

	return Box.String("FACT EVALUATION DIAGNOSTIC REPORT", s.String())
}

func factTable(f Fact) *simpletable.Table {
	table := simpletable.New()
	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignCenter, Text: "Variable"},
			{Align: simpletable.AlignCenter, Text: "Value"},
		},
	}
	table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
		{Text: f.Variable},
		{Text: f.Value},
	})
	table.SetStyle(simpletable.StyleUnicode)
	return table
}

func (u *Result) evaluationTable() *simpletable.Table {
	table := simpletable.New()
	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignCenter, Text: "Path"},
			{Align: simpletable.AlignCenter, Text: "Condition"},
			{Align: simpletable.AlignCenter, Text: "Result"},
		},
	}

	for _, fr := range flattenResults(u, "") {
		table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
			{Text: fr.path},
			{Text: label(fr.result.Condition)},
			{Align: simpletable.AlignCenter, Text: fr.result.outcome()},
		})
	}
	table.SetStyle(simpletable.StyleUnicode)
	return table
}

type pathResult struct {
	path   string
	result *Result
}

// flattenResults lists the results depth first. Paths are the child
// positions from the root, e.g. "1.2" is the second child of the first
// child; the root's path is ".".
func flattenResults(u *Result, path string) []pathResult {
	if u == nil || u.Condition == nil {
		return nil
	}
	p := path
	if p == "" {
		p = "."
	}
	l := []pathResult{{path: p, result: u}}
	for i, c := range u.Results {
		cp := fmt.Sprintf("%d", i+1)
		if path != "" {
			cp = path + "." + cp
		}
		l = append(l, flattenResults(c, cp)...)
	}
	return l
}
