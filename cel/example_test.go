package cel_test

import (
	"fmt"

	"github.com/ezachrisen/factmatch"
	"github.com/ezachrisen/factmatch/cel"
)

// Example showing a condition tree compiled to CEL and evaluated
func Example() {
	c := factmatch.NewOr(
		factmatch.NewTermCondition(factmatch.NewTerm("x", factmatch.Equal, "5")),
		factmatch.NewTermCondition(factmatch.NewTerm("y", factmatch.Equal, "2")),
	)

	p, err := cel.Compile(c)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Expr())

	for _, f := range []factmatch.Fact{
		factmatch.NewFact("x", "5"),
		factmatch.NewFact("z", "5"),
	} {
		ok, err := p.Matches(f)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s : %t\n", f, ok)
	}
	// Output:
	// ((variable == "x" && value == "5") || (variable == "y" && value == "2"))
	// x=5 : true
	// z=5 : false
}
