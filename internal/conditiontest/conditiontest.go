// Package conditiontest builds condition trees and facts for tests.
package conditiontest

import (
	"math/rand"

	"github.com/ezachrisen/factmatch"
)

// Variables and Values are the vocabulary used by random trees and facts.
// They are kept small so that random facts match random terms often.
var (
	Variables = []string{"x", "y", "z"}
	Values    = []string{"2", "3", "5"}
)

// Fact returns a fact drawn from the vocabulary.
func Fact(r *rand.Rand) factmatch.Fact {
	return factmatch.NewFact(Variables[r.Intn(len(Variables))], Values[r.Intn(len(Values))])
}

// Term returns a term drawn from the vocabulary with a random operator.
func Term(r *rand.Rand) factmatch.Term {
	op := factmatch.Equal
	if r.Intn(2) == 1 {
		op = factmatch.NotEqual
	}
	return factmatch.NewTerm(Variables[r.Intn(len(Variables))], op, Values[r.Intn(len(Values))])
}

// RandomTree returns a tree of at most maxDepth levels. Combinators get
// between zero and four children, so empty AND and OR nodes do occur.
func RandomTree(r *rand.Rand, maxDepth int) factmatch.Condition {
	if maxDepth <= 1 || r.Intn(3) == 0 {
		return factmatch.NewTermCondition(Term(r))
	}
	n := r.Intn(5)
	kids := make([]factmatch.Condition, n)
	for i := range kids {
		kids[i] = RandomTree(r, maxDepth-1)
	}
	if r.Intn(2) == 0 {
		return factmatch.NewAnd(kids...)
	}
	return factmatch.NewOr(kids...)
}

// Reversed returns a copy of the tree with the children of every AND and OR
// in reverse order.
func Reversed(c factmatch.Condition) factmatch.Condition {
	kids := c.Children()
	rev := make([]factmatch.Condition, len(kids))
	for i, k := range kids {
		rev[len(kids)-1-i] = Reversed(k)
	}
	switch n := c.(type) {
	case *factmatch.And:
		return factmatch.NewAnd(rev...)
	case *factmatch.Or:
		return factmatch.NewOr(rev...)
	case *factmatch.TermCondition:
		return factmatch.NewTermCondition(n.Term())
	}
	return nil
}

// SampleRule is the OR of x == 5 and y == 2.
func SampleRule() *factmatch.Rule {
	return factmatch.NewRule("Test Rule", factmatch.NewOr(
		factmatch.NewTermCondition(factmatch.NewTerm("x", factmatch.Equal, "5")),
		factmatch.NewTermCondition(factmatch.NewTerm("y", factmatch.Equal, "2")),
	))
}
