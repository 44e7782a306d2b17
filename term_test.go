package factmatch_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/matryer/is"

	"github.com/ezachrisen/factmatch"
)

func TestTermMatches(t *testing.T) {
	cases := []struct {
		term factmatch.Term
		fact factmatch.Fact
		want bool
	}{
		{factmatch.NewTerm("x", factmatch.Equal, "5"), factmatch.NewFact("x", "5"), true},
		{factmatch.NewTerm("x", factmatch.Equal, "5"), factmatch.NewFact("x", "3"), false},
		{factmatch.NewTerm("x", factmatch.Equal, "5"), factmatch.NewFact("y", "2"), false},
		{factmatch.NewTerm("x", factmatch.Equal, "5"), factmatch.NewFact("y", "5"), false},
		{factmatch.NewTerm("x", factmatch.NotEqual, "3"), factmatch.NewFact("x", "5"), true},
		{factmatch.NewTerm("x", factmatch.NotEqual, "3"), factmatch.NewFact("x", "3"), false},
		{factmatch.NewTerm("x", factmatch.NotEqual, "3"), factmatch.NewFact("y", "7"), false},
		{factmatch.NewTerm("", factmatch.Equal, ""), factmatch.NewFact("", ""), true},
		{factmatch.NewTerm("x", factmatch.NotEqual, ""), factmatch.NewFact("x", ""), false},
		{factmatch.NewTerm("x", factmatch.Operator(42), "5"), factmatch.NewFact("x", "5"), false},
	}

	for _, c := range cases {
		t.Run(c.term.String()+" on "+c.fact.String(), func(t *testing.T) {
			is := is.New(t)
			is.Equal(c.term.Matches(c.fact), c.want)
		})
	}
}

func TestOperator(t *testing.T) {
	is := is.New(t)

	is.Equal(factmatch.Equal.String(), "==")
	is.Equal(factmatch.NotEqual.String(), "!=")
	is.Equal(factmatch.Operator(7).String(), "Operator(7)")

	for _, s := range []string{"==", "eq", "EQUAL", " equals "} {
		op, err := factmatch.ParseOperator(s)
		is.NoErr(err)
		is.Equal(op, factmatch.Equal)
	}
	for _, s := range []string{"!=", "ne", "Not_Equal", "<>"} {
		op, err := factmatch.ParseOperator(s)
		is.NoErr(err)
		is.Equal(op, factmatch.NotEqual)
	}

	_, err := factmatch.ParseOperator(">=")
	is.True(errors.Is(err, factmatch.ErrUnknownOperator))
}

func TestTermString(t *testing.T) {
	is := is.New(t)
	is.Equal(factmatch.NewTerm("x", factmatch.Equal, "5").String(), "x == 5")
	is.Equal(factmatch.NewTerm("x", factmatch.NotEqual, "3").String(), "x != 3")
}

func TestTermProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	// a small alphabet makes equal strings likely
	str := gen.OneConstOf("", "a", "b", "ab")
	op := gen.OneConstOf(factmatch.Equal, factmatch.NotEqual)

	properties.Property("a term never matches another variable", prop.ForAll(
		func(tv, fv, tval, fval string, o factmatch.Operator) bool {
			if tv == fv {
				return true
			}
			return !factmatch.NewTerm(tv, o, tval).Matches(factmatch.NewFact(fv, fval))
		},
		str, str, str, str, op,
	))

	properties.Property("equal is same variable and same value", prop.ForAll(
		func(tv, fv, tval, fval string) bool {
			got := factmatch.NewTerm(tv, factmatch.Equal, tval).Matches(factmatch.NewFact(fv, fval))
			return got == (tv == fv && tval == fval)
		},
		str, str, str, str,
	))

	properties.Property("not equal is same variable and different value", prop.ForAll(
		func(tv, fv, tval, fval string) bool {
			got := factmatch.NewTerm(tv, factmatch.NotEqual, tval).Matches(factmatch.NewFact(fv, fval))
			return got == (tv == fv && tval != fval)
		},
		str, str, str, str,
	))

	properties.TestingRun(t)
}
