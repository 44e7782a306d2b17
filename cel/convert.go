package cel

// This file converts factmatch conditions to CEL expression text.

import (
	"strconv"
	"strings"

	"github.com/ezachrisen/factmatch"
)

const (
	// VariableKey is the name of the CEL variable holding Fact.Variable.
	VariableKey = "variable"
	// ValueKey is the name of the CEL variable holding Fact.Value.
	ValueKey = "value"
)

// Expr returns the CEL expression equivalent to the condition.
// A nil condition is the literal false.
func Expr(c factmatch.Condition) string {
	switch n := c.(type) {
	case *factmatch.TermCondition:
		if n == nil {
			return "false"
		}
		return termExpr(n.Term())
	case *factmatch.And:
		if n == nil {
			return "false"
		}
		return join(n.Children(), " && ", "true")
	case *factmatch.Or:
		if n == nil {
			return "false"
		}
		return join(n.Children(), " || ", "false")
	default:
		return "false"
	}
}

func termExpr(t factmatch.Term) string {
	var op string
	switch t.Operator {
	case factmatch.Equal:
		op = "=="
	case factmatch.NotEqual:
		op = "!="
	default:
		return "false"
	}
	return "(" + VariableKey + " == " + quote(t.Variable) + " && " + ValueKey + " " + op + " " + quote(t.Value) + ")"
}

func join(children []factmatch.Condition, sep string, empty string) string {
	switch len(children) {
	case 0:
		return empty
	case 1:
		return Expr(children[0])
	}
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = Expr(c)
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// quote produces a CEL string literal. Go's escape sequences for printable
// and non-printable runes are a subset of CEL's.
func quote(s string) string {
	return strconv.Quote(s)
}
