package factmatch

import (
	"errors"
	"fmt"
	"strings"
)

// Operator is the comparison a Term applies to the value of a fact.
type Operator int

const (
	// Equal matches a fact with the same variable and the same value.
	Equal Operator = iota
	// NotEqual matches a fact with the same variable and a different value.
	NotEqual
)

var ErrUnknownOperator = errors.New("unknown operator")

func (o Operator) String() string {
	switch o {
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// ParseOperator returns the operator for s. Symbols (==, !=) and names
// (eq, equal, ne, not_equal) are accepted, ignoring case.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "==", "=", "eq", "equal", "equals":
		return Equal, nil
	case "!=", "<>", "ne", "neq", "not_equal", "not_equals":
		return NotEqual, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}
}

// A Term is an atomic predicate on a single variable.
//
// A term only ever matches facts about its own variable. NotEqual means
// "same variable, different value"; a fact about another variable does not
// match, whatever its value.
type Term struct {
	Variable string
	Operator Operator
	Value    string
}

// NewTerm returns the term "variable op value". Empty strings are valid
// variables and values.
func NewTerm(variable string, op Operator, value string) Term {
	return Term{
		Variable: variable,
		Operator: op,
		Value:    value,
	}
}

// Matches reports whether the fact satisfies the term.
func (t Term) Matches(f Fact) bool {
	if t.Variable != f.Variable {
		return false
	}
	switch t.Operator {
	case Equal:
		return t.Value == f.Value
	case NotEqual:
		return t.Value != f.Value
	default:
		return false
	}
}

func (t Term) String() string {
	return fmt.Sprintf("%s %s %s", t.Variable, t.Operator, t.Value)
}
