package factmatch

import (
	"errors"
	"fmt"
	"strings"
)

// A Fact is a single observation: a variable and the value it was seen with.
// Facts are plain values; two facts with the same variable and value are
// the same fact.
type Fact struct {
	Variable string `json:"variable" yaml:"variable"`
	Value    string `json:"value" yaml:"value"`
}

// NewFact returns the fact variable=value.
func NewFact(variable, value string) Fact {
	return Fact{
		Variable: variable,
		Value:    value,
	}
}

func (f Fact) String() string {
	return f.Variable + "=" + f.Value
}

var ErrInvalidFact = errors.New("fact must have the form variable=value")

// ParseFact parses the form produced by Fact.String. The variable ends at
// the first '='; the value may contain further '=' characters.
func ParseFact(s string) (Fact, error) {
	variable, value, ok := strings.Cut(s, "=")
	if !ok {
		return Fact{}, fmt.Errorf("%w: %q", ErrInvalidFact, s)
	}
	return NewFact(variable, value), nil
}
