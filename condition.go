package factmatch

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// ConditionType identifies the kind of node in a condition tree.
type ConditionType int

const (
	AndType ConditionType = iota
	OrType
	TermType
)

func (t ConditionType) String() string {
	switch t {
	case AndType:
		return "AND"
	case OrType:
		return "OR"
	case TermType:
		return "TERM"
	default:
		return fmt.Sprintf("ConditionType(%d)", int(t))
	}
}

var (
	ErrNilCondition         = errors.New("nil condition")
	ErrCycle                = errors.New("condition would contain itself")
	ErrNotCombinator        = errors.New("children can only be added to AND and OR conditions")
	ErrTermRequired         = errors.New("TERM condition requires a term")
	ErrUnexpectedTerm       = errors.New("AND and OR conditions do not take a term")
	ErrUnknownConditionType = errors.New("unknown condition type")
)

// A Condition is a node in a condition tree. It is one of
//
//	*TermCondition  a leaf wrapping a single Term
//	*And            true if every child matches
//	*Or             true if any child matches
//
// No other implementations exist; the interface is sealed.
type Condition interface {
	// Type returns the kind of node.
	Type() ConditionType

	// Matches reports whether the fact satisfies the condition.
	Matches(f Fact) bool

	// Children returns a copy of the node's children, in insertion order.
	// Term conditions have no children.
	Children() []Condition

	String() string

	condition()
}

// TermCondition is the leaf of a condition tree.
type TermCondition struct {
	term Term
}

// NewTermCondition wraps the term in a condition.
func NewTermCondition(t Term) *TermCondition {
	return &TermCondition{term: t}
}

// Term returns the wrapped term.
func (c *TermCondition) Term() Term            { return c.term }
func (c *TermCondition) Type() ConditionType   { return TermType }
func (c *TermCondition) Matches(f Fact) bool   { return c.term.Matches(f) }
func (c *TermCondition) Children() []Condition { return nil }
func (c *TermCondition) String() string        { return format(c) }
func (c *TermCondition) condition()            {}

// combinator holds the ordered children of an AND or OR node.
type combinator struct {
	children []Condition
}

// Children returns a copy of the child list.
func (g *combinator) Children() []Condition {
	return slices.Clone(g.children)
}

// Len is the number of direct children.
func (g *combinator) Len() int {
	return len(g.children)
}

func (g *combinator) add(parent, child Condition) error {
	if isNil(child) {
		return ErrNilCondition
	}
	if contains(child, parent) {
		return fmt.Errorf("adding %s to %s: %w", child.Type(), parent.Type(), ErrCycle)
	}
	g.children = append(g.children, child)
	return nil
}

// And matches when every child matches. Children are evaluated in insertion
// order and evaluation stops at the first child that does not match.
// An And with no children matches every fact.
type And struct {
	combinator
}

// NewAnd returns an And node with the children, in order.
// It panics if a child is nil; use Add to get an error instead.
func NewAnd(children ...Condition) *And {
	a := &And{}
	mustAdd(a, children)
	return a
}

// Add appends c to the end of the child list. It returns ErrCycle if the
// receiver is c or one of c's descendants; the check walks c's subtree, so
// adding a large subtree costs time proportional to its size.
// The child must not already belong to another parent. Sharing a subtree
// between two parents is not detected.
func (a *And) Add(c Condition) error {
	return a.add(a, c)
}

func (a *And) Type() ConditionType { return AndType }
func (a *And) String() string      { return format(a) }
func (a *And) condition()          {}

func (a *And) Matches(f Fact) bool {
	for _, c := range a.children {
		if !c.Matches(f) {
			return false
		}
	}
	return true
}

// Or matches when at least one child matches. Children are evaluated in
// insertion order and evaluation stops at the first child that matches.
// An Or with no children matches no fact.
type Or struct {
	combinator
}

// NewOr returns an Or node with the children, in order.
// It panics if a child is nil; use Add to get an error instead.
func NewOr(children ...Condition) *Or {
	o := &Or{}
	mustAdd(o, children)
	return o
}

// Add appends c to the end of the child list. It returns ErrCycle if the
// receiver is c or one of c's descendants; the check walks c's subtree, so
// adding a large subtree costs time proportional to its size.
// The child must not already belong to another parent. Sharing a subtree
// between two parents is not detected.
func (o *Or) Add(c Condition) error {
	return o.add(o, c)
}

func (o *Or) Type() ConditionType { return OrType }
func (o *Or) String() string      { return format(o) }
func (o *Or) condition()          {}

func (o *Or) Matches(f Fact) bool {
	for _, c := range o.children {
		if c.Matches(f) {
			return true
		}
	}
	return false
}

// NewCondition builds a condition of type typ. A TermType condition requires
// a term; AndType and OrType conditions must not have one and start with no
// children.
func NewCondition(typ ConditionType, term *Term) (Condition, error) {
	switch typ {
	case TermType:
		if term == nil {
			return nil, ErrTermRequired
		}
		return NewTermCondition(*term), nil
	case AndType, OrType:
		if term != nil {
			return nil, fmt.Errorf("%s condition with term %s: %w", typ, term, ErrUnexpectedTerm)
		}
		if typ == AndType {
			return NewAnd(), nil
		}
		return NewOr(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownConditionType, int(typ))
	}
}

// AddChild appends child to parent, which must be an And or an Or.
func AddChild(parent, child Condition) error {
	switch p := parent.(type) {
	case *And:
		if p == nil {
			return ErrNilCondition
		}
		return p.Add(child)
	case *Or:
		if p == nil {
			return ErrNilCondition
		}
		return p.Add(child)
	case nil:
		return ErrNilCondition
	default:
		return fmt.Errorf("%w: parent is %s", ErrNotCombinator, parent.Type())
	}
}

func mustAdd(parent interface{ Add(Condition) error }, children []Condition) {
	for i, c := range children {
		if err := parent.Add(c); err != nil {
			panic(fmt.Sprintf("factmatch: child %d: %v", i, err))
		}
	}
}

// isNil catches both a nil interface and a typed nil pointer.
func isNil(c Condition) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// contains reports whether target is root or one of its descendants.
func contains(root, target Condition) bool {
	found := false
	_ = Walk(root, func(c Condition, _ int) error {
		if c == target {
			found = true
			return errStopWalk
		}
		return nil
	})
	return found
}

// format renders the condition as an indented outline, one node per line.
func format(c Condition) string {
	var sb strings.Builder
	_ = Walk(c, func(n Condition, depth int) error {
		if depth > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(n.Type().String())
		if t, ok := n.(*TermCondition); ok {
			sb.WriteString(" ")
			sb.WriteString(t.term.String())
		}
		return nil
	})
	return sb.String()
}
