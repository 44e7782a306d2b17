// Package ruledef reads and writes rule definitions: a YAML (or JSON)
// description of a named condition tree.
//
//	name: Test Rule
//	condition:
//	  or:
//	    - term: {variable: x, op: "==", value: "5"}
//	    - term: "y == 2"
//
// Every node has exactly one of term, and, or. A term is either a mapping
// with variable, op and value, or the short form "variable op value" when
// neither the variable nor the value contains spaces. An empty list (and: [])
// is an empty AND or OR.
package ruledef

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ezachrisen/factmatch"
)

var (
	ErrInvalidNode = errors.New("exactly one of term, and, or must be set")
	ErrInvalidTerm = errors.New("term must have the form \"variable op value\"")
	ErrEmpty       = errors.New("empty rule definition")
)

// Definition describes a rule.
type Definition struct {
	Name      string `yaml:"name" json:"name"`
	Condition Node   `yaml:"condition" json:"condition"`
}

// Node describes one condition. Exactly one field is set.
type Node struct {
	Term *TermNode `yaml:"term,omitempty" json:"term,omitempty"`
	And  []Node    `yaml:"and,omitempty" json:"and,omitempty"`
	Or   []Node    `yaml:"or,omitempty" json:"or,omitempty"`
}

// TermNode describes a term. Op is any operator accepted by
// factmatch.ParseOperator.
type TermNode struct {
	Variable string `yaml:"variable" json:"variable"`
	Op       string `yaml:"op" json:"op"`
	Value    string `yaml:"value" json:"value"`
}

// UnmarshalYAML accepts the mapping form and the "variable op value" form.
func (t *TermNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		fields := strings.Fields(value.Value)
		if len(fields) != 3 {
			return errors.Wrapf(ErrInvalidTerm, "line %d: %q", value.Line, value.Value)
		}
		t.Variable, t.Op, t.Value = fields[0], fields[1], fields[2]
		return nil
	}
	type plain TermNode
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*t = TermNode(p)
	return nil
}

// MarshalYAML writes only the field that is set, so that an empty AND or OR
// is written as an empty list rather than dropped.
func (n Node) MarshalYAML() (interface{}, error) {
	switch {
	case n.Term != nil:
		return map[string]interface{}{"term": n.Term}, nil
	case n.And != nil:
		return map[string]interface{}{"and": n.And}, nil
	case n.Or != nil:
		return map[string]interface{}{"or": n.Or}, nil
	default:
		return nil, ErrInvalidNode
	}
}

// Parse decodes a definition and builds the rule it describes.
func Parse(data []byte) (*factmatch.Rule, error) {
	d, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return d.Rule()
}

// Load reads the definition in the file at path and builds the rule.
func Load(path string) (*factmatch.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading rule definition")
	}
	r, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return r, nil
}

// Decode reads one definition from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Definition
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, errors.Wrap(err, "decoding rule definition")
	}
	return &d, nil
}

// Rule builds the rule described by the definition.
func (d Definition) Rule() (*factmatch.Rule, error) {
	c, err := d.Condition.condition("condition")
	if err != nil {
		return nil, errors.Wrapf(err, "rule %q", d.Name)
	}
	return factmatch.NewRule(d.Name, c), nil
}

func (n Node) condition(path string) (factmatch.Condition, error) {
	set := 0
	if n.Term != nil {
		set++
	}
	if n.And != nil {
		set++
	}
	if n.Or != nil {
		set++
	}
	if set != 1 {
		return nil, errors.Wrap(ErrInvalidNode, path)
	}

	switch {
	case n.Term != nil:
		op, err := factmatch.ParseOperator(n.Term.Op)
		if err != nil {
			return nil, errors.Wrap(err, path+".term")
		}
		return factmatch.NewTermCondition(factmatch.NewTerm(n.Term.Variable, op, n.Term.Value)), nil
	case n.And != nil:
		a := factmatch.NewAnd()
		if err := addChildren(a, n.And, path+".and"); err != nil {
			return nil, err
		}
		return a, nil
	default:
		o := factmatch.NewOr()
		if err := addChildren(o, n.Or, path+".or"); err != nil {
			return nil, err
		}
		return o, nil
	}
}

func addChildren(parent factmatch.Condition, nodes []Node, path string) error {
	for i, cn := range nodes {
		c, err := cn.condition(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return err
		}
		if err := factmatch.AddChild(parent, c); err != nil {
			return errors.Wrapf(err, "%s[%d]", path, i)
		}
	}
	return nil
}

// FromRule returns the definition of the rule.
func FromRule(r *factmatch.Rule) Definition {
	return Definition{
		Name:      r.Name,
		Condition: fromCondition(r.Condition),
	}
}

func fromCondition(c factmatch.Condition) Node {
	switch n := c.(type) {
	case *factmatch.TermCondition:
		t := n.Term()
		return Node{Term: &TermNode{Variable: t.Variable, Op: t.Operator.String(), Value: t.Value}}
	case *factmatch.And:
		return Node{And: fromChildren(n.Children())}
	case *factmatch.Or:
		return Node{Or: fromChildren(n.Children())}
	default:
		return Node{}
	}
}

func fromChildren(cs []factmatch.Condition) []Node {
	nodes := make([]Node, 0, len(cs))
	for _, c := range cs {
		nodes = append(nodes, fromCondition(c))
	}
	return nodes
}

// Marshal encodes the rule's definition as YAML.
func Marshal(r *factmatch.Rule) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(FromRule(r)); err != nil {
		return nil, errors.Wrapf(err, "encoding rule %q", r.Name)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrapf(err, "encoding rule %q", r.Name)
	}
	return buf.Bytes(), nil
}
