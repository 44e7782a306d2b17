package cel

import (
	"unicode/utf8"

	celgo "github.com/google/cel-go/cel"
	"github.com/pkg/errors"

	"github.com/ezachrisen/factmatch"
)

// ErrInvalidUTF8 is returned for terms and facts that are not valid UTF-8.
// CEL strings are sequences of code points, so such bytes cannot be compared
// the way Term.Matches compares them.
var ErrInvalidUTF8 = errors.New("string is not valid UTF-8")

// Program is a condition tree compiled to a CEL program.
type Program struct {
	expr string
	prg  celgo.Program
}

// Option configures Compile.
type Option func(o *options)

type options struct {
	env *celgo.Env
}

// WithEnv compiles with the environment env instead of the one returned by
// NewEnv. The environment must declare VariableKey and ValueKey as strings.
func WithEnv(env *celgo.Env) Option {
	return func(o *options) {
		o.env = env
	}
}

// NewEnv returns a CEL environment declaring the fact variables.
func NewEnv() (*celgo.Env, error) {
	env, err := celgo.NewEnv(
		celgo.Variable(VariableKey, celgo.StringType),
		celgo.Variable(ValueKey, celgo.StringType),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating CEL environment")
	}
	return env, nil
}

// Compile translates the condition to CEL, then parses, checks and plans it.
func Compile(c factmatch.Condition, opts ...Option) (*Program, error) {
	if c == nil {
		return nil, errors.Wrap(factmatch.ErrNilCondition, "compiling condition")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	env := o.env
	if env == nil {
		var err error
		env, err = NewEnv()
		if err != nil {
			return nil, err
		}
	}

	if err := checkUTF8(c); err != nil {
		return nil, err
	}

	expr := Expr(c)

	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return nil, errors.Wrapf(iss.Err(), "parsing %s", expr)
	}

	checked, iss := env.Check(ast)
	if iss != nil && iss.Err() != nil {
		return nil, errors.Wrapf(iss.Err(), "checking %s", expr)
	}

	if !checked.OutputType().IsExactType(celgo.BoolType) {
		return nil, errors.Errorf("expression %s has type %s, expected bool", expr, checked.OutputType())
	}

	prg, err := env.Program(checked)
	if err != nil {
		return nil, errors.Wrapf(err, "generating program for %s", expr)
	}

	return &Program{
		expr: expr,
		prg:  prg,
	}, nil
}

// Expr returns the CEL expression the program was compiled from.
func (p *Program) Expr() string {
	return p.expr
}

// Matches evaluates the program against the fact.
func (p *Program) Matches(f factmatch.Fact) (bool, error) {
	if !utf8.ValidString(f.Variable) || !utf8.ValidString(f.Value) {
		return false, errors.Wrapf(ErrInvalidUTF8, "fact %q", f.String())
	}
	out, _, err := p.prg.Eval(map[string]any{
		VariableKey: f.Variable,
		ValueKey:    f.Value,
	})
	if err != nil {
		return false, errors.Wrapf(err, "evaluating %s", p.expr)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, errors.Errorf("expression %s returned %T, expected bool", p.expr, out.Value())
	}
	return b, nil
}

func checkUTF8(c factmatch.Condition) error {
	return factmatch.Walk(c, func(n factmatch.Condition, _ int) error {
		t, ok := n.(*factmatch.TermCondition)
		if !ok {
			return nil
		}
		term := t.Term()
		if !utf8.ValidString(term.Variable) || !utf8.ValidString(term.Value) {
			return errors.Wrapf(ErrInvalidUTF8, "term %q", term.String())
		}
		return nil
	})
}
