package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

const demoOutput = `Condition:
OR
  TERM x == 5
  TERM y == 2

Rule Name: Test Rule
Rule Condition:
OR
  TERM x == 5
  TERM y == 2

x=5 : true
y=2 : true
x=3 : false
z=5 : false
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeRule(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rule.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleRule = `name: Test Rule
condition:
  or:
    - term: x == 5
    - term: y == 2
`

func TestDemo(t *testing.T) {
	is := is.New(t)
	out, _, err := run(t, "demo")
	is.NoErr(err)
	is.Equal(out, demoOutput)
}

func TestDemoCEL(t *testing.T) {
	is := is.New(t)
	t.Setenv("FACTMATCH_ENGINE", "cel")
	out, _, err := run(t, "demo")
	is.NoErr(err)
	is.Equal(out, demoOutput)
}

func TestDemoTable(t *testing.T) {
	is := is.New(t)
	out, _, err := run(t, "demo", "--output", "table")
	is.NoErr(err)
	is.True(strings.Contains(out, "RULE: Test Rule"))
	is.True(strings.Contains(out, "x=5"))
	is.True(strings.Contains(out, "true"))
}

func TestMatch(t *testing.T) {
	is := is.New(t)
	path := writeRule(t, sampleRule)

	for _, engine := range []string{"native", "cel"} {
		out, _, err := run(t, "match", "-r", path, "--engine", engine, "x=5", "y=2", "x=3", "z=5")
		is.NoErr(err)
		is.Equal(out, "x=5 : true\ny=2 : true\nx=3 : false\nz=5 : false\n")
	}
}

func TestMatchExplain(t *testing.T) {
	is := is.New(t)
	path := writeRule(t, sampleRule)

	out, _, err := run(t, "match", "-r", path, "--explain", "y=2")
	is.NoErr(err)
	is.True(strings.HasPrefix(out, "y=2 : true\n"))
	is.True(strings.Contains(out, "FACT EVALUATION DIAGNOSTIC REPORT"))
	is.True(strings.Contains(out, "SKIP"))
}

func TestMatchErrors(t *testing.T) {
	is := is.New(t)
	path := writeRule(t, sampleRule)

	_, _, err := run(t, "match", "-r", path, "x5")
	is.True(err != nil) // no '='

	_, _, err = run(t, "match", "x=5")
	is.True(err != nil) // missing --rule

	_, _, err = run(t, "match", "-r", filepath.Join(t.TempDir(), "missing.yaml"), "x=5")
	is.True(err != nil)

	_, _, err = run(t, "match", "-r", path, "--engine", "rete", "x=5")
	is.True(err != nil)
}

func TestMatchLogsJSON(t *testing.T) {
	is := is.New(t)
	path := writeRule(t, sampleRule)

	_, stderr, err := run(t, "match", "-r", path, "--log-level", "debug", "--log-format", "json", "x=5")
	is.NoErr(err)
	is.True(strings.Contains(stderr, `"message":"rule loaded"`))
	is.True(strings.Contains(stderr, `"rule":"Test Rule"`))
}

func TestShow(t *testing.T) {
	is := is.New(t)
	path := writeRule(t, sampleRule)

	out, _, err := run(t, "show", "-r", path)
	is.NoErr(err)
	is.Equal(out, "Rule Name: Test Rule\nRule Condition:\nOR\n  TERM x == 5\n  TERM y == 2\n\nOR\n├── x == 5\n└── y == 2\n")

	out, _, err = run(t, "show", "-r", path, "--cel")
	is.NoErr(err)
	is.Equal(out, `((variable == "x" && value == "5") || (variable == "y" && value == "2"))`+"\n")

	out, _, err = run(t, "show", "-r", path, "--yaml")
	is.NoErr(err)
	is.True(strings.HasPrefix(out, "name: Test Rule\n"))
}
