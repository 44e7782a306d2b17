package factmatch

import (
	"errors"
	"strings"
)

// errStopWalk ends a walk early without reporting an error.
var errStopWalk = errors.New("stop walk")

// Walk calls fn for c and each of its descendants, depth first, children in
// insertion order. The root is at depth 0. If fn returns an error, the walk
// stops and that error is returned.
func Walk(c Condition, fn func(c Condition, depth int) error) error {
	err := walk(c, 0, fn)
	if errors.Is(err, errStopWalk) {
		return nil
	}
	return err
}

func walk(c Condition, depth int, fn func(Condition, int) error) error {
	if isNil(c) {
		return nil
	}
	if err := fn(c, depth); err != nil {
		return err
	}
	for _, child := range children(c) {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// children returns the child list of c without copying it.
func children(c Condition) []Condition {
	switch n := c.(type) {
	case *And:
		return n.children
	case *Or:
		return n.children
	default:
		return nil
	}
}

// Count returns the number of nodes in the tree rooted at c.
func Count(c Condition) int {
	n := 0
	_ = Walk(c, func(Condition, int) error {
		n++
		return nil
	})
	return n
}

// Depth returns the number of levels in the tree rooted at c. A single
// term condition, or an empty AND/OR, has depth 1.
func Depth(c Condition) int {
	deepest := 0
	_ = Walk(c, func(_ Condition, d int) error {
		if d+1 > deepest {
			deepest = d + 1
		}
		return nil
	})
	return deepest
}

// Tree returns a box-drawing picture of the condition tree.
//
//	OR
//	├── x == 5
//	└── AND
//	    ├── y == 2
//	    └── z != 1
//
// Levels below maxTreeDepth are not drawn; a "└── …" line marks where
// children were left out.
func Tree(c Condition) string {
	if isNil(c) {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(label(c))
	sb.WriteString("\n")
	buildTree(&sb, c, "", 0)
	return sb.String()
}

const maxTreeDepth = 20

func buildTree(sb *strings.Builder, c Condition, prefix string, depth int) {
	kids := children(c)
	if depth >= maxTreeDepth {
		if len(kids) > 0 {
			sb.WriteString(prefix)
			sb.WriteString("└── …\n")
		}
		return
	}
	for i, child := range kids {
		var connector, childPrefix string
		if i == len(kids)-1 {
			connector = "└── "
			childPrefix = "    "
		} else {
			connector = "├── "
			childPrefix = "│   "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(label(child))
		sb.WriteString("\n")
		buildTree(sb, child, prefix+childPrefix, depth+1)
	}
}

// label is the one-line name of a node: the term for leaves, the type
// otherwise.
func label(c Condition) string {
	if t, ok := c.(*TermCondition); ok {
		return t.term.String()
	}
	return c.Type().String()
}
