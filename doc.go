// Package factmatch tests whether a single fact satisfies a rule.
//
// A fact is a variable/value pair, such as x=5. A rule is a name and a tree
// of conditions. The leaves of the tree are terms that compare a variable
// and a value with == or !=; the inner nodes combine their children with AND
// or OR.
//
// Typical use is as follows:
//
//  1. Create terms
//  2. Wrap them in term conditions and combine those under AND and OR conditions
//  3. Create a rule with the root condition
//  4. Match facts against the rule
//  5. Optionally, Evaluate to see which conditions were visited
//
// # Term Semantics
//
// A term only ever looks at facts about its own variable. The term x != 3
// matches x=5 but does not match y=7: "not equal" means same variable,
// different value.
//
// # Empty Conditions
//
// An AND with no children matches every fact and an OR with no children
// matches none. Both are allowed while a tree is being built; a finished rule
// would not normally contain them.
//
// # Condition Ownership and Modification
//
// The calling application is responsible for the lifecycle of condition
// trees. Specifically:
//  1. A condition must not be a child of more than one parent.
//  2. You must not add children to a tree while it is being matched.
//  3. Once built, a tree can be matched from many goroutines at the same time.
//
// Adding a condition to itself, or to one of its own descendants, is
// rejected with ErrCycle.
package factmatch
