// Package cel translates factmatch condition trees to CEL expressions and
// evaluates them with Google's cel-go.
//
// See https://github.com/google/cel-go and https://opensource.google/projects/cel for more information
// about CEL.
//
// # Expressions
//
// A fact is presented to CEL as two string variables, variable and value.
// The term x == 5 becomes
//
//	(variable == "x" && value == "5")
//
// and x != 5 becomes
//
//	(variable == "x" && value != "5")
//
// so that, as in factmatch, a term never matches a fact about a different
// variable. AND and OR nodes are joined with && and ||. An empty AND is the
// literal true and an empty OR the literal false.
//
// A compiled Program gives the same answer as Condition.Matches for every
// fact. The expression can also be used on its own, for example as the
// expression of a rule in another CEL-based rules engine.
package cel
