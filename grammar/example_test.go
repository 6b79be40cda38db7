package grammar_test

import (
	"fmt"

	"github.com/katalvlaran/lvlang/grammar"
)

// ExampleGrammar_RemoveEpsilonRules rewrites aⁿbⁿ into an epsilon-free grammar
// with a fresh start symbol.
func ExampleGrammar_RemoveEpsilonRules() {
	start := "S"
	g, err := grammar.FromValues(grammar.ContextFree, []string{"S"}, []string{"a", "b"}, &start,
		[]grammar.RuleValues[string]{
			{LHS: []string{"S"}, RHS: []string{"a", "S", "b"}},
			{LHS: []string{"S"}, RHS: nil},
		})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = g.RemoveEpsilonRules(); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(g)
	// Output:
	// Class: context-free
	// Non-terminals: {S, S'}
	// Terminals: {a, b}
	// Start Symbol: S'
	// Rules:
	// S -> a S b
	// S -> a b
	// S' -> S
	// S' -> ε
}

// ExampleGrammar_TryAddRule grows a regular grammar speculatively.
func ExampleGrammar_TryAddRule() {
	start := "A"
	g, err := grammar.FromValues(grammar.Regular, []string{"A", "B"}, []string{"a", "b"}, &start, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, rhs := range [][]string{{"a", "B"}, {"B", "b"}, {"b"}, {"B"}} {
		r, _ := grammar.RuleOf([]string{"A"}, rhs)
		fmt.Println(r, g.TryAddRule(r))
	}
	fmt.Println(g.Regularity())
	// Output:
	// A -> a B true
	// A -> B b false
	// A -> b true
	// A -> B false
	// right-regular
}
