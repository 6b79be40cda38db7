package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlang/grammar"
)

// rule builds lhs → rhs from space-free single-character symbols; an empty
// rhs means epsilon.
func rule(t *testing.T, lhs, rhs string) grammar.Rule[string] {
	t.Helper()
	r, err := grammar.RuleOf(split(lhs), split(rhs))
	require.NoError(t, err)

	return r
}

func split(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}

// rv is the raw-value counterpart of rule.
func rv(lhs, rhs string) grammar.RuleValues[string] {
	return grammar.RuleValues[string]{LHS: split(lhs), RHS: split(rhs)}
}

func ruleStrings[V comparable](g *grammar.Grammar[V]) []string {
	var out []string
	for _, r := range g.Rules() {
		out = append(out, r.String())
	}

	return out
}

func ptr[V any](v V) *V { return &v }
