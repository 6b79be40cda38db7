package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlang/automaton"
	"github.com/katalvlaran/lvlang/grammar"
	"github.com/katalvlaran/lvlang/render"
)

func smallENFA(t *testing.T) *automaton.Automaton[string, string] {
	t.Helper()
	delta := automaton.NewTransitionFunction[string, string]()
	delta.AddValues("p", "a", "p")
	delta.AddValues("p", "b", "p")
	delta.AddEpsilon("p", "q")
	delta.AddValues("q", "b", "q")
	a, err := automaton.FromValues(automaton.EpsilonNFA, []string{"a", "b"}, []string{"p", "q"}, "p", delta, []string{"q"})
	require.NoError(t, err)

	return a
}

func TestDOT(t *testing.T) {
	want := `digraph Automaton {
  rankdir=LR;
  node [shape=circle, fontsize=10];
  edge [fontsize=9];
  "__start" [shape=point];
  "p" [shape=circle];
  "q" [shape=doublecircle];
  "__start" -> "p";
  "p" -> "p" [label="a,b"];
  "p" -> "q" [label="ε"];
  "q" -> "q" [label="b"];
}
`
	assert.Equal(t, want, render.DOT(smallENFA(t)))
}

func TestTransitionTable(t *testing.T) {
	var buf bytes.Buffer
	render.TransitionTable(&buf, smallENFA(t))
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[0], "STATE")
	assert.Contains(t, lines[0], "ε")
	assert.Contains(t, out, render.InitialMarker+"p")
	assert.Contains(t, out, render.FinalMarker+"q")
	assert.Contains(t, out, "{p}")
	assert.Contains(t, out, render.NoTarget)
}

func TestTransitionTable_NoEpsilonColumn(t *testing.T) {
	a, err := smallENFA(t).ToNFA()
	require.NoError(t, err)
	var buf bytes.Buffer
	render.TransitionTable(&buf, a)
	assert.NotContains(t, buf.String(), "ε")
}

func TestGrammar(t *testing.T) {
	start := "S"
	g, err := grammar.FromValues(grammar.ContextFree, []string{"A", "S"}, []string{"a", "b"}, &start,
		[]grammar.RuleValues[string]{
			{LHS: []string{"A"}, RHS: []string{"a"}},
			{LHS: []string{"S"}, RHS: []string{"a", "S", "b"}},
			{LHS: []string{"S"}, RHS: []string{"A"}},
			{LHS: []string{"S"}},
		})
	require.NoError(t, err)

	var buf bytes.Buffer
	render.Grammar(&buf, g)
	out := buf.String()

	assert.Contains(t, out, "a S b | A | ε")
	rowOf := func(lhs string) int {
		for i, line := range strings.Split(out, "\n") {
			if f := strings.Fields(line); len(f) > 0 && f[0] == lhs {
				return i
			}
		}
		return -1
	}
	require.NotEqual(t, -1, rowOf("A"))
	assert.Less(t, rowOf("S"), rowOf("A"), "start symbol first")
}
