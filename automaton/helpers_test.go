package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlang/automaton"
)

// edge is one labeled transition of a fixture.
type edge struct {
	from string
	sym  rune
	to   string
}

// build assembles an automaton over runes; sym 0 denotes an epsilon edge.
func build(t *testing.T, class automaton.Class, alphabet []rune, states []string, initial string, edges []edge, finals []string) *automaton.Automaton[rune, string] {
	t.Helper()
	a, err := buildErr(class, alphabet, states, initial, edges, finals)
	require.NoError(t, err)

	return a
}

func buildErr(class automaton.Class, alphabet []rune, states []string, initial string, edges []edge, finals []string) (*automaton.Automaton[rune, string], error) {
	delta := automaton.NewTransitionFunction[rune, string]()
	for _, e := range edges {
		if e.sym == 0 {
			delta.AddEpsilon(e.from, e.to)
			continue
		}
		delta.AddValues(e.from, e.sym, e.to)
	}

	return automaton.FromValues(class, alphabet, states, initial, delta, finals)
}

// startsWith1EndsWith0 is the four-state DFA for 1(0|1)*0.
func startsWith1EndsWith0(t *testing.T) *automaton.Automaton[rune, string] {
	return build(t, automaton.DFA, []rune("01"), []string{"q1", "q2", "q3", "trash"}, "q1", []edge{
		{"q1", '1', "q2"}, {"q1", '0', "trash"},
		{"trash", '0', "trash"}, {"trash", '1', "trash"},
		{"q2", '0', "q3"}, {"q2", '1', "q2"},
		{"q3", '0', "q3"}, {"q3", '1', "q2"},
	}, []string{"q3"})
}

// epsilonNFA1: q0 -0-> {q0,q2}, q0 -ε-> q2, q2 -1-> {q2,q1}; final q1.
func epsilonNFA1(t *testing.T) *automaton.Automaton[rune, string] {
	return build(t, automaton.EpsilonNFA, []rune("01"), []string{"q0", "q1", "q2"}, "q0", []edge{
		{"q0", '0', "q0"}, {"q0", '0', "q2"}, {"q0", 0, "q2"},
		{"q2", '1', "q2"}, {"q2", '1', "q1"},
	}, []string{"q1"})
}

// epsilonNFA2: q0 -0-> q0, q0 -1-> q2, q0 -ε-> q1, q2 -1-> {q2,q1}; final q1.
func epsilonNFA2(t *testing.T) *automaton.Automaton[rune, string] {
	return build(t, automaton.EpsilonNFA, []rune("01"), []string{"q0", "q1", "q2"}, "q0", []edge{
		{"q0", '0', "q0"}, {"q0", '1', "q2"}, {"q0", 0, "q1"},
		{"q2", '1', "q2"}, {"q2", '1', "q1"},
	}, []string{"q1"})
}

// words returns every string over alphabet of length at most n.
func words(alphabet []rune, n int) []string {
	out := []string{""}
	layer := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range layer {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		layer = next
	}

	return out
}

// sameLanguage checks both automata agree on every word up to length n.
func sameLanguage[A, B comparable](t *testing.T, x *automaton.Automaton[rune, A], y *automaton.Automaton[rune, B], alphabet []rune, n int) {
	t.Helper()
	for _, w := range words(alphabet, n) {
		want, err := automaton.AcceptsString(x, w)
		require.NoError(t, err)
		got, err := automaton.AcceptsString(y, w)
		require.NoError(t, err)
		require.Equalf(t, want, got, "word %q", w)
	}
}
