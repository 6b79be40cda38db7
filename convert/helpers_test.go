package convert_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlang/automaton"
	"github.com/katalvlaran/lvlang/core"
	"github.com/katalvlaran/lvlang/grammar"
)

// derive returns every terminal word of length at most n the grammar derives,
// keyed by fmt.Sprint of the word's values. Sentential forms are expanded at
// their leftmost non-terminal and pruned once they hold more than n terminals.
func derive[V comparable](t *testing.T, g *grammar.Grammar[V], n int) map[string]bool {
	t.Helper()
	start, ok := g.Start()
	require.True(t, ok)

	words := make(map[string]bool)
	seen := make(map[string]bool)
	queue := [][]core.Symbol[V]{{start}}
	for len(queue) > 0 {
		form := queue[0]
		queue = queue[1:]

		at := -1
		terminals := 0
		for i, s := range form {
			if g.IsNonTerminal(s) {
				if at < 0 {
					at = i
				}
			} else {
				terminals++
			}
		}
		if terminals > n {
			continue
		}
		if at < 0 {
			words[key(form)] = true
			continue
		}
		for _, r := range g.Rules() {
			if r.LHS()[0] != form[at] {
				continue
			}
			next := append([]core.Symbol[V](nil), form[:at]...)
			if !r.IsEpsilonRule() {
				next = append(next, r.RHS()...)
			}
			next = append(next, form[at+1:]...)
			if k := fmt.Sprintf("%#v", next); !seen[k] {
				seen[k] = true
				queue = append(queue, next)
			}
		}
	}

	return words
}

func key[V comparable](word []core.Symbol[V]) string {
	values := make([]V, len(word))
	for i, s := range word {
		values[i], _ = s.Value()
	}

	return fmt.Sprint(values)
}

// allWords lists every word over alphabet of length at most n.
func allWords[V comparable](alphabet []core.Symbol[V], n int) [][]core.Symbol[V] {
	out := [][]core.Symbol[V]{{}}
	layer := out
	for i := 0; i < n; i++ {
		var next [][]core.Symbol[V]
		for _, w := range layer {
			for _, s := range alphabet {
				next = append(next, append(append([]core.Symbol[V](nil), w...), s))
			}
		}
		out = append(out, next...)
		layer = next
	}

	return out
}

// sameAsGrammar checks a accepts exactly the words g derives, up to length n.
func sameAsGrammar[V comparable, St comparable](t *testing.T, g *grammar.Grammar[V], a *automaton.Automaton[V, St], n int) {
	t.Helper()
	derived := derive(t, g, n)
	for _, w := range allWords(g.Terminals(), n) {
		got, err := a.Accepts(w)
		require.NoError(t, err)
		require.Equalf(t, derived[key(w)], got, "word %v", w)
	}
}
