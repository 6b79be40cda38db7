package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlang/automaton"
	"github.com/katalvlaran/lvlang/core"
)

// DOT returns Graphviz source for a: final states are double circles, an
// invisible point marks the entry, and parallel edges between the same pair
// of states share one arrow labeled with every symbol.
func DOT[S, St comparable](a *automaton.Automaton[S, St]) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph Automaton {
  rankdir=LR;
  node [shape=circle, fontsize=10];
  edge [fontsize=9];
  "__start" [shape=point];
`)
	for _, st := range a.States() {
		shape := "circle"
		if a.IsFinal(st) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&buf, "  %q [shape=%s];\n", st.String(), shape)
	}
	fmt.Fprintf(&buf, "  \"__start\" -> %q;\n", a.Initial().String())

	var (
		arcs   []arc[St]
		labels = make(map[arc[St]][]string)
	)
	for _, tr := range a.Transitions() {
		for _, to := range tr.To {
			k := arc[St]{tr.From, to}
			if _, ok := labels[k]; !ok {
				arcs = append(arcs, k)
			}
			labels[k] = append(labels[k], tr.Symbol.String())
		}
	}
	for _, k := range arcs {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n",
			k.from.String(), k.to.String(), strings.Join(labels[k], ","))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// arc is an ordered pair of states.
type arc[St comparable] struct{ from, to core.State[St] }
