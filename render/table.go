package render

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/lvlang/automaton"
	"github.com/katalvlaran/lvlang/core"
	"github.com/katalvlaran/lvlang/grammar"
)

// Markers prefixed to state names in a transition table.
const (
	InitialMarker = "→"
	FinalMarker   = "*"
	NoTarget      = "-"
)

// TransitionTable writes one row per state and one column per input symbol,
// plus an ε column when the automaton has epsilon edges. The initial state is
// marked with InitialMarker, final states with FinalMarker.
func TransitionTable[S, St comparable](w io.Writer, a *automaton.Automaton[S, St]) {
	delta := a.TransitionFunction()
	symbols := a.Alphabet()
	if delta.HasEpsilonTransitions() {
		symbols = append(symbols, core.Epsilon[S]())
	}

	header := []string{"STATE"}
	for _, sym := range symbols {
		header = append(header, sym.String())
	}

	var data [][]string
	for _, st := range a.States() {
		row := []string{stateLabel(a, st)}
		for _, sym := range symbols {
			targets := delta.Targets(st, sym)
			if targets.Len() == 0 {
				row = append(row, NoTarget)
				continue
			}
			row = append(row, targets.String())
		}
		data = append(data, row)
	}

	table := newTable(w, header)
	table.AppendBulk(data)
	table.Render()
}

func stateLabel[S, St comparable](a *automaton.Automaton[S, St], st core.State[St]) string {
	label := st.String()
	if a.IsFinal(st) {
		label = FinalMarker + label
	}
	if st == a.Initial() {
		label = InitialMarker + label
	}

	return label
}

// Grammar writes the rules of g, one row per left-hand side with its
// alternatives joined by " | ", in first-seen order. The start symbol's row
// comes first.
func Grammar[V comparable](w io.Writer, g *grammar.Grammar[V]) {
	var (
		order []string
		alts  = make(map[string][]string)
	)
	start, hasStart := g.Start()
	if hasStart {
		order = append(order, start.String())
	}
	for _, r := range g.Rules() {
		lhs := core.Join(r.LHS(), " ")
		if _, seen := alts[lhs]; !seen && !(hasStart && lhs == start.String()) {
			order = append(order, lhs)
		}
		alts[lhs] = append(alts[lhs], core.Join(r.RHS(), " "))
	}

	var data [][]string
	for _, lhs := range order {
		rhs := alts[lhs]
		if len(rhs) == 0 {
			continue
		}
		line := rhs[0]
		for _, alt := range rhs[1:] {
			line += " | " + alt
		}
		data = append(data, []string{lhs, "->", line})
	}

	table := newTable(w, []string{"LHS", "", "RHS"})
	table.AppendBulk(data)
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)

	return table
}
