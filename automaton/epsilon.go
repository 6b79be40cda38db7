package automaton

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlang/core"
)

// ToNFA eliminates epsilon edges and returns an equivalent NFA over the same
// states and alphabet. The receiver is not modified.
//
// For every labeled edge (q, a) → R and every state s whose epsilon closure
// contains q, the result holds (s, a) → EpsilonClosureOf(R). A state is final
// iff its epsilon closure meets the original final states.
//
// Automata that are already epsilon-free are returned as an NFA copy.
func (a *Automaton[S, St]) ToNFA() (*Automaton[S, St], error) {
	if a.class != EpsilonNFA {
		out := a.Clone()
		out.class = NFA
		return out, nil
	}

	states := a.states.Sorted()
	closures := make(map[core.State[St]]core.Set[core.State[St]], len(states))
	for _, st := range states {
		closures[st] = a.delta.EpsilonClosure(st)
	}

	delta := NewTransitionFunction[S, St]()
	finals := core.NewSet[core.State[St]]()
	for _, s := range states {
		if closures[s].Intersects(a.finals) {
			finals.Add(s)
		}
	}
	for _, tr := range a.delta.Transitions() {
		if tr.Symbol.IsEpsilon() {
			continue
		}
		spread := a.delta.EpsilonClosureOf(core.NewSet(tr.To...))
		for _, s := range states {
			if closures[s].Has(tr.From) {
				delta.AddSet(s, tr.Symbol, spread)
			}
		}
	}

	out := &Automaton[S, St]{
		class:    NFA,
		alphabet: a.alphabet.Clone(),
		states:   a.states.Clone(),
		initial:  a.initial,
		delta:    delta,
		finals:   finals,
		logger:   a.logger,
	}
	if err := out.validate(); err != nil {
		return nil, err
	}
	a.logger.Debug("eliminated epsilon transitions",
		zap.Int("states", out.states.Len()),
		zap.Int("entries", delta.Len()),
		zap.Int("finals", finals.Len()))

	return out, nil
}
