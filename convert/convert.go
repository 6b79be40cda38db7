package convert

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlang/automaton"
	"github.com/katalvlaran/lvlang/core"
	"github.com/katalvlaran/lvlang/grammar"
)

var (
	// ErrNotRegular indicates a grammar of another class.
	ErrNotRegular = errors.New("convert: grammar is not regular")

	// ErrNoStartSymbol indicates a grammar without a start symbol.
	ErrNoStartSymbol = errors.New("convert: grammar has no start symbol")

	// ErrStateNameCollision indicates two non-terminals that render to the same state name.
	ErrStateNameCollision = errors.New("convert: non-terminals share a state name")
)

// SentinelState is the preferred name of the added accepting (or, for
// left-regular grammars, initial) state.
const SentinelState = "final"

// FromRegularGrammar builds an NFA accepting exactly the language of g.
// opts are passed to the automaton constructor.
//
// Errors: ErrNotRegular, ErrNoStartSymbol, ErrStateNameCollision, or a
// structural error from automaton.New.
//
// Complexity: O(N + R) for N non-terminals and R rules.
func FromRegularGrammar[V comparable](g *grammar.Grammar[V], opts ...automaton.Option) (*automaton.Automaton[V, string], error) {
	if g.Class() != grammar.Regular {
		return nil, fmt.Errorf("%w: got %s", ErrNotRegular, g.Class())
	}
	start, ok := g.Start()
	if !ok {
		return nil, ErrNoStartSymbol
	}

	names := make(map[core.Symbol[V]]core.State[string])
	taken := make(map[string]core.Symbol[V])
	states := make([]core.State[string], 0, len(g.NonTerminals())+1)
	for _, nt := range g.NonTerminals() {
		name := nt.String()
		if other, dup := taken[name]; dup {
			return nil, fmt.Errorf("%w: %#v and %#v are both %q", ErrStateNameCollision, other, nt, name)
		}
		taken[name] = nt
		names[nt] = core.NewState(name)
		states = append(states, names[nt])
	}
	sentinel := core.NewState(SentinelState)
	for i := 0; ; i++ {
		if _, used := taken[sentinel.Value()]; !used {
			break
		}
		sentinel = core.NewState(SentinelState + strconv.Itoa(i))
	}
	states = append(states, sentinel)

	var (
		delta   = automaton.NewTransitionFunction[V, string]()
		finals  []core.State[string]
		initial core.State[string]
	)
	if g.Regularity() == grammar.LeftRegular {
		initial, finals = sentinel, leftRegular(g, delta, names, sentinel)
	} else {
		initial, finals = names[start], rightRegular(g, delta, names, sentinel)
	}

	o := automaton.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	nfa, err := automaton.New(automaton.NFA, g.Terminals(), states, initial, delta, finals, automaton.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("converted regular grammar",
		zap.Stringer("regularity", g.Regularity()),
		zap.Int("states", nfa.NumStates()),
		zap.Int("entries", delta.Len()))

	return nfa, nil
}

// rightRegular fills delta for A → aB, A → a and A → ε; returns the final states.
func rightRegular[V comparable](
	g *grammar.Grammar[V],
	delta *automaton.TransitionFunction[V, string],
	names map[core.Symbol[V]]core.State[string],
	sentinel core.State[string],
) []core.State[string] {
	finals := []core.State[string]{sentinel}
	for _, r := range g.Rules() {
		from, rhs := names[r.LHS()[0]], r.RHS()
		switch {
		case r.IsEpsilonRule():
			finals = append(finals, from)
		case len(rhs) == 1:
			delta.Add(from, rhs[0], sentinel)
		default:
			delta.Add(from, rhs[0], names[rhs[1]])
		}
	}

	return finals
}

// leftRegular fills delta for A → Ba, A → a and A → ε, reading the word from
// the sentinel towards the start symbol; returns the final states.
func leftRegular[V comparable](
	g *grammar.Grammar[V],
	delta *automaton.TransitionFunction[V, string],
	names map[core.Symbol[V]]core.State[string],
	sentinel core.State[string],
) []core.State[string] {
	start, _ := g.Start()
	nullable := core.NewSet[core.Symbol[V]]()
	for _, r := range g.Rules() {
		if r.IsEpsilonRule() {
			nullable.Add(r.LHS()[0])
		}
	}

	finals := []core.State[string]{names[start]}
	if nullable.Has(start) {
		finals = append(finals, sentinel)
	}
	for _, r := range g.Rules() {
		to, rhs := names[r.LHS()[0]], r.RHS()
		switch {
		case r.IsEpsilonRule():
		case len(rhs) == 1:
			delta.Add(sentinel, rhs[0], to)
		default:
			delta.Add(names[rhs[0]], rhs[1], to)
			if nullable.Has(rhs[0]) {
				delta.Add(sentinel, rhs[1], to)
			}
		}
	}

	return finals
}
