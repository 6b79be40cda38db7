package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlang/core"
)

// Key is the domain element of a transition function: a (state, symbol) pair.
type Key[S, St comparable] struct {
	From   core.State[St]
	Symbol core.Symbol[S]
}

// Transition is one listed entry of a transition function.
// To is sorted with core.Compare.
type Transition[S, St comparable] struct {
	From   core.State[St]
	Symbol core.Symbol[S]
	To     []core.State[St]
}

// TransitionFunction maps (state, symbol) pairs to sets of states.
//
// Stored target sets are never empty: absence and the empty set mean the same
// thing, so removing the last target deletes the entry. The type has no
// invariants of its own; an Automaton validates the states and symbols it
// references.
type TransitionFunction[S, St comparable] struct {
	m map[Key[S, St]]core.Set[core.State[St]]
}

// NewTransitionFunction returns an empty transition function.
func NewTransitionFunction[S, St comparable]() *TransitionFunction[S, St] {
	return &TransitionFunction[S, St]{m: make(map[Key[S, St]]core.Set[core.State[St]])}
}

// Add inserts from --sym--> to and reports whether the target set grew.
func (t *TransitionFunction[S, St]) Add(from core.State[St], sym core.Symbol[S], to core.State[St]) bool {
	if t.m == nil {
		t.m = make(map[Key[S, St]]core.Set[core.State[St]])
	}
	k := Key[S, St]{From: from, Symbol: sym}
	targets, ok := t.m[k]
	if !ok {
		targets = core.NewSet[core.State[St]]()
		t.m[k] = targets
	}

	return targets.Add(to)
}

// AddSet unions to into the targets of (from, sym) and reports whether the set grew.
// An empty to leaves the function unchanged.
func (t *TransitionFunction[S, St]) AddSet(from core.State[St], sym core.Symbol[S], to core.Set[core.State[St]]) bool {
	grew := false
	for st := range to {
		if t.Add(from, sym, st) {
			grew = true
		}
	}

	return grew
}

// AddValues is Add on raw values; sym is wrapped as a labeled symbol.
func (t *TransitionFunction[S, St]) AddValues(from St, sym S, to St) bool {
	return t.Add(core.NewState(from), core.Labeled(sym), core.NewState(to))
}

// AddEpsilon inserts an epsilon edge between raw state values.
func (t *TransitionFunction[S, St]) AddEpsilon(from, to St) bool {
	return t.Add(core.NewState(from), core.Epsilon[S](), core.NewState(to))
}

// Remove deletes every target of (from, sym) and reports whether any existed.
func (t *TransitionFunction[S, St]) Remove(from core.State[St], sym core.Symbol[S]) bool {
	k := Key[S, St]{From: from, Symbol: sym}
	if _, ok := t.m[k]; !ok {
		return false
	}
	delete(t.m, k)

	return true
}

// RemoveValues is Remove on raw values.
func (t *TransitionFunction[S, St]) RemoveValues(from St, sym S) bool {
	return t.Remove(core.NewState(from), core.Labeled(sym))
}

// RemoveTarget deletes the single edge from --sym--> to.
func (t *TransitionFunction[S, St]) RemoveTarget(from core.State[St], sym core.Symbol[S], to core.State[St]) bool {
	k := Key[S, St]{From: from, Symbol: sym}
	targets, ok := t.m[k]
	if !ok || !targets.Remove(to) {
		return false
	}
	if targets.Len() == 0 {
		delete(t.m, k)
	}

	return true
}

// RemoveState purges every transition whose source is st and returns how many
// (state, symbol) entries were dropped. Edges into st are left alone.
func (t *TransitionFunction[S, St]) RemoveState(st core.State[St]) int {
	n := 0
	for k := range t.m {
		if k.From == st {
			delete(t.m, k)
			n++
		}
	}

	return n
}

// Contains reports whether (from, sym) has at least one target.
func (t *TransitionFunction[S, St]) Contains(from core.State[St], sym core.Symbol[S]) bool {
	return t.targets(from, sym).Len() > 0
}

// Targets returns a copy of the targets of (from, sym).
func (t *TransitionFunction[S, St]) Targets(from core.State[St], sym core.Symbol[S]) core.Set[core.State[St]] {
	return t.targets(from, sym).Clone()
}

// targets returns the live target set, or nil.
func (t *TransitionFunction[S, St]) targets(from core.State[St], sym core.Symbol[S]) core.Set[core.State[St]] {
	if t == nil {
		return nil
	}

	return t.m[Key[S, St]{From: from, Symbol: sym}]
}

// only returns the target of (from, sym) when there is exactly one.
func (t *TransitionFunction[S, St]) only(from core.State[St], sym core.Symbol[S]) (core.State[St], bool) {
	var zero core.State[St]
	targets := t.targets(from, sym)
	if targets.Len() != 1 {
		return zero, false
	}
	for st := range targets {
		return st, true
	}

	return zero, false
}

// HasEpsilonTransitions reports whether any epsilon-keyed entry exists.
func (t *TransitionFunction[S, St]) HasEpsilonTransitions() bool {
	if t == nil {
		return false
	}
	for k := range t.m {
		if k.Symbol.IsEpsilon() {
			return true
		}
	}

	return false
}

// Len returns the number of (state, symbol) entries.
func (t *TransitionFunction[S, St]) Len() int {
	if t == nil {
		return 0
	}

	return len(t.m)
}

// Transitions lists every entry ordered by source state, then symbol.
func (t *TransitionFunction[S, St]) Transitions() []Transition[S, St] {
	if t == nil {
		return nil
	}
	out := make([]Transition[S, St], 0, len(t.m))
	for k, targets := range t.m {
		out = append(out, Transition[S, St]{From: k.From, Symbol: k.Symbol, To: targets.Sorted()})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := core.Compare(out[i].From, out[j].From); c != 0 {
			return c < 0
		}
		return core.Compare(out[i].Symbol, out[j].Symbol) < 0
	})

	return out
}

// Equal reports whether both functions agree on every (state, symbol) pair,
// treating an absent pair as the empty set.
func (t *TransitionFunction[S, St]) Equal(other *TransitionFunction[S, St]) bool {
	if t.Len() != other.Len() {
		return false
	}
	if t.Len() == 0 {
		return true
	}
	for k, targets := range t.m {
		if !targets.Equal(other.m[k]) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy.
func (t *TransitionFunction[S, St]) Clone() *TransitionFunction[S, St] {
	out := NewTransitionFunction[S, St]()
	if t == nil {
		return out
	}
	for k, targets := range t.m {
		out.m[k] = targets.Clone()
	}

	return out
}

// String renders one "(from, sym) -> {to, ...}" line per entry.
func (t *TransitionFunction[S, St]) String() string {
	var sb strings.Builder
	for _, tr := range t.Transitions() {
		fmt.Fprintf(&sb, "(%v, %v) -> {%s}\n", tr.From, tr.Symbol, core.Join(tr.To, ", "))
	}

	return sb.String()
}
