package automaton

import (
	"fmt"
	"strconv"

	"github.com/emirpasic/gods/v2/queues/linkedlistqueue"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlang/core"
)

// TrapState is the name of the empty subset produced by ToDFA. It is
// reserved: no non-empty subset is ever given this name.
const TrapState = "{}"

// subsetNamer assigns one DFA state name per distinct subset of source states.
//
// The memo key is the Go-syntax rendering of the sorted members, which is
// injective for the value types states are built from. Display names use the
// plain rendering ({q1,q2}); two subsets that print alike get a "#n" suffix.
type subsetNamer[St comparable] struct {
	byKey map[string]string
	used  map[string]struct{}
}

func newSubsetNamer[St comparable]() *subsetNamer[St] {
	return &subsetNamer[St]{
		byKey: make(map[string]string),
		used:  map[string]struct{}{TrapState: {}},
	}
}

// name returns the state name of subset and whether it was seen before.
func (n *subsetNamer[St]) name(subset core.Set[core.State[St]]) (string, bool) {
	members := subset.Sorted()
	key := fmt.Sprintf("%#v", members)
	if name, ok := n.byKey[key]; ok {
		return name, true
	}
	if len(members) == 0 {
		n.byKey[key] = TrapState
		return TrapState, false
	}
	base := "{" + core.Join(members, ",") + "}"
	name := base
	for i := 1; ; i++ {
		if _, taken := n.used[name]; !taken {
			break
		}
		name = base + "#" + strconv.Itoa(i)
	}
	n.byKey[key] = name
	n.used[name] = struct{}{}

	return name, false
}

// ToDFA determinizes the automaton by subset construction. The receiver is
// not modified; an ε-NFA is first passed through ToNFA.
//
// DFA states are named after the subsets they stand for. Only subsets
// reachable from {initial} are built. The empty subset becomes TrapState,
// a non-final state looping on every symbol, so the result is always total.
// A subset is final iff it meets the original final states.
//
// Complexity: O(2^V · |Σ| · V) worst case; typically proportional to the
// number of reachable subsets.
func (a *Automaton[S, St]) ToDFA() (*Automaton[S, string], error) {
	src := a
	if a.class == EpsilonNFA {
		nfa, err := a.ToNFA()
		if err != nil {
			return nil, err
		}
		src = nfa
	}

	namer := newSubsetNamer[St]()
	symbols := src.alphabet.Sorted()
	delta := NewTransitionFunction[S, string]()
	var states, finals []core.State[string]

	// the queue holds names; subsets maps them back to their members
	subsets := make(map[string]core.Set[core.State[St]])
	start := core.NewSet(src.initial)
	initial, _ := namer.name(start)
	subsets[initial] = start
	queue := linkedlistqueue.New[string]()
	queue.Enqueue(initial)
	states = append(states, core.NewState(initial))
	if start.Intersects(src.finals) {
		finals = append(finals, core.NewState(initial))
	}

	for !queue.Empty() {
		from, _ := queue.Dequeue()
		cur := subsets[from]
		for _, sym := range symbols {
			next := src.delta.move(cur, sym)
			to, seen := namer.name(next)
			if !seen {
				subsets[to] = next
				states = append(states, core.NewState(to))
				if next.Intersects(src.finals) {
					finals = append(finals, core.NewState(to))
				}
				queue.Enqueue(to)
			}
			delta.Add(core.NewState(from), sym, core.NewState(to))
		}
	}

	out, err := New(DFA, symbols, states, core.NewState(initial), delta, finals, WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("subset construction finished",
		zap.Int("sourceStates", src.states.Len()),
		zap.Int("dfaStates", len(states)))

	return out, nil
}
