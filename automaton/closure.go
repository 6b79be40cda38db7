package automaton

import (
	"github.com/emirpasic/gods/v2/queues/linkedlistqueue"

	"github.com/katalvlaran/lvlang/core"
)

// EpsilonClosure returns every state reachable from st through zero or more
// epsilon edges. The result always contains st.
//
// Complexity: O(V + E_ε) breadth-first over epsilon edges only.
func (t *TransitionFunction[S, St]) EpsilonClosure(st core.State[St]) core.Set[core.State[St]] {
	return t.EpsilonClosureOf(core.NewSet(st))
}

// EpsilonClosureOf returns the union of the epsilon closures of every member of from.
func (t *TransitionFunction[S, St]) EpsilonClosureOf(from core.Set[core.State[St]]) core.Set[core.State[St]] {
	closure := from.Clone()
	queue := linkedlistqueue.New[core.State[St]]()
	for st := range from {
		queue.Enqueue(st)
	}
	eps := core.Epsilon[S]()
	for !queue.Empty() {
		cur, _ := queue.Dequeue()
		for next := range t.targets(cur, eps) {
			if closure.Add(next) {
				queue.Enqueue(next)
			}
		}
	}

	return closure
}

// Closure moves from st on sym and spreads the result over epsilon edges:
// EpsilonClosureOf(targets(st, sym)). The same contract drives acceptance,
// reachability and epsilon elimination.
func (t *TransitionFunction[S, St]) Closure(st core.State[St], sym core.Symbol[S]) core.Set[core.State[St]] {
	return t.EpsilonClosureOf(t.targets(st, sym))
}

// ClosureOf is Closure applied to every member of from and unioned.
func (t *TransitionFunction[S, St]) ClosureOf(from core.Set[core.State[St]], sym core.Symbol[S]) core.Set[core.State[St]] {
	return t.EpsilonClosureOf(t.move(from, sym))
}

// move returns the union of the direct targets of every member of from on sym.
func (t *TransitionFunction[S, St]) move(from core.Set[core.State[St]], sym core.Symbol[S]) core.Set[core.State[St]] {
	out := core.NewSet[core.State[St]]()
	for st := range from {
		out.AddAll(t.targets(st, sym))
	}

	return out
}
