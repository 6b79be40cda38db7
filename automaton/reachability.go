package automaton

import (
	"github.com/emirpasic/gods/v2/queues/linkedlistqueue"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlang/core"
)

// ReachableStates returns every state reachable from the initial state.
//
// The BFS is seeded with the epsilon closure of the initial state and expands
// each dequeued state through Closure on every alphabet symbol, so states
// reachable only over epsilon edges are included.
//
// Complexity: O(V · |Σ| · (V + E)).
func (a *Automaton[S, St]) ReachableStates() core.Set[core.State[St]] {
	seen := a.delta.EpsilonClosure(a.initial)
	queue := linkedlistqueue.New[core.State[St]]()
	for _, st := range seen.Sorted() {
		queue.Enqueue(st)
	}
	symbols := a.alphabet.Sorted()
	for !queue.Empty() {
		cur, _ := queue.Dequeue()
		for _, sym := range symbols {
			for _, next := range a.delta.Closure(cur, sym).Sorted() {
				if seen.Add(next) {
					queue.Enqueue(next)
				}
			}
		}
	}

	return seen
}

// RemoveUnreachableStates drops every state not returned by ReachableStates,
// together with its outgoing transitions, and shrinks the final states to
// match. The initial state is always kept.
//
// The pruned automaton is validated before it replaces the receiver; on error
// the receiver is unchanged.
func (a *Automaton[S, St]) RemoveUnreachableStates() error {
	reachable := a.ReachableStates()
	candidate := a.Clone()
	removed := a.states.Difference(reachable)
	for st := range removed {
		candidate.delta.RemoveState(st)
	}
	candidate.states = a.states.Intersect(reachable)
	candidate.finals = a.finals.Intersect(reachable)
	if err := candidate.validate(); err != nil {
		return err
	}
	if removed.Len() > 0 {
		a.logger.Debug("removed unreachable states",
			zap.Int("removed", removed.Len()),
			zap.Int("remaining", candidate.states.Len()))
	}
	*a = *candidate

	return nil
}
