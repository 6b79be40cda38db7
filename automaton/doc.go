// Package automaton implements finite-state automata: ε-NFA, NFA and DFA over
// arbitrary comparable symbol and state values.
//
// What
//
//   - TransitionFunction: (state, symbol) → set of states, with epsilon
//     closure and symbol closure.
//   - Automaton: one structure for all three classes. Class selects the extra
//     invariants: NFA forbids epsilon edges, DFA additionally requires exactly
//     one target for every (state, symbol) pair.
//   - Accepts / AcceptsValues / AcceptsString: language membership.
//   - ReachableStates / RemoveUnreachableStates: forward pruning.
//   - ToNFA: epsilon elimination.
//   - ToDFA: subset construction, always total (trap state "{}").
//   - Minimize: Moore partition refinement, in place.
//
// Closure contract
//
//	Closure(q, a) = EpsilonClosureOf(targets(q, a)): move on a, then spread
//	over epsilon edges. Acceptance, reachability and epsilon elimination all
//	use this one definition, and every walk starts from EpsilonClosure(initial).
//
// Validation
//
//	Constructors fail fast. In-place operations (RemoveUnreachableStates,
//	Minimize) build a candidate, validate it and only then replace the
//	receiver, so an invalid automaton is never observable.
//
// Determinism
//
//	Sets are unordered, but every listing (States, Transitions, String) and
//	every traversal that names new states (ToDFA) iterates in core.Compare
//	order, so output is reproducible.
//
// Usage
//
//	delta := automaton.NewTransitionFunction[rune, string]()
//	delta.AddValues("q0", 'a', "q1")
//	delta.AddValues("q1", 'a', "q1")
//	a, err := automaton.FromValues(automaton.NFA,
//	    []rune{'a'}, []string{"q0", "q1"}, "q0", delta, []string{"q1"})
//	if err != nil {
//	    // errors.Is(err, automaton.ErrStructuralInvariant)
//	}
//	ok, _ := automaton.AcceptsString(a, "aaa") // true
//
// Errors
//
//   - ErrStructuralInvariant and its refinements (ErrInitialStateMissing,
//     ErrFinalStateMissing, ErrDanglingState, ErrSymbolNotInAlphabet,
//     ErrEpsilonInAlphabet, ErrEpsilonTransition, ErrNotTotal,
//     ErrNotDeterministic) at construction.
//   - ErrInvalidSymbol from Accepts.
//   - ErrNotDFA from Minimize.
//   - ErrUnknownClass for an out-of-range Class.
//
// Concurrency
//
//	An Automaton is not safe for concurrent mutation. Read-only calls
//	(Accepts, ReachableStates, ToNFA, ToDFA) may run concurrently as long as
//	no RemoveUnreachableStates or Minimize runs at the same time.
package automaton
