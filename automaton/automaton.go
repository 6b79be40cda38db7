// File: automaton.go
// Role: the Automaton structure, its constructors and invariant validation.
// Validation:
//   - Every constructor and every in-place operation builds a candidate value,
//     validates it, and only then publishes it. No partially valid automaton is
//     ever observable.

package automaton

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlang/core"
)

// Automaton is a finite-state automaton over input symbols S with states St.
//
// A single structure serves all three classes; Class decides which additional
// invariants hold (see checkClass) and which operations are meaningful.
type Automaton[S, St comparable] struct {
	class    Class
	alphabet core.Set[core.Symbol[S]]
	states   core.Set[core.State[St]]
	initial  core.State[St]
	delta    *TransitionFunction[S, St]
	finals   core.Set[core.State[St]]
	logger   *zap.Logger
}

// New builds and validates an automaton of the given class.
// The transition function is copied; later changes to delta do not affect
// the automaton. A nil delta is treated as empty.
//
// Returns an error wrapping ErrStructuralInvariant on any violation.
func New[S, St comparable](
	class Class,
	alphabet []core.Symbol[S],
	states []core.State[St],
	initial core.State[St],
	delta *TransitionFunction[S, St],
	finals []core.State[St],
	opts ...Option,
) (*Automaton[S, St], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	a := &Automaton[S, St]{
		class:    class,
		alphabet: core.NewSet(alphabet...),
		states:   core.NewSet(states...),
		initial:  initial,
		delta:    delta.Clone(),
		finals:   core.NewSet(finals...),
		logger:   o.Logger,
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// FromValues is New on raw values: alphabet values become labeled symbols and
// state values become states.
func FromValues[S, St comparable](
	class Class,
	alphabet []S,
	states []St,
	initial St,
	delta *TransitionFunction[S, St],
	finals []St,
	opts ...Option,
) (*Automaton[S, St], error) {
	return New(class, core.Symbols(alphabet...), core.States(states...), core.NewState(initial), delta, core.States(finals...), opts...)
}

// Clone returns an independent deep copy.
func (a *Automaton[S, St]) Clone() *Automaton[S, St] {
	return &Automaton[S, St]{
		class:    a.class,
		alphabet: a.alphabet.Clone(),
		states:   a.states.Clone(),
		initial:  a.initial,
		delta:    a.delta.Clone(),
		finals:   a.finals.Clone(),
		logger:   a.logger,
	}
}

// Class returns the automaton class.
func (a *Automaton[S, St]) Class() Class { return a.class }

// Alphabet returns the input symbols in deterministic order.
func (a *Automaton[S, St]) Alphabet() []core.Symbol[S] { return a.alphabet.Sorted() }

// States returns the states in deterministic order.
func (a *Automaton[S, St]) States() []core.State[St] { return a.states.Sorted() }

// NumStates returns |states|.
func (a *Automaton[S, St]) NumStates() int { return a.states.Len() }

// Initial returns the initial state.
func (a *Automaton[S, St]) Initial() core.State[St] { return a.initial }

// FinalStates returns the accepting states in deterministic order.
func (a *Automaton[S, St]) FinalStates() []core.State[St] { return a.finals.Sorted() }

// IsFinal reports whether st is accepting.
func (a *Automaton[S, St]) IsFinal(st core.State[St]) bool { return a.finals.Has(st) }

// HasState reports whether st is a member of the state set.
func (a *Automaton[S, St]) HasState(st core.State[St]) bool { return a.states.Has(st) }

// InAlphabet reports whether sym is an input symbol.
func (a *Automaton[S, St]) InAlphabet(sym core.Symbol[S]) bool { return a.alphabet.Has(sym) }

// TransitionFunction returns a copy of the transition function.
func (a *Automaton[S, St]) TransitionFunction() *TransitionFunction[S, St] { return a.delta.Clone() }

// Transitions lists the transition function in deterministic order.
func (a *Automaton[S, St]) Transitions() []Transition[S, St] { return a.delta.Transitions() }

// String renders the five components of the automaton, one per section.
func (a *Automaton[S, St]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Class: %s\n", a.class)
	fmt.Fprintf(&sb, "Input Alphabet: %s\n", a.alphabet)
	fmt.Fprintf(&sb, "States: %s\n", a.states)
	fmt.Fprintf(&sb, "Initial State: %v\n", a.initial)
	fmt.Fprintf(&sb, "delta:\n%s", a.delta)
	fmt.Fprintf(&sb, "Final States: %s\n", a.finals)

	return sb.String()
}

// validate checks the shared invariants, then the class-specific ones.
func (a *Automaton[S, St]) validate() error {
	if a.alphabet.Has(core.Epsilon[S]()) {
		return ErrEpsilonInAlphabet
	}
	if !a.states.Has(a.initial) {
		return fmt.Errorf("%w: %v", ErrInitialStateMissing, a.initial)
	}
	for _, tr := range a.delta.Transitions() {
		if !a.states.Has(tr.From) {
			return fmt.Errorf("%w: source %v of (%v, %v)", ErrDanglingState, tr.From, tr.From, tr.Symbol)
		}
		if !tr.Symbol.IsEpsilon() && !a.alphabet.Has(tr.Symbol) {
			return fmt.Errorf("%w: %v in (%v, %v)", ErrSymbolNotInAlphabet, tr.Symbol, tr.From, tr.Symbol)
		}
		for _, to := range tr.To {
			if !a.states.Has(to) {
				return fmt.Errorf("%w: target %v of (%v, %v)", ErrDanglingState, to, tr.From, tr.Symbol)
			}
		}
	}
	for _, f := range a.finals.Sorted() {
		if !a.states.Has(f) {
			return fmt.Errorf("%w: %v", ErrFinalStateMissing, f)
		}
	}

	return checkClass(a)
}

// checkClass applies the invariants that distinguish NFA and DFA from ε-NFA.
func checkClass[S, St comparable](a *Automaton[S, St]) error {
	switch a.class {
	case EpsilonNFA:
		return nil
	case NFA:
		return checkEpsilonFree(a)
	case DFA:
		if err := checkEpsilonFree(a); err != nil {
			return err
		}
		return checkDeterministic(a)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownClass, int(a.class))
	}
}

func checkEpsilonFree[S, St comparable](a *Automaton[S, St]) error {
	if a.delta.HasEpsilonTransitions() {
		return ErrEpsilonTransition
	}

	return nil
}

// checkDeterministic requires exactly one target for every (state, symbol)
// with symbol in the alphabet.
func checkDeterministic[S, St comparable](a *Automaton[S, St]) error {
	symbols := a.alphabet.Sorted()
	for _, st := range a.states.Sorted() {
		for _, sym := range symbols {
			switch n := a.delta.targets(st, sym).Len(); {
			case n == 0:
				return fmt.Errorf("%w: (%v, %v) has no target", ErrNotTotal, st, sym)
			case n > 1:
				return fmt.Errorf("%w: (%v, %v) has %d targets", ErrNotDeterministic, st, sym, n)
			}
		}
	}

	return nil
}
