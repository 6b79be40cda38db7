// File: types.go
// Role: error taxonomy, automaton Class and the functional options shared by
// every constructor in this package.

package automaton

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors. Every structural error wraps ErrStructuralInvariant, so
// callers may test either for the family or for the precise violation.
var (
	// ErrStructuralInvariant is the family of construction-time violations.
	ErrStructuralInvariant = errors.New("automaton: structural invariant violated")

	// ErrInitialStateMissing indicates the initial state is not in the state set.
	ErrInitialStateMissing = fmt.Errorf("%w: initial state is not a member of states", ErrStructuralInvariant)

	// ErrFinalStateMissing indicates a final state is not in the state set.
	ErrFinalStateMissing = fmt.Errorf("%w: final state is not a member of states", ErrStructuralInvariant)

	// ErrDanglingState indicates a transition references an undeclared state.
	ErrDanglingState = fmt.Errorf("%w: transition references an undeclared state", ErrStructuralInvariant)

	// ErrSymbolNotInAlphabet indicates a non-epsilon transition symbol outside the alphabet.
	ErrSymbolNotInAlphabet = fmt.Errorf("%w: transition symbol is not in the alphabet", ErrStructuralInvariant)

	// ErrEpsilonInAlphabet indicates the alphabet contains the empty word.
	ErrEpsilonInAlphabet = fmt.Errorf("%w: alphabet must not contain epsilon", ErrStructuralInvariant)

	// ErrEpsilonTransition indicates an epsilon edge in an NFA or DFA.
	ErrEpsilonTransition = fmt.Errorf("%w: epsilon transition in an epsilon-free automaton", ErrStructuralInvariant)

	// ErrNotTotal indicates a DFA lacks a transition for some (state, symbol) pair.
	ErrNotTotal = fmt.Errorf("%w: DFA transition function is not total", ErrStructuralInvariant)

	// ErrNotDeterministic indicates a DFA has several targets for one (state, symbol) pair.
	ErrNotDeterministic = fmt.Errorf("%w: DFA transition function is not deterministic", ErrStructuralInvariant)

	// ErrInvalidSymbol is returned by Accepts for input outside the alphabet.
	ErrInvalidSymbol = errors.New("automaton: input symbol is not in the alphabet")

	// ErrNotDFA is returned by DFA-only operations invoked on another class.
	ErrNotDFA = errors.New("automaton: operation requires a DFA")

	// ErrUnknownClass indicates an out-of-range Class value.
	ErrUnknownClass = errors.New("automaton: unknown automaton class")
)

// Class selects which invariants and capabilities an Automaton carries.
type Class int

const (
	// EpsilonNFA allows epsilon edges and several targets per (state, symbol).
	EpsilonNFA Class = iota
	// NFA forbids epsilon edges.
	NFA
	// DFA additionally requires exactly one target per (state, symbol).
	DFA
)

// String returns the conventional abbreviation of the class.
func (c Class) String() string {
	switch c {
	case EpsilonNFA:
		return "ε-NFA"
	case NFA:
		return "NFA"
	case DFA:
		return "DFA"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Option configures an Automaton at construction time.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	// Logger receives Debug records for structural operations
	// (epsilon elimination, subset construction, pruning, minimization).
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger routes debug output to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
