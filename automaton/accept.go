package automaton

import (
	"fmt"

	"github.com/katalvlaran/lvlang/core"
)

// Accepts runs the automaton on input and reports whether it ends in a final state.
//
// The reached set starts as the epsilon closure of the initial state and is
// advanced with ClosureOf per symbol. Empty input is accepted iff that
// initial closure already meets a final state.
//
// Errors:
//   - ErrInvalidSymbol if some input symbol (epsilon included) is not in the alphabet.
//
// Complexity: O(len(input) · (V + E)).
func (a *Automaton[S, St]) Accepts(input []core.Symbol[S]) (bool, error) {
	reached := a.delta.EpsilonClosure(a.initial)
	for i, sym := range input {
		if !a.alphabet.Has(sym) {
			return false, fmt.Errorf("%w: %v at position %d", ErrInvalidSymbol, sym, i)
		}
		reached = a.delta.ClosureOf(reached, sym)
	}

	return reached.Intersects(a.finals), nil
}

// AcceptsValues is Accepts on raw values, each wrapped as a labeled symbol.
func (a *Automaton[S, St]) AcceptsValues(input ...S) (bool, error) {
	return a.Accepts(core.Symbols(input...))
}

// AcceptsString runs an automaton over runes on the runes of s.
func AcceptsString[St comparable](a *Automaton[rune, St], s string) (bool, error) {
	return a.AcceptsValues([]rune(s)...)
}
