// Package core defines Symbol, State and Set, the value primitives used by the
// automaton, grammar and convert packages.
package core

import "fmt"

// EpsilonString is the textual rendering of the empty word.
const EpsilonString = "ε"

// Symbol is either the empty word (Epsilon) or a labeled value.
//
// Two epsilons are always equal; two labeled symbols are equal iff their values
// are. Symbol is comparable and immutable.
type Symbol[V comparable] struct {
	// value is the zero V for epsilon.
	value   V
	epsilon bool
}

// Epsilon returns the empty-word symbol.
func Epsilon[V comparable]() Symbol[V] {
	return Symbol[V]{epsilon: true}
}

// Labeled wraps v as a non-epsilon symbol.
func Labeled[V comparable](v V) Symbol[V] {
	return Symbol[V]{value: v}
}

// Symbols wraps every value as a labeled symbol, preserving order.
func Symbols[V comparable](values ...V) []Symbol[V] {
	out := make([]Symbol[V], len(values))
	for i, v := range values {
		out[i] = Labeled(v)
	}

	return out
}

// IsEpsilon reports whether s is the empty word.
func (s Symbol[V]) IsEpsilon() bool { return s.epsilon }

// Value returns the wrapped value and true, or the zero V and false for epsilon.
func (s Symbol[V]) Value() (V, bool) {
	return s.value, !s.epsilon
}

// String renders epsilon as EpsilonString and labeled symbols via fmt.
func (s Symbol[V]) String() string {
	if s.epsilon {
		return EpsilonString
	}

	return fmt.Sprint(s.value)
}

func (s Symbol[V]) sortKey() (any, bool) { return s.value, !s.epsilon }

// State is an opaque identity wrapper; equality delegates to the value.
type State[V comparable] struct {
	value V
}

// NewState wraps v as a State.
func NewState[V comparable](v V) State[V] {
	return State[V]{value: v}
}

// States wraps every value as a State, preserving order.
func States[V comparable](values ...V) []State[V] {
	out := make([]State[V], len(values))
	for i, v := range values {
		out[i] = NewState(v)
	}

	return out
}

// Value returns the wrapped value.
func (s State[V]) Value() V { return s.value }

// String renders the wrapped value via fmt.
func (s State[V]) String() string { return fmt.Sprint(s.value) }

func (s State[V]) sortKey() (any, bool) { return s.value, true }
