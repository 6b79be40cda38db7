// Package core provides the value primitives shared by every lvlang package:
// Symbol, State and a small generic Set.
//
// Symbol is a tagged union with two variants:
//
//   - Epsilon():  the empty word; carries no value. All epsilons are equal.
//   - Labeled(v): an ordinary symbol; equality and hashing depend only on v.
//
// Whether a labeled symbol is a terminal, a non-terminal or an input letter of
// an automaton is not part of the symbol: that classification belongs to the
// owning grammar (its terminal and non-terminal sets) or automaton (its input
// alphabet). A grammar terminal and an automaton input letter with the same
// value are therefore the very same Symbol.
//
// State is an opaque identity wrapper around any comparable value.
//
// Both types are plain comparable structs, so they work directly as map keys
// and with ==. Zero values are valid: the zero Symbol is Labeled of the zero V,
// the zero State wraps the zero V.
//
// Determinism:
//
//	Set.Sorted and the package-level Compare order numbers numerically, so
//	state 2 sorts before state 10, and every other value by its fmt
//	rendering, falling back to the Go-syntax rendering on ties. Strings stay
//	lexical: "q10" sorts before "q2". Every listing
//	in lvlang (alphabets, states, transitions, rules) goes through Compare, so
//	String() output and rendered tables are stable across runs.
//
// Complexity:
//
//	Set operations are O(1) per element (hash map). Sorted is O(n·log n).
package core
