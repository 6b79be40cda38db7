// Package lvlang is an in-memory toolkit for formal languages: finite automata,
// Chomsky-hierarchy grammars and the constructions that connect them.
//
// 🚀 What is lvlang?
//
//	A small generic library that brings together:
//		• Core primitives: Symbol (epsilon or labeled), State, Set
//		• Automata: ε-NFA, NFA and DFA under one validated structure
//		• Closures: epsilon-closure and closure over a transition function
//		• Constructions: epsilon elimination, subset construction, minimization
//		• Grammars: recursively enumerable, context-sensitive, context-free, regular
//		• Normalization: nullable non-terminals and epsilon-rule removal
//		• Conversion: regular grammar to equivalent NFA
//
// ✨ Why choose lvlang?
//
//   - Generic over symbol and state types: runes, strings, ints or your own
//   - Validated on every mutation: a value never exists in an invalid state
//   - Deterministic output: listings and String() are stable across runs
//   - Batteries included: tables, Graphviz DOT and an EBNF front end
//
// Packages:
//
//	core/        Symbol, State, Set and deterministic ordering
//	automaton/   Automaton, TransitionFunction, ToNFA, ToDFA, Minimize
//	grammar/     Grammar, Rule, TryAddRule, RemoveEpsilonRules, ParseEBNF
//	convert/     FromRegularGrammar
//	render/      transition tables, grammar tables and DOT export
//	cmd/lvlang/  command-line front end over all of the above
//
// Quick example:
//
//	S -> a S | b A
//	A -> a
//
//	is a right-regular grammar; convert.FromRegularGrammar turns it into an NFA
//	over {a, b}, automaton.ToDFA determinizes it and Minimize shrinks the result.
//
//	go get github.com/katalvlaran/lvlang
package lvlang
