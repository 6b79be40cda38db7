// Package render prints automata and grammars for people: transition tables
// and rule listings via tablewriter, and Graphviz DOT source for automata.
//
// Nothing here is parsed back; the formats carry no compatibility promise.
package render
