// Command lvlang loads grammars written in EBNF, rewrites them, converts
// regular ones to automata and runs those automata on words.
//
// Grammars use the EBNF dialect of golang.org/x/exp/ebnf. Quoted tokens are
// terminals, production names are non-terminals and the empty token ""
// stands for epsilon:
//
//	S = "a" B | "" .
//	B = "b" S .
//
//	lvlang grammar -f expr.ebnf -s Expr --class context-free --remove-epsilon
//	lvlang convert -f ab.ebnf -s S --dfa --minimize
//	lvlang convert -f ab.ebnf -s S --dot | dot -Tsvg > ab.svg
//	lvlang accept  -f ab.ebnf -s S ab abab ""
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
