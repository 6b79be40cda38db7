// Package convert turns a regular grammar into an equivalent NFA.
//
// Every non-terminal becomes a state named by fmt.Sprint of its value, and
// one sentinel state ("final", or "final0", "final1", ... when taken) is added.
// The terminals become the input alphabet.
//
// Right-regular grammars (and grammars whose direction is still undetermined)
// read left to right:
//
//	A → aB   A --a--> B
//	A → a    A --a--> sentinel
//	A → ε    A is final
//
// with the start symbol's state as initial and the sentinel final.
//
// Left-regular grammars build the word from its end, so the sentinel is the
// initial state and the start symbol's state is the only final one:
//
//	A → Ba   B --a--> A   (and sentinel --a--> A when B → ε)
//	A → a    sentinel --a--> A
//	S → ε    the sentinel is final as well
//
// Epsilon rules are translated directly; the grammar is never modified, so no
// prior RemoveEpsilonRules call is needed.
package convert
