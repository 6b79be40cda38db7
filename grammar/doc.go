// Package grammar implements Chomsky-hierarchy grammars with per-class rule
// validation and epsilon-rule removal.
//
// What
//
//   - Rule: a production lhs → rhs over core.Symbol values, well-formed on its
//     own (non-empty sides, no epsilon on the left, epsilon alone on the right).
//   - Grammar: one structure for every class. Class picks the shape predicate
//     checked on every rule at construction and on every AddRule/TryAddRule:
//   - RecursivelyEnumerable: none.
//   - ContextSensitive: |lhs| ≤ |rhs|, the αXβ → αyβ form for |rhs| > 1, and
//     a nullable start symbol never on a right-hand side.
//   - ContextFree: a single non-terminal on the left.
//   - Regular: context-free plus A → a, A → ε and either A → aB or A → Ba;
//     the first two-symbol rule fixes the Regularity.
//   - NonTerminalsGeneratingEpsilon: nullable fixpoint.
//   - RemoveEpsilonRules: epsilon-free rewrite that keeps ε in the language
//     when the start symbol was nullable.
//   - ParseEBNF: build a Grammar[string] from EBNF text.
//
// Symbols
//
//	A symbol is just Epsilon or a labeled value (core.Symbol). Whether it is a
//	terminal or a non-terminal is decided by the grammar's two symbol sets,
//	which must be disjoint and must declare every symbol used in a rule.
//
// Order dependence
//
//	The context-sensitive start-symbol flags and the regular direction are
//	running state, threaded through the rules in insertion order and never
//	reset. A rule is rejected if it conflicts with what earlier rules fixed.
//
// Fresh symbols
//
//	RemoveEpsilonRules may need a new start symbol. Strings get primes
//	appended (S → S'), integer kinds are incremented (rune 'A' → 'B'); other
//	types must supply WithFreshSymbol.
//
// Errors
//
//   - ErrRuleMalformed family: ErrEmptyLHS, ErrEmptyRHS, ErrEpsilonInLHS,
//     ErrEpsilonMixed, ErrNoNonTerminalInLHS.
//   - ErrRuleShape family: ErrLHSLongerThanRHS, ErrStartSymbolOnRHS,
//     ErrContextMismatch, ErrLHSNotSingle, ErrRegularLength,
//     ErrRegularUnitRule, ErrRegularForm, ErrRegularDirection.
//   - ErrInconsistent family: ErrSymbolOverlap, ErrUndeclaredSymbol,
//     ErrInvalidStartSymbol, ErrEpsilonDeclared.
//   - ErrNotContextFree, ErrNoFreshSymbol, ErrUnsupportedExpression,
//     ErrOptionViolation, ErrUnknownClass.
//
// TryAddRule is the one operation that reports failure as a boolean.
package grammar
