package grammar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlang/core"
)

// Rule is a production lhs → rhs. The zero value is not a valid rule; build
// rules with NewRule.
//
// A rule is well-formed on its own: LHS non-empty and epsilon-free, RHS
// non-empty and either exactly [ε] or epsilon-free. Whether the LHS holds a
// non-terminal depends on the grammar and is checked there.
type Rule[V comparable] struct {
	lhs []core.Symbol[V]
	rhs []core.Symbol[V]
}

// NewRule validates and builds lhs → rhs. Both slices are copied.
func NewRule[V comparable](lhs, rhs []core.Symbol[V]) (Rule[V], error) {
	if len(lhs) == 0 {
		return Rule[V]{}, ErrEmptyLHS
	}
	if len(rhs) == 0 {
		return Rule[V]{}, ErrEmptyRHS
	}
	for _, s := range lhs {
		if s.IsEpsilon() {
			return Rule[V]{}, ErrEpsilonInLHS
		}
	}
	if len(rhs) > 1 {
		for _, s := range rhs {
			if s.IsEpsilon() {
				return Rule[V]{}, fmt.Errorf("%w: %s", ErrEpsilonMixed, core.Join(rhs, " "))
			}
		}
	}

	return Rule[V]{lhs: append([]core.Symbol[V](nil), lhs...), rhs: append([]core.Symbol[V](nil), rhs...)}, nil
}

// RuleOf builds a rule from raw values. An empty rhs means epsilon.
func RuleOf[V comparable](lhs, rhs []V) (Rule[V], error) {
	right := core.Symbols(rhs...)
	if len(right) == 0 {
		right = []core.Symbol[V]{core.Epsilon[V]()}
	}

	return NewRule(core.Symbols(lhs...), right)
}

// EpsilonRule returns lhs → ε.
func EpsilonRule[V comparable](lhs ...core.Symbol[V]) (Rule[V], error) {
	return NewRule(lhs, []core.Symbol[V]{core.Epsilon[V]()})
}

// LHS returns a copy of the left-hand side.
func (r Rule[V]) LHS() []core.Symbol[V] { return append([]core.Symbol[V](nil), r.lhs...) }

// RHS returns a copy of the right-hand side.
func (r Rule[V]) RHS() []core.Symbol[V] { return append([]core.Symbol[V](nil), r.rhs...) }

// IsEpsilonRule reports whether the right-hand side is exactly [ε].
func (r Rule[V]) IsEpsilonRule() bool {
	return len(r.rhs) == 1 && r.rhs[0].IsEpsilon()
}

// Equal compares both sides element by element.
func (r Rule[V]) Equal(other Rule[V]) bool {
	return equalSymbols(r.lhs, other.lhs) && equalSymbols(r.rhs, other.rhs)
}

// String renders the rule as "lhs -> rhs" with space-separated symbols.
func (r Rule[V]) String() string {
	return core.Join(r.lhs, " ") + " -> " + core.Join(r.rhs, " ")
}

// key identifies the rule in a grammar's dedupe index.
func (r Rule[V]) key() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%#v", r.lhs)
	sb.WriteString("->")
	fmt.Fprintf(&sb, "%#v", r.rhs)

	return sb.String()
}

func equalSymbols[V comparable](a, b []core.Symbol[V]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
