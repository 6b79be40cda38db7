package grammar

import (
	"fmt"

	"github.com/katalvlaran/lvlang/core"
)

// shapeState is the running state a class check threads through the rules
// in insertion order. Checks are pure: they return the next state and never
// touch the grammar, so a rejected rule leaves no trace.
type shapeState struct {
	// context-sensitive: flags are monotonic, never unset.
	startNullable bool
	startOnRHS    bool

	// regular: fixed by the first two-symbol rule.
	regularity Regularity
}

// checkShape applies the class predicate to r.
func (g *Grammar[V]) checkShape(st shapeState, r Rule[V]) (shapeState, error) {
	switch g.class {
	case RecursivelyEnumerable:
		return st, nil
	case ContextSensitive:
		return g.contextSensitive(st, r)
	case ContextFree:
		return st, contextFree(r)
	case Regular:
		if err := contextFree(r); err != nil {
			return st, err
		}
		return g.regular(st, r)
	default:
		return st, fmt.Errorf("%w: %d", ErrUnknownClass, int(g.class))
	}
}

func (g *Grammar[V]) contextSensitive(st shapeState, r Rule[V]) (shapeState, error) {
	if len(r.lhs) > len(r.rhs) {
		return st, fmt.Errorf("%w: %v", ErrLHSLongerThanRHS, r)
	}
	if len(r.rhs) > 1 && !g.contextShaped(r) {
		return st, fmt.Errorf("%w: %v", ErrContextMismatch, r)
	}
	if !g.hasStart {
		return st, nil
	}
	if r.IsEpsilonRule() && len(r.lhs) == 1 && r.lhs[0] == g.start {
		st.startNullable = true
	}
	for _, s := range r.rhs {
		if s == g.start {
			st.startOnRHS = true
			break
		}
	}
	if st.startNullable && st.startOnRHS {
		return st, fmt.Errorf("%w: %v (start symbol %v)", ErrStartSymbolOnRHS, r, g.start)
	}

	return st, nil
}

// contextShaped reports whether some non-terminal X in the LHS splits the rule
// as αXβ → αyβ: the LHS prefix before X equals the RHS prefix of the same
// length and the LHS suffix after X equals the RHS suffix of the same length.
// y is non-empty whenever |LHS| ≤ |RHS|.
func (g *Grammar[V]) contextShaped(r Rule[V]) bool {
	n, m := len(r.lhs), len(r.rhs)
	for i, x := range r.lhs {
		if !g.nonTerminals.Has(x) {
			continue
		}
		tail := n - i - 1
		if equalSymbols(r.lhs[:i], r.rhs[:i]) && equalSymbols(r.lhs[i+1:], r.rhs[m-tail:]) {
			return true
		}
	}

	return false
}

func contextFree[V comparable](r Rule[V]) error {
	if len(r.lhs) != 1 {
		return fmt.Errorf("%w: %v", ErrLHSNotSingle, r)
	}

	return nil
}

func (g *Grammar[V]) regular(st shapeState, r Rule[V]) (shapeState, error) {
	if r.IsEpsilonRule() {
		return st, nil
	}
	switch len(r.rhs) {
	case 1:
		if !g.terminals.Has(r.rhs[0]) {
			return st, fmt.Errorf("%w: %v", ErrRegularUnitRule, r)
		}
		return st, nil
	case 2:
		dir := g.direction(r.rhs[0], r.rhs[1])
		if dir == Undetermined {
			return st, fmt.Errorf("%w: %v", ErrRegularForm, r)
		}
		if st.regularity != Undetermined && st.regularity != dir {
			return st, fmt.Errorf("%w: %v is %s, grammar is %s", ErrRegularDirection, r, dir, st.regularity)
		}
		st.regularity = dir
		return st, nil
	default:
		return st, fmt.Errorf("%w: %v", ErrRegularLength, r)
	}
}

// direction classifies a two-symbol right-hand side.
func (g *Grammar[V]) direction(first, second core.Symbol[V]) Regularity {
	switch {
	case g.terminals.Has(first) && g.nonTerminals.Has(second):
		return RightRegular
	case g.nonTerminals.Has(first) && g.terminals.Has(second):
		return LeftRegular
	default:
		return Undetermined
	}
}
