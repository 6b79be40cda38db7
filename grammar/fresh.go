package grammar

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/katalvlaran/lvlang/core"
)

// maxFreshAttempts bounds the search for an unused non-terminal.
const maxFreshAttempts = 1 << 16

// freshNonTerminal derives an unused non-terminal from base: strings get
// primes appended (S', S'', ...), integer kinds are incremented ('A' → 'B' for
// runes). Other value types need WithFreshSymbol.
func (g *Grammar[V]) freshNonTerminal(base V) (core.Symbol[V], error) {
	next := g.fresh
	if next == nil {
		next = func(b V, attempt int) V {
			v, ok := bump(b, attempt)
			if !ok {
				return b
			}
			return v
		}
		if _, ok := bump(base, 1); !ok {
			return core.Symbol[V]{}, fmt.Errorf("%w: no default generator for %T, use WithFreshSymbol", ErrNoFreshSymbol, base)
		}
	}
	for attempt := 1; attempt <= maxFreshAttempts; attempt++ {
		cand := core.Labeled(next(base, attempt))
		if !g.declared(cand) {
			return cand, nil
		}
	}

	return core.Symbol[V]{}, fmt.Errorf("%w: %d candidates from %v are all in use", ErrNoFreshSymbol, maxFreshAttempts, base)
}

// bump applies the built-in strategy to any type whose kind is string or an
// integer; ok is false for other kinds and on overflow.
func bump[V comparable](base V, attempt int) (V, bool) {
	out := base
	v := reflect.ValueOf(&out).Elem()
	switch v.Kind() {
	case reflect.String:
		v.SetString(v.String() + strings.Repeat("'", attempt))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int() + int64(attempt)
		if v.OverflowInt(n) {
			return base, false
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := v.Uint() + uint64(attempt)
		if v.OverflowUint(n) {
			return base, false
		}
		v.SetUint(n)
	default:
		return base, false
	}

	return out, true
}
