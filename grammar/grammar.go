// File: grammar.go
// Role: the Grammar structure, its constructors, consistency checks and rule
// insertion.
// Validation:
//   - New and FromValues check every rule in order and fail fast.
//   - AddRule checks one rule against the running shape state; the grammar
//     changes only when the check passes.

package grammar

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlang/core"
)

// Grammar is a formal grammar over symbol values V.
//
// One structure serves every Chomsky class; Class selects the shape predicate
// each rule must satisfy (see checkShape). Terminal versus non-terminal is
// decided by membership in the grammar's two symbol sets, not by the symbol.
type Grammar[V comparable] struct {
	class        Class
	nonTerminals core.Set[core.Symbol[V]]
	terminals    core.Set[core.Symbol[V]]
	start        core.Symbol[V]
	hasStart     bool

	rules []Rule[V]
	index map[string]struct{}
	shape shapeState

	logger *zap.Logger
	fresh  func(base V, attempt int) V
}

// New builds and validates a grammar. start may be nil. Duplicate rules are
// kept once, in first-seen order.
//
// Errors wrap ErrInconsistent, ErrRuleMalformed or ErrRuleShape;
// ErrOptionViolation for a WithFreshSymbol of the wrong type.
func New[V comparable](
	class Class,
	nonTerminals, terminals []core.Symbol[V],
	start *core.Symbol[V],
	rules []Rule[V],
	opts ...Option,
) (*Grammar[V], error) {
	g, err := empty[V](class, opts...)
	if err != nil {
		return nil, err
	}
	g.nonTerminals = core.NewSet(nonTerminals...)
	g.terminals = core.NewSet(terminals...)
	if start != nil {
		g.start, g.hasStart = *start, true
	}
	if err = g.checkSymbols(); err != nil {
		return nil, err
	}
	for _, r := range rules {
		if err = g.AddRule(r); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// RuleValues is a rule over raw values; an empty RHS means epsilon.
type RuleValues[V comparable] struct {
	LHS []V
	RHS []V
}

// FromValues is New on raw values. Every rule value must be declared in
// nonTerminals or terminals.
func FromValues[V comparable](
	class Class,
	nonTerminals, terminals []V,
	start *V,
	rules []RuleValues[V],
	opts ...Option,
) (*Grammar[V], error) {
	built := make([]Rule[V], 0, len(rules))
	for _, rv := range rules {
		r, err := RuleOf(rv.LHS, rv.RHS)
		if err != nil {
			return nil, err
		}
		built = append(built, r)
	}
	var st *core.Symbol[V]
	if start != nil {
		s := core.Labeled(*start)
		st = &s
	}

	return New(class, core.Symbols(nonTerminals...), core.Symbols(terminals...), st, built, opts...)
}

// empty resolves options into a grammar with no symbols and no rules.
func empty[V comparable](class Class, opts ...Option) (*Grammar[V], error) {
	if class < RecursivelyEnumerable || class > Regular {
		return nil, fmt.Errorf("%w: %d", ErrUnknownClass, int(class))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := &Grammar[V]{
		class:  class,
		index:  make(map[string]struct{}),
		logger: o.Logger,
	}
	if o.Fresh != nil {
		fn, ok := o.Fresh.(func(V, int) V)
		if !ok || fn == nil {
			return nil, fmt.Errorf("%w: fresh-symbol generator %T does not match %T", ErrOptionViolation, o.Fresh, g.fresh)
		}
		g.fresh = fn
	}

	return g, nil
}

// checkSymbols validates the declared symbols and the start symbol.
func (g *Grammar[V]) checkSymbols() error {
	eps := core.Epsilon[V]()
	if g.terminals.Has(eps) || g.nonTerminals.Has(eps) {
		return ErrEpsilonDeclared
	}
	if common := g.terminals.Intersect(g.nonTerminals); common.Len() > 0 {
		return fmt.Errorf("%w: %s", ErrSymbolOverlap, common)
	}
	if g.hasStart && !g.nonTerminals.Has(g.start) {
		return fmt.Errorf("%w: %v", ErrInvalidStartSymbol, g.start)
	}

	return nil
}

// checkRule validates r against the declared symbols and the class shape,
// returning the shape state that would hold after inserting it.
func (g *Grammar[V]) checkRule(r Rule[V]) (shapeState, error) {
	if len(r.lhs) == 0 {
		return g.shape, ErrEmptyLHS
	}
	hasNonTerminal := false
	for _, s := range r.lhs {
		if !g.declared(s) {
			return g.shape, fmt.Errorf("%w: %v in %v", ErrUndeclaredSymbol, s, r)
		}
		if g.nonTerminals.Has(s) {
			hasNonTerminal = true
		}
	}
	if !hasNonTerminal {
		return g.shape, fmt.Errorf("%w: %v", ErrNoNonTerminalInLHS, r)
	}
	if !r.IsEpsilonRule() {
		for _, s := range r.rhs {
			if !g.declared(s) {
				return g.shape, fmt.Errorf("%w: %v in %v", ErrUndeclaredSymbol, s, r)
			}
		}
	}

	return g.checkShape(g.shape, r)
}

func (g *Grammar[V]) declared(s core.Symbol[V]) bool {
	return g.terminals.Has(s) || g.nonTerminals.Has(s)
}

// AddRule validates r and inserts it. Adding a rule already present is a
// no-op that succeeds.
func (g *Grammar[V]) AddRule(r Rule[V]) error {
	k := r.key()
	if _, dup := g.index[k]; dup {
		return nil
	}
	next, err := g.checkRule(r)
	if err != nil {
		return err
	}
	g.rules = append(g.rules, r)
	g.index[k] = struct{}{}
	g.shape = next

	return nil
}

// TryAddRule is AddRule reporting failure as false instead of an error, for
// speculative insertion. The grammar is unchanged when it returns false.
func (g *Grammar[V]) TryAddRule(r Rule[V]) bool {
	return g.AddRule(r) == nil
}

// Clone returns an independent copy.
func (g *Grammar[V]) Clone() *Grammar[V] {
	out := *g
	out.nonTerminals = g.nonTerminals.Clone()
	out.terminals = g.terminals.Clone()
	out.rules = append([]Rule[V](nil), g.rules...)
	out.index = make(map[string]struct{}, len(g.index))
	for k := range g.index {
		out.index[k] = struct{}{}
	}

	return &out
}

// Class returns the grammar class.
func (g *Grammar[V]) Class() Class { return g.class }

// NonTerminals returns the non-terminals in deterministic order.
func (g *Grammar[V]) NonTerminals() []core.Symbol[V] { return g.nonTerminals.Sorted() }

// Terminals returns the terminals in deterministic order.
func (g *Grammar[V]) Terminals() []core.Symbol[V] { return g.terminals.Sorted() }

// IsNonTerminal reports whether s is a declared non-terminal.
func (g *Grammar[V]) IsNonTerminal(s core.Symbol[V]) bool { return g.nonTerminals.Has(s) }

// IsTerminal reports whether s is a declared terminal.
func (g *Grammar[V]) IsTerminal(s core.Symbol[V]) bool { return g.terminals.Has(s) }

// Start returns the start symbol and whether one is set.
func (g *Grammar[V]) Start() (core.Symbol[V], bool) { return g.start, g.hasStart }

// Rules returns the rules in insertion order.
func (g *Grammar[V]) Rules() []Rule[V] { return append([]Rule[V](nil), g.rules...) }

// NumRules returns the number of distinct rules.
func (g *Grammar[V]) NumRules() int { return len(g.rules) }

// HasRule reports whether r is present.
func (g *Grammar[V]) HasRule(r Rule[V]) bool {
	_, ok := g.index[r.key()]
	return ok
}

// Regularity returns the direction fixed by the first two-symbol rule of a
// regular grammar, or Undetermined.
func (g *Grammar[V]) Regularity() Regularity { return g.shape.regularity }

// String renders symbols, start symbol and rules, one rule per line.
func (g *Grammar[V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Class: %s\n", g.class)
	fmt.Fprintf(&sb, "Non-terminals: %s\n", g.nonTerminals)
	fmt.Fprintf(&sb, "Terminals: %s\n", g.terminals)
	if g.hasStart {
		fmt.Fprintf(&sb, "Start Symbol: %v\n", g.start)
	} else {
		sb.WriteString("Start Symbol: none\n")
	}
	sb.WriteString("Rules:\n")
	for _, r := range g.rules {
		fmt.Fprintf(&sb, "%v\n", r)
	}

	return sb.String()
}
