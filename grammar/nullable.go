package grammar

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlang/core"
)

// NonTerminalsGeneratingEpsilon returns the nullable non-terminals: those with
// an epsilon rule, or with a rule whose right-hand side is entirely nullable.
// The fixpoint runs until a pass adds nothing.
//
// Errors: ErrNotContextFree unless the class is ContextFree or Regular.
//
// Complexity: O(R · |rhs| · N) for R rules and N non-terminals.
func (g *Grammar[V]) NonTerminalsGeneratingEpsilon() (core.Set[core.Symbol[V]], error) {
	if g.class != ContextFree && g.class != Regular {
		return nil, ErrNotContextFree
	}

	return g.nullable(), nil
}

func (g *Grammar[V]) nullable() core.Set[core.Symbol[V]] {
	nullable := core.NewSet[core.Symbol[V]]()
	for changed := true; changed; {
		changed = false
		for _, r := range g.rules {
			lhs := r.lhs[0]
			if nullable.Has(lhs) {
				continue
			}
			if r.IsEpsilonRule() || allIn(r.rhs, nullable) {
				nullable.Add(lhs)
				changed = true
			}
		}
	}

	return nullable
}

func allIn[V comparable](syms []core.Symbol[V], set core.Set[core.Symbol[V]]) bool {
	for _, s := range syms {
		if !set.Has(s) {
			return false
		}
	}

	return true
}

// RemoveEpsilonRules rewrites the grammar so that no rule has an epsilon
// right-hand side, except possibly one for the start symbol.
//
// Every rule is expanded into one variant per subset of its nullable
// right-hand-side positions, with those positions deleted; variants with an
// empty right-hand side are dropped, and so are all epsilon rules. If the
// start symbol S was nullable:
//   - S on no right-hand side: S → ε is added back.
//   - otherwise a fresh non-terminal S' becomes the start symbol with S' → ε
//     and S' → S (context-free) or a copy of every S rule (regular, where a
//     unit rule is not allowed).
//
// The rewritten grammar is validated before it replaces the receiver.
//
// Errors: ErrNotContextFree; ErrNoFreshSymbol when S' cannot be generated.
func (g *Grammar[V]) RemoveEpsilonRules() error {
	nullable, err := g.NonTerminalsGeneratingEpsilon()
	if err != nil {
		return err
	}

	var rules []Rule[V]
	for _, r := range g.rules {
		if r.IsEpsilonRule() {
			continue
		}
		rules = append(rules, expand(r, nullable)...)
	}

	nonTerminals := g.nonTerminals.Clone()
	start, hasStart := g.start, g.hasStart
	if hasStart && nullable.Has(start) {
		if !onAnyRHS(rules, start) {
			rules = append(rules, Rule[V]{lhs: []core.Symbol[V]{start}, rhs: []core.Symbol[V]{core.Epsilon[V]()}})
		} else {
			value, _ := start.Value()
			fresh, err := g.freshNonTerminal(value)
			if err != nil {
				return err
			}
			nonTerminals.Add(fresh)
			if g.class == Regular {
				for _, r := range rules {
					if r.lhs[0] == start {
						rules = append(rules, Rule[V]{lhs: []core.Symbol[V]{fresh}, rhs: r.rhs})
					}
				}
			} else {
				rules = append(rules, Rule[V]{lhs: []core.Symbol[V]{fresh}, rhs: []core.Symbol[V]{start}})
			}
			rules = append(rules, Rule[V]{lhs: []core.Symbol[V]{fresh}, rhs: []core.Symbol[V]{core.Epsilon[V]()}})
			start = fresh
		}
	}

	candidate, err := g.rebuild(nonTerminals, start, hasStart, rules)
	if err != nil {
		return err
	}
	g.logger.Debug("removed epsilon rules",
		zap.Int("nullable", nullable.Len()),
		zap.Int("rulesBefore", len(g.rules)),
		zap.Int("rulesAfter", len(candidate.rules)),
		zap.Stringer("start", start))
	*g = *candidate

	return nil
}

// expand emits r once per subset of its nullable positions, skipping the
// subset that empties the right-hand side.
func expand[V comparable](r Rule[V], nullable core.Set[core.Symbol[V]]) []Rule[V] {
	var positions []int
	for i, s := range r.rhs {
		if nullable.Has(s) {
			positions = append(positions, i)
		}
	}
	out := make([]Rule[V], 0, 1<<len(positions))
	for mask := 0; mask < 1<<len(positions); mask++ {
		drop := make(map[int]bool, len(positions))
		for bit, pos := range positions {
			if mask&(1<<bit) != 0 {
				drop[pos] = true
			}
		}
		rhs := make([]core.Symbol[V], 0, len(r.rhs))
		for i, s := range r.rhs {
			if !drop[i] {
				rhs = append(rhs, s)
			}
		}
		if len(rhs) == 0 {
			continue
		}
		out = append(out, Rule[V]{lhs: r.lhs, rhs: rhs})
	}

	return out
}

func onAnyRHS[V comparable](rules []Rule[V], s core.Symbol[V]) bool {
	for _, r := range rules {
		for _, x := range r.rhs {
			if x == s {
				return true
			}
		}
	}

	return false
}

// rebuild validates a grammar of the same class and options from scratch.
func (g *Grammar[V]) rebuild(nonTerminals core.Set[core.Symbol[V]], start core.Symbol[V], hasStart bool, rules []Rule[V]) (*Grammar[V], error) {
	c := &Grammar[V]{
		class:        g.class,
		nonTerminals: nonTerminals,
		terminals:    g.terminals.Clone(),
		start:        start,
		hasStart:     hasStart,
		index:        make(map[string]struct{}),
		logger:       g.logger,
		fresh:        g.fresh,
	}
	if err := c.checkSymbols(); err != nil {
		return nil, err
	}
	for _, r := range rules {
		if err := c.AddRule(r); err != nil {
			return nil, err
		}
	}

	return c, nil
}
