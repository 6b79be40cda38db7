package grammar

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/ebnf"

	"github.com/katalvlaran/lvlang/core"
)

// ParseEBNF reads a grammar written in EBNF (the dialect used to describe Go
// syntax, parsed by golang.org/x/exp/ebnf) and flattens it into rules of the
// given class.
//
// Production names become non-terminals and quoted tokens become terminals.
// Sequences, alternatives, groups and options are multiplied out into plain
// rules. Epsilon is written as the empty token "", or as an empty production
// body when the whole production is epsilon (E = .). An empty alternative
// inside a body (S = "a" | .) is a syntax error of the EBNF dialect.
// Repetitions and ranges have no flat form and are rejected.
//
//	S = "a" B | "" .
//	B = "b" S .
//
// gives S → a B, S → ε, B → b S.
//
// Errors: parse and ebnf.Verify errors as returned by the ebnf package,
// ErrUnsupportedExpression, and any grammar construction error.
func ParseEBNF(filename string, src io.Reader, start string, class Class, opts ...Option) (*Grammar[string], error) {
	prods, err := ebnf.Parse(filename, src)
	if err != nil {
		return nil, err
	}
	if err = ebnf.Verify(prods, start); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(prods))
	for name := range prods {
		names = append(names, name)
	}
	sort.Strings(names)

	terminals := core.NewSet[core.Symbol[string]]()
	var rules []Rule[string]
	for _, name := range names {
		alternatives, err := flatten(prods[name].Expr, terminals)
		if err != nil {
			return nil, fmt.Errorf("production %s: %w", name, err)
		}
		lhs := []core.Symbol[string]{core.Labeled(name)}
		for _, rhs := range alternatives {
			if len(rhs) == 0 {
				rhs = []core.Symbol[string]{core.Epsilon[string]()}
			}
			r, err := NewRule(lhs, rhs)
			if err != nil {
				return nil, fmt.Errorf("production %s: %w", name, err)
			}
			rules = append(rules, r)
		}
	}

	st := core.Labeled(start)

	return New(class, core.Symbols(names...), terminals.Sorted(), &st, rules, opts...)
}

// flatten returns every symbol sequence expr can produce, recording tokens
// in terminals.
func flatten(expr ebnf.Expression, terminals core.Set[core.Symbol[string]]) ([][]core.Symbol[string], error) {
	switch x := expr.(type) {
	case nil:
		return [][]core.Symbol[string]{nil}, nil
	case *ebnf.Name:
		return [][]core.Symbol[string]{{core.Labeled(x.String)}}, nil
	case *ebnf.Token:
		if x.String == "" {
			return [][]core.Symbol[string]{nil}, nil
		}
		sym := core.Labeled(x.String)
		terminals.Add(sym)
		return [][]core.Symbol[string]{{sym}}, nil
	case *ebnf.Group:
		return flatten(x.Body, terminals)
	case *ebnf.Option:
		body, err := flatten(x.Body, terminals)
		if err != nil {
			return nil, err
		}
		return append(body, nil), nil
	case ebnf.Alternative:
		var out [][]core.Symbol[string]
		for _, alt := range x {
			seqs, err := flatten(alt, terminals)
			if err != nil {
				return nil, err
			}
			out = append(out, seqs...)
		}
		return out, nil
	case ebnf.Sequence:
		out := [][]core.Symbol[string]{nil}
		for _, term := range x {
			seqs, err := flatten(term, terminals)
			if err != nil {
				return nil, err
			}
			out = product(out, seqs)
		}
		return out, nil
	case *ebnf.Repetition:
		return nil, fmt.Errorf("%w: repetition at %v", ErrUnsupportedExpression, x.Pos())
	case *ebnf.Range:
		return nil, fmt.Errorf("%w: range at %v", ErrUnsupportedExpression, x.Pos())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedExpression, expr)
	}
}

// product concatenates every prefix with every suffix.
func product(prefixes, suffixes [][]core.Symbol[string]) [][]core.Symbol[string] {
	out := make([][]core.Symbol[string], 0, len(prefixes)*len(suffixes))
	for _, p := range prefixes {
		for _, s := range suffixes {
			seq := make([]core.Symbol[string], 0, len(p)+len(s))
			seq = append(append(seq, p...), s...)
			out = append(out, seq)
		}
	}

	return out
}
