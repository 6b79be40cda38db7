// File: types.go
// Role: error taxonomy, grammar Class and Regularity, functional options.

package grammar

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Rule well-formedness. Every error below wraps ErrRuleMalformed.
var (
	// ErrRuleMalformed is the family of rule well-formedness violations.
	ErrRuleMalformed = errors.New("grammar: production rule is malformed")

	// ErrEmptyLHS indicates a rule with no left-hand side.
	ErrEmptyLHS = fmt.Errorf("%w: empty left-hand side", ErrRuleMalformed)

	// ErrEmptyRHS indicates a rule with no right-hand side (use a single epsilon).
	ErrEmptyRHS = fmt.Errorf("%w: empty right-hand side", ErrRuleMalformed)

	// ErrEpsilonInLHS indicates epsilon on the left-hand side.
	ErrEpsilonInLHS = fmt.Errorf("%w: epsilon in left-hand side", ErrRuleMalformed)

	// ErrEpsilonMixed indicates epsilon next to other right-hand-side symbols.
	ErrEpsilonMixed = fmt.Errorf("%w: epsilon mixed with other symbols", ErrRuleMalformed)

	// ErrNoNonTerminalInLHS indicates a left-hand side made of terminals only.
	ErrNoNonTerminalInLHS = fmt.Errorf("%w: left-hand side has no non-terminal", ErrRuleMalformed)
)

// Rule shape, per grammar class. Every error below wraps ErrRuleShape.
var (
	// ErrRuleShape is the family of class-specific shape violations.
	ErrRuleShape = errors.New("grammar: production rule shape violates grammar class")

	// ErrLHSLongerThanRHS indicates a shrinking context-sensitive rule.
	ErrLHSLongerThanRHS = fmt.Errorf("%w: left-hand side longer than right-hand side", ErrRuleShape)

	// ErrStartSymbolOnRHS indicates the start symbol both derives epsilon and
	// appears on some right-hand side of a context-sensitive grammar.
	ErrStartSymbolOnRHS = fmt.Errorf("%w: nullable start symbol appears on a right-hand side", ErrRuleShape)

	// ErrContextMismatch indicates no position of the rule fits αXβ → αyβ.
	ErrContextMismatch = fmt.Errorf("%w: rule does not have the form αXβ → αyβ", ErrRuleShape)

	// ErrLHSNotSingle indicates a context-free rule whose left-hand side is not one symbol.
	ErrLHSNotSingle = fmt.Errorf("%w: left-hand side must be a single non-terminal", ErrRuleShape)

	// ErrRegularLength indicates a regular rule with more than two right-hand-side symbols.
	ErrRegularLength = fmt.Errorf("%w: regular right-hand side must have one or two symbols", ErrRuleShape)

	// ErrRegularUnitRule indicates a regular rule rewriting to a lone non-terminal.
	ErrRegularUnitRule = fmt.Errorf("%w: single right-hand-side symbol must be a terminal", ErrRuleShape)

	// ErrRegularForm indicates a two-symbol right-hand side that is neither aB nor Ba.
	ErrRegularForm = fmt.Errorf("%w: two-symbol right-hand side must pair a terminal and a non-terminal", ErrRuleShape)

	// ErrRegularDirection indicates a rule disagreeing with the fixed regularity.
	ErrRegularDirection = fmt.Errorf("%w: rule disagrees with the grammar's regularity", ErrRuleShape)
)

// Grammar consistency. Every error below wraps ErrInconsistent.
var (
	// ErrInconsistent is the family of symbol-declaration violations.
	ErrInconsistent = errors.New("grammar: inconsistent grammar")

	// ErrSymbolOverlap indicates a symbol declared both terminal and non-terminal.
	ErrSymbolOverlap = fmt.Errorf("%w: terminals and non-terminals overlap", ErrInconsistent)

	// ErrUndeclaredSymbol indicates a rule symbol that is neither terminal nor non-terminal.
	ErrUndeclaredSymbol = fmt.Errorf("%w: undeclared symbol", ErrInconsistent)

	// ErrInvalidStartSymbol indicates a start symbol that is not a declared non-terminal.
	ErrInvalidStartSymbol = fmt.Errorf("%w: start symbol is not a non-terminal", ErrInconsistent)

	// ErrEpsilonDeclared indicates epsilon listed among terminals or non-terminals.
	ErrEpsilonDeclared = fmt.Errorf("%w: epsilon declared as a grammar symbol", ErrInconsistent)
)

var (
	// ErrNotContextFree is returned by operations defined only for
	// context-free and regular grammars.
	ErrNotContextFree = errors.New("grammar: operation requires a context-free grammar")

	// ErrNoFreshSymbol indicates no unused non-terminal could be generated.
	ErrNoFreshSymbol = errors.New("grammar: cannot generate a fresh non-terminal")

	// ErrUnsupportedExpression indicates an EBNF construct with no flat rule form.
	ErrUnsupportedExpression = errors.New("grammar: unsupported EBNF expression")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("grammar: invalid option")

	// ErrUnknownClass indicates an out-of-range Class.
	ErrUnknownClass = errors.New("grammar: unknown grammar class")
)

// Class is the Chomsky-hierarchy level a grammar is validated against.
type Class int

const (
	// RecursivelyEnumerable accepts any well-formed rule.
	RecursivelyEnumerable Class = iota
	// ContextSensitive requires non-shrinking αXβ → αyβ rules.
	ContextSensitive
	// ContextFree requires a single non-terminal on the left.
	ContextFree
	// Regular additionally requires A → a, A → aB (or A → Ba) and A → ε.
	Regular
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case RecursivelyEnumerable:
		return "recursively enumerable"
	case ContextSensitive:
		return "context-sensitive"
	case ContextFree:
		return "context-free"
	case Regular:
		return "regular"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Regularity is the side a regular grammar places its non-terminals on.
// It is fixed by the first two-symbol rule.
type Regularity int

const (
	// Undetermined means no two-symbol rule has been seen yet.
	Undetermined Regularity = iota
	// RightRegular rules have the form A → aB.
	RightRegular
	// LeftRegular rules have the form A → Ba.
	LeftRegular
)

func (r Regularity) String() string {
	switch r {
	case RightRegular:
		return "right-regular"
	case LeftRegular:
		return "left-regular"
	default:
		return "undetermined"
	}
}

// Option configures a Grammar at construction time.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	// Logger receives Debug records for epsilon-rule removal.
	Logger *zap.Logger

	// Fresh, when set, is a func(base V, attempt int) V producing candidate
	// names for new non-terminals. It must match the grammar's value type.
	Fresh any
}

// DefaultOptions returns Options with a no-op logger and the built-in
// fresh-symbol strategy.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger routes debug output to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithFreshSymbol installs the generator used when RemoveEpsilonRules needs a
// new start symbol. attempt counts from 1; the first candidate not already in
// use is taken.
func WithFreshSymbol[V comparable](fn func(base V, attempt int) V) Option {
	return func(o *Options) {
		o.Fresh = fn
	}
}
