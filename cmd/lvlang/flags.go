package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlang/grammar"
)

// classFlag is a grammar.Class settable by name on the command line.
type classFlag grammar.Class

var _ pflag.Value = (*classFlag)(nil)

var classNames = map[string]grammar.Class{
	"recursively-enumerable": grammar.RecursivelyEnumerable,
	"re":                     grammar.RecursivelyEnumerable,
	"context-sensitive":      grammar.ContextSensitive,
	"cs":                     grammar.ContextSensitive,
	"context-free":           grammar.ContextFree,
	"cf":                     grammar.ContextFree,
	"regular":                grammar.Regular,
}

func (c *classFlag) String() string {
	return strings.ReplaceAll(grammar.Class(*c).String(), " ", "-")
}

func (c *classFlag) Set(s string) error {
	class, ok := classNames[strings.ToLower(s)]
	if !ok {
		return fmt.Errorf("unknown grammar class %q (want regular, context-free, context-sensitive or recursively-enumerable)", s)
	}
	*c = classFlag(class)

	return nil
}

func (c *classFlag) Type() string { return "class" }

// sourceFlags are shared by every subcommand that reads a grammar.
type sourceFlags struct {
	file          string
	start         string
	class         classFlag
	removeEpsilon bool
}

func (s *sourceFlags) register(fs *pflag.FlagSet, class grammar.Class) {
	s.class = classFlag(class)
	fs.StringVarP(&s.file, "file", "f", "-", "EBNF grammar file, - for stdin")
	fs.StringVarP(&s.start, "start", "s", "S", "start production")
	fs.Var(&s.class, "class", "grammar class: regular, context-free, context-sensitive, recursively-enumerable")
	fs.BoolVar(&s.removeEpsilon, "remove-epsilon", false, "remove epsilon rules before anything else")
}
