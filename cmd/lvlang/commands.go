package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlang/automaton"
	"github.com/katalvlaran/lvlang/convert"
	"github.com/katalvlaran/lvlang/core"
	"github.com/katalvlaran/lvlang/grammar"
	"github.com/katalvlaran/lvlang/render"
)

func newGrammarCommand(a *app) *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Load a grammar, validate it against its class and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrammar(cmd, &src)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Class: %s\n", g.Class())
			if g.Class() == grammar.Regular {
				fmt.Fprintf(out, "Regularity: %s\n", g.Regularity())
			}
			fmt.Fprintf(out, "Non-terminals: %s\n", core.NewSet(g.NonTerminals()...))
			fmt.Fprintf(out, "Terminals: %s\n", core.NewSet(g.Terminals()...))
			if nullable, err := g.NonTerminalsGeneratingEpsilon(); err == nil {
				fmt.Fprintf(out, "Nullable: %s\n", nullable)
			}
			render.Grammar(out, g)
			return nil
		},
	}
	src.register(cmd.Flags(), grammar.ContextFree)

	return cmd
}

// pipeline is the automaton half of convert and accept.
type pipeline struct {
	src      sourceFlags
	dfa      bool
	minimize bool
}

func (p *pipeline) register(cmd *cobra.Command) {
	p.src.register(cmd.Flags(), grammar.Regular)
	cmd.Flags().BoolVar(&p.dfa, "dfa", false, "determinize by subset construction")
	cmd.Flags().BoolVar(&p.minimize, "minimize", false, "minimize the DFA (implies --dfa)")
}

// build loads the grammar and returns its NFA, or the (minimal) DFA.
func (p *pipeline) build(cmd *cobra.Command, a *app) (*automaton.Automaton[string, string], error) {
	if grammar.Class(p.src.class) != grammar.Regular {
		return nil, fmt.Errorf("%w: --class must be regular", convert.ErrNotRegular)
	}
	g, err := a.loadGrammar(cmd, &p.src)
	if err != nil {
		return nil, err
	}
	nfa, err := convert.FromRegularGrammar(g, automaton.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	if !p.dfa && !p.minimize {
		return nfa, nil
	}
	dfa, err := nfa.ToDFA()
	if err != nil {
		return nil, err
	}
	if p.minimize {
		if err = dfa.Minimize(); err != nil {
			return nil, err
		}
	}

	return dfa, nil
}

func newConvertCommand(a *app) *cobra.Command {
	var (
		p   pipeline
		dot bool
	)
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a regular grammar to an automaton and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := p.build(cmd, a)
			if err != nil {
				return err
			}
			if dot {
				fmt.Fprint(cmd.OutOrStdout(), render.DOT(m))
				return nil
			}
			render.TransitionTable(cmd.OutOrStdout(), m)
			return nil
		},
	}
	p.register(cmd)
	cmd.Flags().BoolVar(&dot, "dot", false, "print Graphviz DOT instead of a table")

	return cmd
}

func newAcceptCommand(a *app) *cobra.Command {
	var (
		p   pipeline
		sep string
	)
	cmd := &cobra.Command{
		Use:   "accept WORD...",
		Short: "Run the automaton of a regular grammar on each word",
		Long: "Run the automaton of a regular grammar on each word. Words are split into\n" +
			"terminals by --sep, or into single characters when --sep is empty.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := p.build(cmd, a)
			if err != nil {
				return err
			}
			var data [][]string
			for _, w := range args {
				ok, err := m.AcceptsValues(splitWord(w, sep)...)
				if err != nil {
					return fmt.Errorf("word %q: %w", w, err)
				}
				data = append(data, []string{fmt.Sprintf("%q", w), fmt.Sprint(ok)})
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"WORD", "ACCEPTED"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetBorder(false)
			table.AppendBulk(data)
			table.Render()
			return nil
		},
	}
	p.register(cmd)
	cmd.Flags().StringVar(&sep, "sep", "", "terminal separator inside a word")

	return cmd
}

func splitWord(w, sep string) []string {
	if w == "" {
		return nil
	}
	if sep != "" {
		return strings.Split(w, sep)
	}

	return strings.Split(w, "")
}
