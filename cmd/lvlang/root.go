package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlang/grammar"
)

// app carries state shared by the subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "lvlang",
		Short: "Formal grammar and finite automaton toolkit",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !a.verbose {
				return nil
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log structural operations to stderr")

	root.AddCommand(
		newGrammarCommand(a),
		newConvertCommand(a),
		newAcceptCommand(a),
	)

	return root
}

// loadGrammar parses the EBNF source named by src and applies --remove-epsilon.
func (a *app) loadGrammar(cmd *cobra.Command, src *sourceFlags) (*grammar.Grammar[string], error) {
	var (
		r    io.Reader
		name = src.file
	)
	if src.file == "-" {
		r, name = cmd.InOrStdin(), "stdin"
	} else {
		f, err := os.Open(src.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	g, err := grammar.ParseEBNF(name, r, src.start, grammar.Class(src.class), grammar.WithLogger(a.logger))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	a.logger.Debug("loaded grammar",
		zap.String("file", name),
		zap.Stringer("class", g.Class()),
		zap.Int("rules", g.NumRules()))
	if src.removeEpsilon {
		if err = g.RemoveEpsilonRules(); err != nil {
			return nil, err
		}
	}

	return g, nil
}
