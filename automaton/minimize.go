package automaton

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlang/core"
)

// Minimize replaces a DFA with its minimal equivalent (Moore refinement).
//
// Steps:
//  1. RemoveUnreachableStates on a working copy.
//  2. Start from the partition {final, non-final}.
//  3. Split every block by the tuple of blocks its members reach on each
//     symbol, until the number of blocks stops growing.
//  4. Rebuild with one state per block, represented by its smallest member
//     (core.Compare order), and validate as a DFA.
//
// The receiver is replaced only after the rebuilt automaton validates.
//
// Errors:
//   - ErrNotDFA for any other class.
//   - Any structural error from the rebuild (indicates a broken input DFA).
//
// Complexity: O(V² · |Σ|) in the worst case.
func (a *Automaton[S, St]) Minimize() error {
	if a.class != DFA {
		return fmt.Errorf("%w: got %s", ErrNotDFA, a.class)
	}
	work := a.Clone()
	if err := work.RemoveUnreachableStates(); err != nil {
		return err
	}

	states := work.states.Sorted()
	symbols := work.alphabet.Sorted()
	block := make(map[core.State[St]]int, len(states))
	for _, st := range states {
		if work.finals.Has(st) {
			block[st] = 1
		} else {
			block[st] = 0
		}
	}
	count := renumber(states, block, func(st core.State[St]) string {
		return fmt.Sprint(block[st])
	})

	for {
		prev := make(map[core.State[St]]int, len(block))
		for st, b := range block {
			prev[st] = b
		}
		next := renumber(states, block, func(st core.State[St]) string {
			var sig strings.Builder
			fmt.Fprintf(&sig, "%d", prev[st])
			for _, sym := range symbols {
				to, _ := work.delta.only(st, sym)
				fmt.Fprintf(&sig, ",%d", prev[to])
			}
			return sig.String()
		})
		if next == count {
			break
		}
		count = next
	}

	// smallest member of each block
	reps := make([]core.State[St], count)
	assigned := make([]bool, count)
	for _, st := range states {
		if b := block[st]; !assigned[b] {
			reps[b], assigned[b] = st, true
		}
	}

	delta := NewTransitionFunction[S, St]()
	finals := make([]core.State[St], 0, count)
	for _, rep := range reps {
		for _, sym := range symbols {
			to, _ := work.delta.only(rep, sym)
			delta.Add(rep, sym, reps[block[to]])
		}
		if work.finals.Has(rep) {
			finals = append(finals, rep)
		}
	}

	candidate, err := New(DFA, symbols, reps, reps[block[work.initial]], delta, finals, WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.logger.Debug("minimized DFA",
		zap.Int("before", a.states.Len()),
		zap.Int("after", candidate.states.Len()))
	*a = *candidate

	return nil
}

// renumber assigns block ids 0..n-1 by first appearance of each signature
// along states, writes them into block and returns n.
func renumber[St comparable](states []core.State[St], block map[core.State[St]]int, signature func(core.State[St]) string) int {
	ids := make(map[string]int)
	next := make(map[core.State[St]]int, len(states))
	for _, st := range states {
		sig := signature(st)
		id, ok := ids[sig]
		if !ok {
			id = len(ids)
			ids[sig] = id
		}
		next[st] = id
	}
	for st, id := range next {
		block[st] = id
	}

	return len(ids)
}
