package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlang/automaton"
	"github.com/katalvlaran/lvlang/core"
)

func TestToNFA_PreservesLanguage(t *testing.T) {
	for name, a := range map[string]*automaton.Automaton[rune, string]{
		"eNFA1": epsilonNFA1(t),
		"eNFA2": epsilonNFA2(t),
	} {
		t.Run(name, func(t *testing.T) {
			nfa, err := a.ToNFA()
			require.NoError(t, err)
			assert.Equal(t, automaton.NFA, nfa.Class())
			assert.False(t, nfa.TransitionFunction().HasEpsilonTransitions())
			assert.Equal(t, a.States(), nfa.States())
			assert.Equal(t, a.Alphabet(), nfa.Alphabet())
			sameLanguage(t, a, nfa, []rune("01"), 7)
		})
	}
}

func TestToNFA_FinalStatesFollowEpsilon(t *testing.T) {
	nfa, err := epsilonNFA2(t).ToNFA()
	require.NoError(t, err)
	// q0 reaches the final q1 over ε
	assert.Equal(t, core.States("q0", "q1"), nfa.FinalStates())
}

func TestToNFA_OnEpsilonFreeInput(t *testing.T) {
	a := startsWith1EndsWith0(t)
	nfa, err := a.ToNFA()
	require.NoError(t, err)
	assert.Equal(t, automaton.NFA, nfa.Class())
	assert.True(t, a.TransitionFunction().Equal(nfa.TransitionFunction()))
	assert.Equal(t, automaton.DFA, a.Class())
}

func TestToDFA_SubsetNames(t *testing.T) {
	// (a|b)*ab
	a := build(t, automaton.NFA, []rune("ab"), []string{"q0", "q1", "q2"}, "q0", []edge{
		{"q0", 'a', "q0"}, {"q0", 'a', "q1"}, {"q0", 'b', "q0"}, {"q1", 'b', "q2"},
	}, []string{"q2"})
	dfa, err := a.ToDFA()
	require.NoError(t, err)

	assert.Equal(t, automaton.DFA, dfa.Class())
	assert.ElementsMatch(t, core.States("{q0}", "{q0,q1}", "{q0,q2}"), dfa.States())
	assert.Equal(t, core.NewState("{q0}"), dfa.Initial())
	assert.Equal(t, core.States("{q0,q2}"), dfa.FinalStates())
	sameLanguage(t, a, dfa, []rune("ab"), 7)
}

func TestToDFA_AddsTrapState(t *testing.T) {
	a := build(t, automaton.NFA, []rune("ab"), []string{"q0", "q1"}, "q0", []edge{
		{"q0", 'a', "q1"},
	}, []string{"q1"})
	dfa, err := a.ToDFA()
	require.NoError(t, err)

	trap := core.NewState(automaton.TrapState)
	assert.True(t, dfa.HasState(trap))
	assert.False(t, dfa.IsFinal(trap))
	assert.Equal(t, 3, dfa.NumStates())
	for _, sym := range dfa.Alphabet() {
		assert.True(t, dfa.TransitionFunction().Targets(trap, sym).Equal(core.NewSet(trap)))
	}
	sameLanguage(t, a, dfa, []rune("ab"), 5)
}

func TestToDFA_FromEpsilonNFA(t *testing.T) {
	for name, a := range map[string]*automaton.Automaton[rune, string]{
		"eNFA1": epsilonNFA1(t),
		"eNFA2": epsilonNFA2(t),
	} {
		t.Run(name, func(t *testing.T) {
			dfa, err := a.ToDFA()
			require.NoError(t, err)
			sameLanguage(t, a, dfa, []rune("01"), 7)
		})
	}
}

func TestToDFA_EmptyAlphabet(t *testing.T) {
	a := build(t, automaton.NFA, nil, []string{"q0"}, "q0", nil, []string{"q0"})
	dfa, err := a.ToDFA()
	require.NoError(t, err)
	assert.Equal(t, core.States("{q0}"), dfa.States())
	ok, err := dfa.Accepts(nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestToDFA_DistinguishesLookalikeStates(t *testing.T) {
	// "1" and 1 render alike; their subsets must stay separate DFA states
	delta := automaton.NewTransitionFunction[string, any]()
	delta.Add(core.NewState[any]("1"), core.Labeled("a"), core.NewState[any](1))
	a, err := automaton.New(automaton.NFA, core.Symbols("a"), core.States[any]("1", 1), core.NewState[any]("1"), delta, core.States[any](1))
	require.NoError(t, err)

	dfa, err := a.ToDFA()
	require.NoError(t, err)
	assert.ElementsMatch(t, core.States("{1}", "{1}#1", automaton.TrapState), dfa.States())
	ok, err := dfa.AcceptsValues("a")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestToDFA_TrapNameIsReserved(t *testing.T) {
	// the singleton subset of state "" also renders as {}
	a := build(t, automaton.NFA, []rune("a"), []string{"", "x"}, "", []edge{
		{"", 'a', "x"},
	}, []string{"x"})
	dfa, err := a.ToDFA()
	require.NoError(t, err)

	assert.ElementsMatch(t, core.States("{}#1", "{x}", automaton.TrapState), dfa.States())
	assert.Equal(t, core.NewState("{}#1"), dfa.Initial())
	trap := core.NewState(automaton.TrapState)
	assert.False(t, dfa.IsFinal(trap))
	assert.True(t, dfa.TransitionFunction().Targets(trap, core.Labeled('a')).Equal(core.NewSet(trap)))
	sameLanguage(t, a, dfa, []rune("a"), 4)
}

func TestMinimize_MergesEquivalentStates(t *testing.T) {
	// q4 duplicates q3, u is unreachable
	a := build(t, automaton.DFA, []rune("01"), []string{"q1", "q2", "q3", "q4", "trash", "u"}, "q1", []edge{
		{"q1", '1', "q2"}, {"q1", '0', "trash"},
		{"trash", '0', "trash"}, {"trash", '1', "trash"},
		{"q2", '0', "q3"}, {"q2", '1', "q2"},
		{"q3", '0', "q4"}, {"q3", '1', "q2"},
		{"q4", '0', "q3"}, {"q4", '1', "q2"},
		{"u", '0', "q4"}, {"u", '1', "u"},
	}, []string{"q3", "q4"})
	original := a.Clone()

	require.NoError(t, a.Minimize())
	assert.Equal(t, core.States("q1", "q2", "q3", "trash"), a.States())
	assert.Equal(t, core.States("q3"), a.FinalStates())
	assert.Equal(t, core.NewState("q1"), a.Initial())
	assert.Equal(t, automaton.DFA, a.Class())
	sameLanguage(t, original, a, []rune("01"), 8)
}

func TestMinimize_AlreadyMinimal(t *testing.T) {
	a := startsWith1EndsWith0(t)
	original := a.Clone()
	require.NoError(t, a.Minimize())
	assert.Equal(t, original.NumStates(), a.NumStates())
	assert.True(t, original.TransitionFunction().Equal(a.TransitionFunction()))
}

func TestMinimize_AllFinal(t *testing.T) {
	a := build(t, automaton.DFA, []rune("ab"), []string{"x", "y"}, "x", []edge{
		{"x", 'a', "y"}, {"x", 'b', "x"}, {"y", 'a', "x"}, {"y", 'b', "y"},
	}, []string{"x", "y"})
	require.NoError(t, a.Minimize())
	assert.Equal(t, core.States("x"), a.States())
	ok, err := automaton.AcceptsString(a, "abba")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMinimize_AfterSubsetConstruction(t *testing.T) {
	for name, a := range map[string]*automaton.Automaton[rune, string]{
		"eNFA1": epsilonNFA1(t),
		"eNFA2": epsilonNFA2(t),
	} {
		t.Run(name, func(t *testing.T) {
			dfa, err := a.ToDFA()
			require.NoError(t, err)
			n := dfa.NumStates()
			require.NoError(t, dfa.Minimize())
			assert.LessOrEqual(t, dfa.NumStates(), n)
			sameLanguage(t, a, dfa, []rune("01"), 7)
		})
	}
}

func TestMinimize_RequiresDFA(t *testing.T) {
	err := epsilonNFA1(t).Minimize()
	assert.ErrorIs(t, err, automaton.ErrNotDFA)
}
