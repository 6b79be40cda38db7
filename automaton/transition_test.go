package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlang/automaton"
	"github.com/katalvlaran/lvlang/core"
)

func TestTransitionFunction_AddReportsGrowth(t *testing.T) {
	tf := automaton.NewTransitionFunction[string, string]()
	q0, q1, q2 := core.NewState("q0"), core.NewState("q1"), core.NewState("q2")
	a := core.Labeled("a")

	assert.True(t, tf.Add(q0, a, q1))
	assert.False(t, tf.Add(q0, a, q1))
	assert.True(t, tf.AddSet(q0, a, core.NewSet(q1, q2)))
	assert.False(t, tf.AddSet(q0, a, core.NewSet(q2)))
	assert.False(t, tf.AddSet(q0, a, core.NewSet[core.State[string]]()))
	assert.Equal(t, 1, tf.Len())
	assert.True(t, tf.Targets(q0, a).Equal(core.NewSet(q1, q2)))
}

func TestTransitionFunction_ZeroValueIsUsable(t *testing.T) {
	var tf automaton.TransitionFunction[string, int]
	assert.False(t, tf.Contains(core.NewState(1), core.Labeled("x")))
	assert.True(t, tf.AddValues(1, "x", 2))
	assert.True(t, tf.Contains(core.NewState(1), core.Labeled("x")))
}

func TestTransitionFunction_Remove(t *testing.T) {
	tf := automaton.NewTransitionFunction[string, string]()
	tf.AddValues("q0", "a", "q1")
	tf.AddValues("q0", "a", "q2")
	tf.AddValues("q0", "b", "q0")
	tf.AddValues("q1", "a", "q0")
	q0, q1, q2 := core.NewState("q0"), core.NewState("q1"), core.NewState("q2")
	a := core.Labeled("a")

	// by single target; the last one removes the entry
	require.True(t, tf.RemoveTarget(q0, a, q1))
	assert.False(t, tf.RemoveTarget(q0, a, q1))
	assert.True(t, tf.Contains(q0, a))
	require.True(t, tf.RemoveTarget(q0, a, q2))
	assert.False(t, tf.Contains(q0, a))

	// by pair
	assert.True(t, tf.RemoveValues("q0", "b"))
	assert.False(t, tf.RemoveValues("q0", "b"))

	// by state
	tf.AddValues("q1", "b", "q1")
	assert.Equal(t, 2, tf.RemoveState(q1))
	assert.Equal(t, 0, tf.Len())
}

func TestTransitionFunction_RemoveStateKeepsIncomingEdges(t *testing.T) {
	tf := automaton.NewTransitionFunction[string, string]()
	tf.AddValues("q0", "a", "q1")
	tf.AddValues("q1", "a", "q1")
	assert.Equal(t, 1, tf.RemoveState(core.NewState("q1")))
	assert.True(t, tf.Contains(core.NewState("q0"), core.Labeled("a")))
}

func TestTransitionFunction_HasEpsilonTransitions(t *testing.T) {
	tf := automaton.NewTransitionFunction[string, string]()
	tf.AddValues("q0", "a", "q1")
	assert.False(t, tf.HasEpsilonTransitions())
	tf.AddEpsilon("q0", "q1")
	assert.True(t, tf.HasEpsilonTransitions())
	tf.RemoveTarget(core.NewState("q0"), core.Epsilon[string](), core.NewState("q1"))
	assert.False(t, tf.HasEpsilonTransitions())
}

func TestTransitionFunction_Equal(t *testing.T) {
	x := automaton.NewTransitionFunction[string, string]()
	y := automaton.NewTransitionFunction[string, string]()
	assert.True(t, x.Equal(y))

	x.AddValues("q0", "a", "q1")
	x.AddValues("q0", "a", "q2")
	y.AddValues("q0", "a", "q2")
	assert.False(t, x.Equal(y))
	y.AddValues("q0", "a", "q1")
	assert.True(t, x.Equal(y))
	assert.True(t, y.Equal(x))

	// a removed entry is the same as an absent one
	y.AddValues("q1", "b", "q1")
	y.RemoveValues("q1", "b")
	assert.True(t, x.Equal(y))

	var empty *automaton.TransitionFunction[string, string]
	assert.True(t, empty.Equal(automaton.NewTransitionFunction[string, string]()))
	assert.False(t, empty.Equal(x))
}

func TestTransitionFunction_CloneIsIndependent(t *testing.T) {
	x := automaton.NewTransitionFunction[string, string]()
	x.AddValues("q0", "a", "q1")
	c := x.Clone()
	c.AddValues("q0", "a", "q2")
	assert.Equal(t, 1, x.Targets(core.NewState("q0"), core.Labeled("a")).Len())
	assert.False(t, x.Equal(c))
}

func TestTransitionFunction_String(t *testing.T) {
	tf := automaton.NewTransitionFunction[string, string]()
	tf.AddValues("q1", "b", "q0")
	tf.AddValues("q0", "a", "q2")
	tf.AddValues("q0", "a", "q1")
	tf.AddEpsilon("q0", "q1")

	want := "(q0, a) -> {q1, q2}\n" +
		"(q0, ε) -> {q1}\n" +
		"(q1, b) -> {q0}\n"
	assert.Equal(t, want, tf.String())
}
