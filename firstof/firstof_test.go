package firstof_test

import (
	"errors"
	"testing"

	"github.com/hofkit/hof/callable"
	"github.com/hofkit/hof/firstof"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstMatchBeatsBetterMatch(t *testing.T) {
	// The first candidate accepts anything; the second accepts float64
	// exactly. Declaration order wins: a float64 still runs the first.
	f := firstof.New(
		callable.OfI1O1(func(v any) string { return "generic" }),
		callable.OfI1O1(func(v float64) string { return "float" }),
	)

	res, err := f.Invoke(3.0)
	require.NoError(t, err)
	assert.Equal(t, "generic", res)
}

func TestSelectionByArgumentType(t *testing.T) {
	f := firstof.New(
		callable.OfI1O1(func(n int) string { return "int" }),
		callable.OfI1O1(func(v float64) string { return "float" }),
		callable.OfI1O1(func(s string) string { return "string" }),
	)

	for arg, want := range map[any]string{
		3:       "int",
		3.0:     "float",
		"three": "string",
	} {
		res, err := f.Invoke(arg)
		require.NoError(t, err)
		assert.Equal(t, want, res)
	}
}

func TestSelectionIsStable(t *testing.T) {
	f := firstof.New(
		callable.OfI1O1(func(n int) int { return n + 1 }),
		callable.OfI1O1(func(n int) int { return n - 1 }),
	)

	for i := 0; i < 3; i++ {
		res, err := f.Invoke(10)
		require.NoError(t, err)
		assert.Equal(t, 11, res)
	}
}

func TestSelectionByArity(t *testing.T) {
	f := firstof.New(
		callable.OfI2O1(func(a, b int) int { return a + b }),
		callable.OfI1O1(func(a int) int { return -a }),
	)

	res, err := f.Invoke(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, res)

	res, err = f.Invoke(2)
	require.NoError(t, err)
	assert.Equal(t, -2, res)
}

func TestNonInvocabilityPropagates(t *testing.T) {
	f := firstof.New(
		callable.OfI1O1(func(n int) int { return n }),
		callable.OfI1O1(func(s string) string { return s }),
	)

	// Checked through the predicate, not by attempting a call.
	assert.False(t, f.Invocable(1.0))
	assert.True(t, f.Invocable(1))

	_, err := f.Invoke(1.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, callable.ErrNotInvocable))
}

func TestSingleCandidateIsPassThrough(t *testing.T) {
	single := firstof.New(callable.OfI1O1(func(n int) int { return n }))

	assert.True(t, single.Invocable(1))
	assert.False(t, single.Invocable("one"))

	res, err := single.Invoke(4)
	require.NoError(t, err)
	assert.Equal(t, 4, res)
}

func TestNestedComposition(t *testing.T) {
	inner := firstof.New(
		callable.OfI1O1(func(n int) string { return "inner int" }),
		callable.OfI1O1(func(s string) string { return "inner string" }),
	)
	outer := firstof.New(
		callable.OfI1O1(func(f float64) string { return "outer float" }),
		inner,
	)

	res, err := outer.Invoke(1.5)
	require.NoError(t, err)
	assert.Equal(t, "outer float", res)

	res, err = outer.Invoke("s")
	require.NoError(t, err)
	assert.Equal(t, "inner string", res)
}

func TestEmptyCandidateListPanics(t *testing.T) {
	assert.Panics(t, func() { firstof.New() })
}
