package fix_test

import (
	"testing"

	"github.com/hofkit/hof/callable"
	"github.com/hofkit/hof/firstof"
	"github.com/hofkit/hof/fix"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedFactorial(t *testing.T) {
	fact := fix.I1O1(func(self func(int) int, n int) int {
		if n == 0 {
			return 1
		}
		return n * self(n-1)
	})

	assert.Equal(t, 120, fact(5))
	assert.Equal(t, 1, fact(0))
}

func TestTypedGCD(t *testing.T) {
	gcd := fix.I2O1(func(self func(int, int) int, a, b int) int {
		if b == 0 {
			return a
		}
		return self(b, a%b)
	})

	assert.Equal(t, 6, gcd(54, 24))
}

func TestDynamicFactorial(t *testing.T) {
	fact := fix.New(callable.OfI2O1(func(self callable.Callable, n int) int {
		if n == 0 {
			return 1
		}
		return n * callable.MustAs[int](self, n-1)
	}))

	res, err := fact.Invoke(5)
	require.NoError(t, err)
	assert.Equal(t, 120, res)

	res, err = fact.Invoke(0)
	require.NoError(t, err)
	assert.Equal(t, 1, res)
}

func TestFixOverSelection(t *testing.T) {
	// The generator is a first-match composite whose branches recurse into
	// the leading self parameter across argument types: a string argument
	// recurses as its length, an int argument counts down to zero.
	g := firstof.New(
		callable.OfI2O1(func(self callable.Callable, n int) int {
			if n <= 0 {
				return 0
			}
			return 1 + callable.MustAs[int](self, n-1)
		}),
		callable.OfI2O1(func(self callable.Callable, s string) int {
			return callable.MustAs[int](self, len(s))
		}),
	)
	steps := fix.New(g)

	res, err := steps.Invoke("four")
	require.NoError(t, err)
	assert.Equal(t, 4, res)

	assert.True(t, steps.Invocable(3))
	assert.True(t, steps.Invocable("abc"))
	assert.False(t, steps.Invocable(3.5))
}

func TestNonInvocableGeneratorPropagates(t *testing.T) {
	fact := fix.New(callable.OfI2O1(func(self callable.Callable, n int) int {
		return n
	}))

	assert.False(t, fact.Invocable("not an int"))
	assert.False(t, fact.Invocable())
}

func TestReentrantSharedInstance(t *testing.T) {
	fib := fix.I1O1(func(self func(int) int, n int) int {
		if n < 2 {
			return n
		}
		return self(n-1) + self(n-2)
	})

	done := make(chan int, 2)
	go func() { done <- fib(10) }()
	go func() { done <- fib(10) }()

	assert.Equal(t, 55, <-done)
	assert.Equal(t, 55, <-done)
}
