// Package decorate attaches cross-cutting behavior to a callable without
// modifying it. A decoration carries auxiliary data and a decorator; applied
// to a target callable it yields a new callable whose every invocation runs
// the decorator with (data, target, arguments). The decorator alone decides
// whether, how, and how often the target runs.
package decorate

import (
	"github.com/hofkit/hof/callable"
	"github.com/hofkit/hof/internal/pack"
)

// Decorator receives the decoration data, the wrapped callable, and the
// original arguments, exactly once per invocation.
type Decorator func(data any, f callable.Callable, args ...any) (any, error)

type invoker struct {
	ft pack.Pair[callable.Callable, any]
	d  Decorator
}

// Invocable delegates to the target, so a pass-through decorator preserves
// the target's callability results. A decorator that widens or narrows the
// accepted signatures should be wrapped in its own Callable instead.
func (iv invoker) Invocable(args ...any) bool {
	return iv.ft.First().Invocable(args...)
}

func (iv invoker) Invoke(args ...any) (any, error) {
	return iv.d(iv.ft.Second(), iv.ft.First(), args...)
}

// New returns an adaptor factory: applied to a target callable it yields the
// decorated callable, which remains composable like any other. No
// constraint is placed on the target.
func New(data any, d Decorator) func(callable.Callable) callable.Callable {
	if d == nil {
		panic("decorate: New requires a decorator")
	}
	return func(f callable.Callable) callable.Callable {
		if f == nil {
			panic("decorate: target must not be nil")
		}
		return invoker{ft: pack.MakePair(f, data), d: d}
	}
}
