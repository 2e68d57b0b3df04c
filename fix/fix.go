// Package fix derives self-referential callables: given a generator whose
// leading parameter stands for "the overall callable itself", it produces a
// callable that re-supplies itself on every invocation, so anonymous
// closures can recurse without a named function.
package fix

import (
	"github.com/hofkit/hof/callable"
)

type adaptor struct {
	g callable.Callable
}

// New turns a generator g, whose first parameter receives the derived
// callable, into a callable h with h(args...) equivalent to g(h, args...).
// The generator typically declares its first parameter as
// callable.Callable; each recursive step is plain stack recursion, so the
// adaptor carries no per-call state.
func New(g callable.Callable) callable.Callable {
	if g == nil {
		panic("fix: New requires a generator")
	}
	return adaptor{g: g}
}

func (h adaptor) Invocable(args ...any) bool {
	return h.g.Invocable(h.withSelf(args)...)
}

func (h adaptor) Invoke(args ...any) (any, error) {
	return h.g.Invoke(h.withSelf(args)...)
}

func (h adaptor) withSelf(args []any) []any {
	joined := make([]any, 0, len(args)+1)
	joined = append(joined, callable.Callable(h))
	return append(joined, args...)
}
