// Package lazy defers invocation in two phases. Bind captures a callable
// together with a list of bound expressions and performs no call; applying
// the bound value to a later argument pack substitutes each expression and
// then runs the callable:
//
//   - a placeholder (Arg(n), or the P1..P4 singletons) substitutes the n-th
//     later-supplied argument;
//   - a callable.Ref resolves as in a direct invocation: the pointer itself
//     when the parameter accepts it, so mutations reach the original,
//     otherwise a copy of the referent read at application time;
//   - a nested Bind result is applied first, with the same later arguments,
//     and contributes its result;
//   - anything else contributes itself, as originally bound.
//
// A bound value is immutable and restartable: it may be applied any number
// of times with different argument packs, and concurrently. Whatever state
// changes between applications belongs to the wrapped callable.
//
//	sum := callable.OfI2O1(func(a, b int) int { return a + 10*b })
//	b := lazy.Bind(sum, lazy.P1, lazy.P2)
//	b.Invoke(3, 4) // 43
//	b.Invoke(5, 6) // 65
package lazy

import (
	"fmt"

	"github.com/hofkit/hof/callable"
	"github.com/hofkit/hof/internal/pack"
)

// Placeholder marks a position in the later-supplied argument pack,
// 1-based.
type Placeholder int

// Arg returns the placeholder substituting the n-th later-supplied
// argument. Panics for n < 1: a non-positive index is a composition-site
// programming error, not a soft failure.
func Arg(n int) Placeholder {
	if n < 1 {
		panic("lazy: placeholder index must be >= 1")
	}
	return Placeholder(n)
}

// Shared placeholder values, never mutated after initialization.
var (
	P1 = Arg(1)
	P2 = Arg(2)
	P3 = Arg(3)
	P4 = Arg(4)
)

type bound struct {
	fe pack.Pair[callable.Callable, pack.Pack]
}

// Bind captures f and the bound expressions by value. Nothing is invoked
// until the returned callable is applied; extra later-supplied arguments
// beyond the highest placeholder index are permitted and ignored.
func Bind(f callable.Callable, exprs ...any) callable.Callable {
	if f == nil {
		panic("lazy: Bind requires a callable")
	}
	return bound{fe: pack.MakePair(f, pack.New(exprs...))}
}

// A transformer resolves one kind of bound expression against the later
// argument pack. Transformers are tried in declaration order and the first
// whose matches predicate holds performs the substitution — the same
// first-match discipline the selection adaptor applies to callables.
type transformer struct {
	matches func(expr any) bool
	apply   func(expr any, later []any) (any, error)
}

// Assigned in init: the nested-bind case reaches Invoke, and through it
// substitute, so a package-level initializer would form an initialization
// cycle.
var transformers []transformer

func init() {
	transformers = []transformer{
		{ // placeholder: the n-th later argument, identity preserved
			matches: func(expr any) bool {
				_, ok := expr.(Placeholder)
				return ok
			},
			apply: func(expr any, later []any) (any, error) {
				idx := int(expr.(Placeholder))
				if idx > len(later) {
					return nil, fmt.Errorf("%w: placeholder %d with %d later arguments",
						callable.ErrNotInvocable, idx, len(later))
				}
				return later[idx-1], nil
			},
		},
		{ // reference wrapper: forwarded intact, resolved at matching
			matches: func(expr any) bool {
				_, ok := callable.Unref(expr)
				return ok
			},
			apply: func(expr any, _ []any) (any, error) {
				return expr, nil
			},
		},
		{ // nested bind: applied with the same later arguments
			matches: func(expr any) bool {
				_, ok := expr.(bound)
				return ok
			},
			apply: func(expr any, later []any) (any, error) {
				return expr.(bound).Invoke(later...)
			},
		},
		{ // literal: itself, as originally bound
			matches: func(any) bool { return true },
			apply:   func(expr any, _ []any) (any, error) { return expr, nil },
		},
	}
}

func substitute(expr any, later []any) (any, error) {
	for _, t := range transformers {
		if t.matches(expr) {
			return t.apply(expr, later)
		}
	}
	return expr, nil
}

// Invocable checks as much as can be known without evaluating anything:
// every placeholder must be in range of the later pack, every nested bind
// must itself be invocable with it, and — when no nested bind is present —
// the target callable must accept the fully substituted list. A nested
// bind's result is only known by evaluating it, so in that case the final
// signature check is deferred to application.
func (b bound) Invocable(later ...any) bool {
	exprs := b.fe.Second()
	resolved := make([]any, exprs.Len())
	complete := true
	for i := 0; i < exprs.Len(); i++ {
		switch e := exprs.At(i).(type) {
		case bound:
			if !e.Invocable(later...) {
				return false
			}
			complete = false
		default:
			v, err := substitute(e, later)
			if err != nil {
				return false
			}
			resolved[i] = v
		}
	}
	if !complete {
		return true
	}
	return b.fe.First().Invocable(resolved...)
}

// Invoke substitutes every bound expression in order against the later
// argument pack, evaluating nested binds exactly once, then applies the
// target callable to the substituted list.
func (b bound) Invoke(later ...any) (any, error) {
	resolved, err := b.fe.Second().Map(func(_ int, expr any) (any, error) {
		return substitute(expr, later)
	})
	if err != nil {
		return nil, err
	}
	return b.fe.First().Invoke(resolved...)
}
