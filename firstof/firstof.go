// Package firstof combines an ordered list of callables into one. An
// invocation runs the first candidate, in declaration order, whose
// invocability predicate accepts the argument list.
//
// Declaration order is the whole contract: a later candidate is never
// preferred for being a "better" match. Given the candidates
//
//	firstof.New(
//		callable.OfI1O1(func(v any) string { ... }),
//		callable.OfI1O1(func(f float64) string { ... }),
//	)
//
// a float64 argument always runs the first candidate, because an any
// parameter accepts everything. Best-match schemes make composition order
// irrelevant and therefore ambiguous when generic alternatives overlap;
// first-match keeps the choice explicit and reproducible.
package firstof

import (
	"github.com/hofkit/hof/callable"
	"github.com/hofkit/hof/internal/pack"
)

// kernel is the binary primitive: try the first member, fall through to the
// second. N-ary adaptors are right-nested kernels.
type kernel struct {
	fs pack.Pair[callable.Callable, callable.Callable]
}

func (k kernel) Invocable(args ...any) bool {
	return k.fs.First().Invocable(args...) || k.fs.Second().Invocable(args...)
}

func (k kernel) Invoke(args ...any) (any, error) {
	if k.fs.First().Invocable(args...) {
		return k.fs.First().Invoke(args...)
	}
	if k.fs.Second().Invocable(args...) {
		return k.fs.Second().Invoke(args...)
	}
	return nil, callable.NotInvocableError("firstof", args)
}

// Candidates returns the candidate list in declaration order, flattening
// nested kernels. Diagnostic wrappers use it to report what was tried.
func (k kernel) Candidates() []callable.Callable {
	first := k.fs.First()
	rest := k.fs.Second()
	if m, ok := rest.(interface{ Candidates() []callable.Callable }); ok {
		return append([]callable.Callable{first}, m.Candidates()...)
	}
	return []callable.Callable{first, rest}
}

// New combines candidates into a first-match callable. A single candidate is
// returned as-is (pass-through). Panics when called with no candidates:
// an empty alternative set is a composition-site programming error.
func New(fs ...callable.Callable) callable.Callable {
	switch len(fs) {
	case 0:
		panic("firstof: New requires at least one candidate")
	case 1:
		return fs[0]
	default:
		return kernel{fs: pack.MakePair(fs[0], New(fs[1:]...))}
	}
}
