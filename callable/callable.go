package callable

import (
	"fmt"
	"strings"

	"github.com/hofkit/hof/shared/helper"
)

// Callable is a value invocable with an ordered, heterogeneous argument
// list. Implementations must be immutable: Invocable and Invoke may be
// called any number of times, concurrently, with different argument lists.
type Callable interface {
	// Invocable reports whether Invoke with exactly these arguments would
	// be well-formed. It never invokes anything and never panics on a
	// mismatched signature.
	Invocable(args ...any) bool

	// Invoke applies the callable to the arguments. A signature mismatch
	// yields an error wrapping ErrNotInvocable; any other error comes from
	// the wrapped function itself and passes through unchanged.
	Invoke(args ...any) (any, error)
}

// ErrNotInvocable marks the soft-failure error kind: the callable exists but
// does not accept the supplied argument list. Check with errors.Is.
var ErrNotInvocable = fmt.Errorf("not invocable with the supplied arguments")

// NotInvocableError builds the canonical non-invocability error for a named
// entry point, recording the dynamic types that were supplied.
func NotInvocableError(name string, args []any) error {
	return fmt.Errorf("%w: %s(%s)", ErrNotInvocable, name, TypesOf(args...))
}

// TypesOf renders the dynamic types of an argument list for diagnostics.
func TypesOf(args ...any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%T", a)
	}
	return strings.Join(parts, ", ")
}

// As invokes c and asserts the result to T.
func As[T any](c Callable, args ...any) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return c.Invoke(args...)
	})
}

// MustAs is the panic-on-failure variant of As. Use in compositions where
// the result type is guaranteed, e.g. inside a fixed-point generator.
func MustAs[T any](c Callable, args ...any) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return c.Invoke(args...)
	})
}

// cast adapts one caller-supplied argument to a parameter type. A Ref
// wrapper resolves before anything else so the parameter receives the
// referent, never the wrapper: the pointer form first, then a value copy.
// A parameter typed as the wrapper itself still matches through the final
// assertion.
func cast[T any](arg any) (v T, ok bool) {
	if r, isRef := arg.(refWrapper); isRef {
		if v, ok = r.refTarget().(T); ok {
			return
		}
		if v, ok = r.refValue().(T); ok {
			return
		}
	}
	v, ok = arg.(T)
	return
}
