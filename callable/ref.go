package callable

// Ref is a reference-preserving wrapper. A Ref bound into an adaptor yields
// the referenced object rather than a copy, so mutations performed through
// the composition are visible to the original.
//
// When matched against a parameter, a Ref satisfies *T first (the target
// can mutate the referent) and falls back to T (the target receives a copy
// read at invocation time, so repeated invocations observe updates).
type Ref[T any] struct {
	target *T
}

// NewRef wraps a non-nil pointer.
func NewRef[T any](target *T) Ref[T] {
	if target == nil {
		panic("callable: NewRef requires a non-nil target")
	}
	return Ref[T]{target: target}
}

// Get returns the referenced object.
func (r Ref[T]) Get() *T { return r.target }

func (r Ref[T]) refTarget() any { return r.target }
func (r Ref[T]) refValue() any  { return *r.target }

// refWrapper is satisfied by every Ref instantiation regardless of T.
type refWrapper interface {
	refTarget() any
	refValue() any
}

// Unref reports whether arg is a Ref wrapper and, if so, returns the
// referenced pointer.
func Unref(arg any) (any, bool) {
	if r, ok := arg.(refWrapper); ok {
		return r.refTarget(), true
	}
	return nil, false
}
