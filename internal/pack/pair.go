package pack

// Pair stores two independently typed values and exposes them through
// accessors. Stored callables are frequently zero-size (stateless function
// values, marker structs); Go's struct layout gives such members zero bytes
// of storage, and Pair keeps that layout concern in one place instead of
// leaking it into every adaptor. A zero-size member should come first: a
// trailing zero-size field still forces padding.
type Pair[F, S any] struct {
	first  F
	second S
}

// MakePair constructs a Pair piecewise from two independently typed values.
func MakePair[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{first: first, second: second}
}

// First returns the first stored member.
func (p Pair[F, S]) First() F { return p.first }

// Second returns the second stored member.
func (p Pair[F, S]) Second() S { return p.second }
