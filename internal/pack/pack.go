// Package pack provides the storage primitives shared by the adaptor
// packages: a two-member compressed pair and an ordered heterogeneous
// value pack. Both are immutable after construction.
package pack

// Pack is an ordered, fixed-arity sequence of heterogeneous values.
// Constructing a Pack copies the supplied slice, so later mutation of the
// caller's slice never changes the pack.
type Pack struct {
	items []any
}

// New constructs a Pack from the given values.
func New(items ...any) Pack {
	owned := make([]any, len(items))
	copy(owned, items)
	return Pack{items: owned}
}

// Len returns the arity of the pack.
func (p Pack) Len() int { return len(p.items) }

// At returns the i-th value. Panics if i is out of range, like a slice index.
func (p Pack) At(i int) any { return p.items[i] }

// Map returns the elementwise transformation of the pack as a fresh slice.
// The first error short-circuits.
func (p Pack) Map(fn func(i int, item any) (any, error)) ([]any, error) {
	out := make([]any, len(p.items))
	for i, item := range p.items {
		v, err := fn(i, item)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
