// Package callable is the invocability core of the adaptor library.
//
// A Callable is any value that can be applied to an ordered list of
// arguments. What makes the type useful is not Invoke but Invocable: a
// callable can be asked, without running anything, whether a given argument
// list would be accepted. Every adaptor in this module — first-match
// selection, fixed-point recursion, lazy binding, decoration — is built on
// that queryable predicate.
//
// # Two tiers
//
// Where the argument signature is known at the composition site, use plain
// typed functions and the typed combinators (package fn, the typed fix
// family): the compiler is the invocability predicate and there is no
// interface boxing at all.
//
// Where alternatives with different signatures must coexist behind one
// value, wrap each function with one of the arity-indexed constructors
// (OfI1O1, OfI2O1, ...). The resulting Callable decides invocability by
// asserting each argument against the constructor's type parameters. No
// reflection is involved: a parameter declared as a concrete type accepts
// exactly that dynamic type, and a parameter declared as an interface
// (including any) accepts every value implementing it.
//
// # Soft failure
//
// A signature mismatch is a fact, not a fault. Invocable reports false and
// Invoke returns an error wrapping ErrNotInvocable; outer adaptors use the
// fact to select among alternatives. Errors produced by the wrapped function
// itself (the OfErr constructors) pass through unchanged and never count as
// non-invocability.
//
// # Reference semantics
//
// Arguments are forwarded as interface values, so pointers keep their
// identity through any depth of nesting. Ref marks a pointer whose referent
// should be reachable both as *T (for mutation) and as a T copy (for
// value-receiver targets); see Ref.
//
// # Sharing
//
// Every value in this package is immutable after construction and safe for
// concurrent use. Mutation only ever happens inside user-supplied functions.
//
// One caveat on nil: an untyped nil interface argument carries no dynamic
// type and therefore satisfies no parameter. Pass a typed nil (e.g.
// (*T)(nil)) when a callable should receive one.
package callable
