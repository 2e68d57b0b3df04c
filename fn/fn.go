// Package fn provides the trivial typed combinators: one-line forwards
// whose invocability is checked entirely by the compiler. Reach for these
// before the dynamic adaptors whenever the signature is known at the
// composition site.
package fn

// Identity returns its argument unchanged.
func Identity[T any](v T) T { return v }

// Const returns a function that ignores its argument and always yields a.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Compose is left-to-right composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe threads value through fns in order. All functions accept and return
// the same type.
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, f := range fns {
		result = f(result)
	}
	return result
}

// Flip swaps the argument order of a binary function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// Curry2 turns a binary function into a chain of unary ones.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 turns a ternary function into a chain of unary ones.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Partial1of2 fixes the first argument of a binary function.
func Partial1of2[A, B, C any](f func(A, B) C, a A) func(B) C {
	return func(b B) C {
		return f(a, b)
	}
}

// Partial1of3 fixes the first argument of a ternary function.
func Partial1of3[A, B, C, D any](f func(A, B, C) D, a A) func(B, C) D {
	return func(b B, c C) D {
		return f(a, b, c)
	}
}
