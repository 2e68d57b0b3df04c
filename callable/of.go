package callable

// Arity-indexed constructors. OfI<m>O<n> wraps a function of m inputs and n
// results; the OfErr variants wrap functions whose final result is an error.
// Each wrapper decides invocability per argument with a type assertion
// against its type parameters, so a parameter declared as an interface type
// accepts every implementation while a concrete parameter accepts exactly
// its own dynamic type.

type fnI0O1[O1 any] struct {
	fn func() O1
}

// OfI0O1 wraps a nullary function.
func OfI0O1[O1 any](fn func() O1) Callable {
	return fnI0O1[O1]{fn: fn}
}

func (f fnI0O1[O1]) Invocable(args ...any) bool {
	return len(args) == 0
}

func (f fnI0O1[O1]) Invoke(args ...any) (any, error) {
	if len(args) != 0 {
		return nil, NotInvocableError("OfI0O1", args)
	}
	return f.fn(), nil
}

type fnI1O1[I1, O1 any] struct {
	fn func(I1) O1
}

// OfI1O1 wraps a unary function.
func OfI1O1[I1, O1 any](fn func(I1) O1) Callable {
	return fnI1O1[I1, O1]{fn: fn}
}

func (f fnI1O1[I1, O1]) Invocable(args ...any) bool {
	if len(args) != 1 {
		return false
	}
	_, ok := cast[I1](args[0])
	return ok
}

func (f fnI1O1[I1, O1]) Invoke(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, NotInvocableError("OfI1O1", args)
	}
	a1, ok := cast[I1](args[0])
	if !ok {
		return nil, NotInvocableError("OfI1O1", args)
	}
	return f.fn(a1), nil
}

type fnI2O1[I1, I2, O1 any] struct {
	fn func(I1, I2) O1
}

// OfI2O1 wraps a binary function. Method expressions fit here: for a method
// M on T, T.M is func(T, ...) and (*T).M is func(*T, ...), so member
// invocation needs no special casing.
func OfI2O1[I1, I2, O1 any](fn func(I1, I2) O1) Callable {
	return fnI2O1[I1, I2, O1]{fn: fn}
}

func (f fnI2O1[I1, I2, O1]) Invocable(args ...any) bool {
	if len(args) != 2 {
		return false
	}
	_, ok1 := cast[I1](args[0])
	_, ok2 := cast[I2](args[1])
	return ok1 && ok2
}

func (f fnI2O1[I1, I2, O1]) Invoke(args ...any) (any, error) {
	if len(args) != 2 {
		return nil, NotInvocableError("OfI2O1", args)
	}
	a1, ok1 := cast[I1](args[0])
	a2, ok2 := cast[I2](args[1])
	if !ok1 || !ok2 {
		return nil, NotInvocableError("OfI2O1", args)
	}
	return f.fn(a1, a2), nil
}

type fnI3O1[I1, I2, I3, O1 any] struct {
	fn func(I1, I2, I3) O1
}

// OfI3O1 wraps a ternary function.
func OfI3O1[I1, I2, I3, O1 any](fn func(I1, I2, I3) O1) Callable {
	return fnI3O1[I1, I2, I3, O1]{fn: fn}
}

func (f fnI3O1[I1, I2, I3, O1]) Invocable(args ...any) bool {
	if len(args) != 3 {
		return false
	}
	_, ok1 := cast[I1](args[0])
	_, ok2 := cast[I2](args[1])
	_, ok3 := cast[I3](args[2])
	return ok1 && ok2 && ok3
}

func (f fnI3O1[I1, I2, I3, O1]) Invoke(args ...any) (any, error) {
	if len(args) != 3 {
		return nil, NotInvocableError("OfI3O1", args)
	}
	a1, ok1 := cast[I1](args[0])
	a2, ok2 := cast[I2](args[1])
	a3, ok3 := cast[I3](args[2])
	if !ok1 || !ok2 || !ok3 {
		return nil, NotInvocableError("OfI3O1", args)
	}
	return f.fn(a1, a2, a3), nil
}

type fnI4O1[I1, I2, I3, I4, O1 any] struct {
	fn func(I1, I2, I3, I4) O1
}

// OfI4O1 wraps a quaternary function.
func OfI4O1[I1, I2, I3, I4, O1 any](fn func(I1, I2, I3, I4) O1) Callable {
	return fnI4O1[I1, I2, I3, I4, O1]{fn: fn}
}

func (f fnI4O1[I1, I2, I3, I4, O1]) Invocable(args ...any) bool {
	if len(args) != 4 {
		return false
	}
	_, ok1 := cast[I1](args[0])
	_, ok2 := cast[I2](args[1])
	_, ok3 := cast[I3](args[2])
	_, ok4 := cast[I4](args[3])
	return ok1 && ok2 && ok3 && ok4
}

func (f fnI4O1[I1, I2, I3, I4, O1]) Invoke(args ...any) (any, error) {
	if len(args) != 4 {
		return nil, NotInvocableError("OfI4O1", args)
	}
	a1, ok1 := cast[I1](args[0])
	a2, ok2 := cast[I2](args[1])
	a3, ok3 := cast[I3](args[2])
	a4, ok4 := cast[I4](args[3])
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, NotInvocableError("OfI4O1", args)
	}
	return f.fn(a1, a2, a3, a4), nil
}

type fnI0O0 struct {
	fn func()
}

// OfI0O0 wraps a nullary procedure; Invoke yields a nil result.
func OfI0O0(fn func()) Callable {
	return fnI0O0{fn: fn}
}

func (f fnI0O0) Invocable(args ...any) bool {
	return len(args) == 0
}

func (f fnI0O0) Invoke(args ...any) (any, error) {
	if len(args) != 0 {
		return nil, NotInvocableError("OfI0O0", args)
	}
	f.fn()
	return nil, nil
}

type fnI1O0[I1 any] struct {
	fn func(I1)
}

// OfI1O0 wraps a unary procedure.
func OfI1O0[I1 any](fn func(I1)) Callable {
	return fnI1O0[I1]{fn: fn}
}

func (f fnI1O0[I1]) Invocable(args ...any) bool {
	if len(args) != 1 {
		return false
	}
	_, ok := cast[I1](args[0])
	return ok
}

func (f fnI1O0[I1]) Invoke(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, NotInvocableError("OfI1O0", args)
	}
	a1, ok := cast[I1](args[0])
	if !ok {
		return nil, NotInvocableError("OfI1O0", args)
	}
	f.fn(a1)
	return nil, nil
}

type fnI2O0[I1, I2 any] struct {
	fn func(I1, I2)
}

// OfI2O0 wraps a binary procedure.
func OfI2O0[I1, I2 any](fn func(I1, I2)) Callable {
	return fnI2O0[I1, I2]{fn: fn}
}

func (f fnI2O0[I1, I2]) Invocable(args ...any) bool {
	if len(args) != 2 {
		return false
	}
	_, ok1 := cast[I1](args[0])
	_, ok2 := cast[I2](args[1])
	return ok1 && ok2
}

func (f fnI2O0[I1, I2]) Invoke(args ...any) (any, error) {
	if len(args) != 2 {
		return nil, NotInvocableError("OfI2O0", args)
	}
	a1, ok1 := cast[I1](args[0])
	a2, ok2 := cast[I2](args[1])
	if !ok1 || !ok2 {
		return nil, NotInvocableError("OfI2O0", args)
	}
	f.fn(a1, a2)
	return nil, nil
}

type fnErrI1O1[I1, O1 any] struct {
	fn func(I1) (O1, error)
}

// OfErrI1O1 wraps a unary function returning (O1, error). A non-nil error
// from the function passes through unchanged; it is a runtime failure of the
// wrapped code, not non-invocability.
func OfErrI1O1[I1, O1 any](fn func(I1) (O1, error)) Callable {
	return fnErrI1O1[I1, O1]{fn: fn}
}

func (f fnErrI1O1[I1, O1]) Invocable(args ...any) bool {
	if len(args) != 1 {
		return false
	}
	_, ok := cast[I1](args[0])
	return ok
}

func (f fnErrI1O1[I1, O1]) Invoke(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, NotInvocableError("OfErrI1O1", args)
	}
	a1, ok := cast[I1](args[0])
	if !ok {
		return nil, NotInvocableError("OfErrI1O1", args)
	}
	res, err := f.fn(a1)
	if err != nil {
		return nil, err
	}
	return res, nil
}

type fnErrI2O1[I1, I2, O1 any] struct {
	fn func(I1, I2) (O1, error)
}

// OfErrI2O1 wraps a binary function returning (O1, error).
func OfErrI2O1[I1, I2, O1 any](fn func(I1, I2) (O1, error)) Callable {
	return fnErrI2O1[I1, I2, O1]{fn: fn}
}

func (f fnErrI2O1[I1, I2, O1]) Invocable(args ...any) bool {
	if len(args) != 2 {
		return false
	}
	_, ok1 := cast[I1](args[0])
	_, ok2 := cast[I2](args[1])
	return ok1 && ok2
}

func (f fnErrI2O1[I1, I2, O1]) Invoke(args ...any) (any, error) {
	if len(args) != 2 {
		return nil, NotInvocableError("OfErrI2O1", args)
	}
	a1, ok1 := cast[I1](args[0])
	a2, ok2 := cast[I2](args[1])
	if !ok1 || !ok2 {
		return nil, NotInvocableError("OfErrI2O1", args)
	}
	res, err := f.fn(a1, a2)
	if err != nil {
		return nil, err
	}
	return res, nil
}
