// Package memo provides a memoizing decorator: the canonical cross-cutting
// use of package decorate. Results are cached by a digest of the argument
// list in a bounded, concurrency-safe table carried as the decoration data.
//
// Memoization assumes the wrapped callable is pure. A callable that depends
// on time, I/O, or mutable captured state must not be memoized.
package memo

import (
	"fmt"

	"github.com/hofkit/hof/callable"
	"github.com/hofkit/hof/decorate"

	"github.com/cespare/xxhash/v2"
)

// key digests an argument list. Each argument contributes its dynamic type
// and either its Stringer form or its printed value.
func key(args []any) uint64 {
	d := xxhash.New()
	for _, a := range args {
		_, _ = d.WriteString(fmt.Sprintf("%T=", a))
		if s, ok := a.(fmt.Stringer); ok {
			_, _ = d.WriteString(s.String())
		} else {
			_, _ = d.WriteString(fmt.Sprintf("%v", a))
		}
		_, _ = d.WriteString("\x1f")
	}
	return d.Sum64()
}

// Decorator caches target results in the *Table supplied as decoration
// data. Errors are never cached: a failed invocation is retried on the next
// application.
func Decorator(data any, f callable.Callable, args ...any) (any, error) {
	tbl, ok := data.(*Table)
	if !ok {
		panic("memo: decoration data must be a *memo.Table")
	}
	k := key(args)
	if v, hit := tbl.load(k); hit {
		return v, nil
	}
	v, err := f.Invoke(args...)
	if err != nil {
		return nil, err
	}
	tbl.store(k, v)
	return v, nil
}

// Wrap memoizes f with a fresh bounded table.
func Wrap(f callable.Callable, maxTableSize uint32) callable.Callable {
	return decorate.New(NewTable(maxTableSize), Decorator)(f)
}
