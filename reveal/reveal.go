// Package reveal turns silent non-invocability into a diagnostic. The
// engine's soft failures are deliberately terse so that outer adaptors can
// treat them as boolean facts; at the outermost composition boundary, wrap
// the composite in a reveal.Adaptor to learn which candidates were tried
// for a failed argument list and what types were supplied.
package reveal

import (
	"fmt"
	"strings"

	"github.com/hofkit/hof/callable"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures an Adaptor.
type Option func(*Adaptor)

// WithLogger attaches a logger; every rejected candidate is reported at
// debug level with the adaptor's instance id. The default is a no-op
// logger: the engine proper never logs.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Adaptor) {
		a.logger = logger
	}
}

// Adaptor wraps a callable and enriches its failures. Invocation semantics
// are otherwise unchanged, so a reveal.Adaptor composes like any callable.
type Adaptor struct {
	id     string
	f      callable.Callable
	logger *zap.Logger
}

// New wraps f with a freshly assigned instance id.
func New(f callable.Callable, opts ...Option) Adaptor {
	if f == nil {
		panic("reveal: New requires a callable")
	}
	a := Adaptor{
		id:     uuid.New().String(),
		f:      f,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// ID returns the instance id used in diagnostics and log entries.
func (a Adaptor) ID() string { return a.id }

func (a Adaptor) Invocable(args ...any) bool {
	return a.f.Invocable(args...)
}

func (a Adaptor) Invoke(args ...any) (any, error) {
	if a.f.Invocable(args...) {
		return a.f.Invoke(args...)
	}
	return nil, a.failure(args)
}

// multi is satisfied by composites that expose their alternatives, notably
// the firstof kernel.
type multi interface {
	Candidates() []callable.Callable
}

func (a Adaptor) failure(args []any) error {
	supplied := callable.TypesOf(args...)
	candidates := []callable.Callable{a.f}
	if m, ok := a.f.(multi); ok {
		candidates = m.Candidates()
	}

	lines := make([]string, 0, len(candidates))
	for i, c := range candidates {
		a.logger.Debug("candidate rejected",
			zap.String("adaptorId", a.id),
			zap.Int("candidate", i+1),
			zap.String("candidateType", fmt.Sprintf("%T", c)),
			zap.String("suppliedArgs", supplied),
		)
		lines = append(lines, fmt.Sprintf("  candidate %d (%T) rejected arguments (%s)", i+1, c, supplied))
	}
	return fmt.Errorf("%w: adaptor %s tried %d candidate(s) with arguments (%s)\n%s",
		callable.ErrNotInvocable, a.id, len(candidates), supplied, strings.Join(lines, "\n"))
}
