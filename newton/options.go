// SPDX-License-Identifier: MIT

// Package newton: functional configuration of a Solver. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (the package constants),
//   - WithX constructors; invalid values are recorded and surfaced as
//     ErrOptionViolation by NewSolver,
//   - gatherOptions helper (internal) that applies setters in order.
//
// Notes:
//   - Last writer wins: applying WithTolerance twice keeps the second value.
//   - A later valid value does not clear an earlier violation.
package newton

import (
	"fmt"
	"log/slog"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	// numeric policy
	tol       float64 // > 0; MaxError
	maxIter   int     // >= 1; MaxIterations
	accept    float64 // > 0; AcceptThreshold
	derivStep float64 // > 0; MaxError

	// scan policy
	maxSeeds int // >= 0; 0 means unbounded

	// observability
	logger      *slog.Logger
	onIteration func(iter int, x, residual float64)

	// first violation recorded while applying setters
	err error
}

// DefaultOptions returns the documented defaults, identical to the fixed
// policy of FindRoot, FindRootDefaultDeriv and FindRootBruteForce.
func DefaultOptions() Options {
	return Options{
		tol:         MaxError,
		maxIter:     MaxIterations,
		accept:      AcceptThreshold,
		derivStep:   MaxError,
		onIteration: func(int, float64, float64) {},
	}
}

// Tolerance returns the absolute tolerance of the convergence tests.
func (o Options) Tolerance() float64 { return o.tol }

// MaxIterations returns the iteration cap of one Newton run.
func (o Options) MaxIterations() int { return o.maxIter }

// Acceptance returns the |f(r)| bound of the good-root predicate.
func (o Options) Acceptance() float64 { return o.accept }

// DerivativeStep returns ε of the centered-difference derivative.
func (o Options) DerivativeStep() float64 { return o.derivStep }

// MaxSeeds returns the scan seed cap (0 = unbounded).
func (o Options) MaxSeeds() int { return o.maxSeeds }

// WithTolerance sets the absolute tolerance used by both the residual test
// |f(x)| < eps and the step test |Δ| < eps.
//
//	eps > 0 and finite: accepted
//	otherwise:          ErrOptionViolation
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if isNonFinite(eps) || eps <= 0 {
			o.violate("tolerance must be finite and > 0 (%g)", eps)
			return
		}
		o.tol = eps
	}
}

// WithMaxIterations sets the iteration cap of one Newton run (n ≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violate("max iterations must be >= 1 (%d)", n)
			return
		}
		o.maxIter = n
	}
}

// WithAcceptance sets the threshold of the good-root predicate used by the
// multi-start scan: r is good iff r is finite and |f(r)| < th.
func WithAcceptance(th float64) Option {
	return func(o *Options) {
		if isNonFinite(th) || th <= 0 {
			o.violate("acceptance must be finite and > 0 (%g)", th)
			return
		}
		o.accept = th
	}
}

// WithDerivativeStep sets ε of the centered difference used by SolveNumeric.
// Very small steps amplify cancellation error when f is nearly flat.
func WithDerivativeStep(h float64) Option {
	return func(o *Options) {
		if isNonFinite(h) || h <= 0 {
			o.violate("derivative step must be finite and > 0 (%g)", h)
			return
		}
		o.derivStep = h
	}
}

// WithMaxSeeds caps the number of scan seeds BruteForce may try after the
// primary seed. Zero disables the cap.
func WithMaxSeeds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.violate("max seeds cannot be negative (%d)", n)
			return
		}
		o.maxSeeds = n
	}
}

// WithLogger routes Debug-level scan diagnostics to l. A nil logger keeps the
// solver silent (the default).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithOnIteration registers a hook called once per Newton step with the
// 1-based iteration number, the current iterate and f at that iterate.
// A nil fn is ignored.
func WithOnIteration(fn func(iter int, x, residual float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onIteration = fn
		}
	}
}

// violate records the first option violation.
func (o *Options) violate(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// debug logs through the configured logger, if any.
func (o *Options) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

// gatherOptions applies opts over the defaults and returns the first
// recorded violation, if any.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
