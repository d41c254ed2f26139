// SPDX-License-Identifier: MIT

package newton

import (
	"fmt"
	"math"
)

// defaultOptions backs the NaN-returning functions.
var defaultOptions = DefaultOptions()

// FindRoot runs Newton–Raphson from start:
//
//	x[n+1] = x[n] − f(x[n]) / d(x[n])
//
// Algorithm Outline:
//  1. r = f(x); |r| < MaxError ⇒ return x.
//  2. Δ = r / d(x); |Δ| < MaxError ⇒ return x − Δ (the final correction is
//     already applied).
//  3. x −= Δ; repeat up to MaxIterations times.
//
// Returns NaN when the cap is reached or f or d is nil. A zero derivative is
// not guarded: the step becomes ±Inf, the iterate turns non-finite and the
// run ends in NaN.
//
// Complexity: O(MaxIterations) calls of f and d.
func FindRoot(start float64, f Func, d Deriv) float64 {
	if f == nil || d == nil {
		return math.NaN()
	}
	root, _, ok := defaultOptions.iterate(start, f, d)
	if !ok {
		return math.NaN()
	}

	return root
}

// FindRootDefaultDeriv is FindRoot with d replaced by the centered
// difference (f(x+ε) − f(x−ε)) / 2ε, ε = MaxError.
func FindRootDefaultDeriv(start float64, f Func) float64 {
	return FindRoot(start, f, CentralDifference(f, MaxError))
}

// CentralDifference approximates f' with step h:
//
//	f'(x) ≈ (f(x+h) − f(x−h)) / 2h
//
// The truncation error is O(h²) but the rounding error grows like u·|f|/h
// (u = unit roundoff), so tiny h on nearly flat f loses most digits.
func CentralDifference(f Func, h float64) Deriv {
	return func(x float64) float64 {
		return (f(x+h) - f(x-h)) / (2 * h)
	}
}

// iterate is the Newton–Raphson loop shared by every entry point. It returns
// the final iterate, the number of steps taken and whether a convergence
// test fired.
func (o *Options) iterate(start float64, f Func, d Deriv) (float64, int, bool) {
	var (
		x     = start
		r     float64
		delta float64
	)
	for i := 1; i <= o.maxIter; i++ {
		r = f(x)
		o.onIteration(i, x, r)
		if math.Abs(r) < o.tol {
			return x, i, true
		}

		delta = r / d(x)
		if math.Abs(delta) < o.tol {
			return x - delta, i, true
		}

		x -= delta
	}

	return x, o.maxIter, false
}

// Solver runs the root-finding algorithms under a fixed Options set.
// A Solver is immutable and safe for concurrent use as long as the
// registered hooks are.
type Solver struct {
	opts Options
}

// NewSolver builds a Solver from opts applied over DefaultOptions.
// Returns an error wrapping ErrOptionViolation when an option is invalid.
func NewSolver(opts ...Option) (*Solver, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Solver{opts: o}, nil
}

// Options returns a copy of the effective configuration.
func (s *Solver) Options() Options {
	return s.opts
}

// Solve runs one Newton–Raphson iteration from start.
//
// Errors:
//   - ErrNilFunc       - f or d is nil.
//   - ErrNoConvergence - the iteration cap was reached with a finite iterate.
//   - ErrNonFinite     - the iterate (or the converged value) is NaN or ±Inf.
//
// On ErrNonFinite after convergence, Result.Root holds the non-finite value
// FindRoot would return; on every other failure it is NaN.
func (s *Solver) Solve(start float64, f Func, d Deriv) (Result, error) {
	if f == nil || d == nil {
		return failed(start, 0), ErrNilFunc
	}

	return s.run(start, f, d)
}

// SolveNumeric is Solve with d replaced by CentralDifference(f, ε), ε being
// the configured derivative step.
func (s *Solver) SolveNumeric(start float64, f Func) (Result, error) {
	if f == nil {
		return failed(start, 0), ErrNilFunc
	}

	return s.run(start, f, CentralDifference(f, s.opts.derivStep))
}

// run performs one Newton run; f and d are known to be non-nil.
func (s *Solver) run(start float64, f Func, d Deriv) (Result, error) {
	root, iters, ok := s.opts.iterate(start, f, d)
	if !ok {
		res := failed(start, 1)
		res.Iterations = iters
		if isNonFinite(root) {
			return res, fmt.Errorf("seed %g: %w", start, ErrNonFinite)
		}

		return res, fmt.Errorf("seed %g after %d iterations: %w", start, iters, ErrNoConvergence)
	}

	res := Result{
		Root:       root,
		Residual:   math.NaN(),
		Iterations: iters,
		Seed:       start,
		Attempts:   1,
	}
	if isNonFinite(root) {
		return res, fmt.Errorf("seed %g converged to %g: %w", start, root, ErrNonFinite)
	}
	res.Residual = f(root)

	return res, nil
}

// failed is the Result of a run that produced no root.
func failed(seed float64, attempts int) Result {
	return Result{
		Root:     math.NaN(),
		Residual: math.NaN(),
		Seed:     seed,
		Attempts: attempts,
	}
}
