// SPDX-License-Identifier: MIT

// Package newton locates a zero of a scalar function f: ℝ → ℝ with the
// Newton–Raphson method, optionally wrapped in a multi-start scan.
//
// 🚀 What is it for?
//
//	Inverting functions that have no closed-form inverse: internal rate of
//	return, yield to maturity, implied parameters. The caller supplies f (and,
//	when known, its derivative f'); the package returns x with f(x) ≈ 0.
//
// ✨ Three layers:
//   - FindRoot             - the Newton–Raphson core, f and f' supplied.
//   - FindRootDefaultDeriv - the same, with f' approximated by a centered
//     finite difference (f(x+ε) − f(x−ε)) / 2ε, ε = MaxError.
//   - FindRootBruteForce   - runs the core from a primary seed and, when the
//     result is not a good root (finite and |f(r)| < AcceptThreshold), retries
//     from every seed of the caller's scan ranges. First good root wins.
//
// All three report failure with NaN, so callers must test math.IsNaN:
//
//	r := newton.FindRoot(1, func(x float64) float64 { return x*x - 2 },
//		func(x float64) float64 { return 2 * x })
//	if math.IsNaN(r) {
//		// no convergence within MaxIterations
//	}
//
// ⚙️ Hardened API:
//
// Solver exposes the same algorithms with configurable tolerances and
// explicit errors instead of the NaN sentinel:
//
//	s, err := newton.NewSolver(
//		newton.WithTolerance(1e-12),
//		newton.WithMaxIterations(100),
//		newton.WithLogger(slog.Default()),
//	)
//	res, err := s.BruteForce(ctx, 0.1, []newton.Range{{Min: -0.99, Max: 1, Step: 0.01}}, f, d)
//	switch {
//	case errors.Is(err, newton.ErrExhausted):
//		// no seed produced a good root
//	case errors.Is(err, newton.ErrInvalidRange):
//		// Step ≤ 0, Min ≥ Max or a non-finite bound
//	}
//
// Scan ranges are validated upfront by Solver.BruteForce; the sentinel
// FindRootBruteForce silently skips malformed ranges instead of looping.
//
// Performance:
//
//   - Core:        O(MaxIterations) evaluations of f and f'.
//   - Brute force: O(MaxIterations · total seeds).
//   - No allocations on the hot path, no goroutines, no shared state.
package newton
