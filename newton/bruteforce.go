// SPDX-License-Identifier: MIT

package newton

import (
	"context"
	"fmt"
	"math"
)

// FindRootBruteForce runs FindRoot from start and, when the result is not a
// good root, from every seed of ranges in order. A root r is good iff r is
// finite and |f(r)| < AcceptThreshold. The first good root wins; NaN means
// every seed failed.
//
// Ranges that cannot yield seeds (Step ≤ 0, Min ≥ Max, non-finite fields)
// are skipped. Use Solver.BruteForce to reject them with ErrInvalidRange.
//
// Complexity: O(MaxIterations · (1 + Σ seeds)).
func FindRootBruteForce(start float64, ranges []Range, f Func, d Deriv) float64 {
	valid := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.Valid() {
			valid = append(valid, r)
		}
	}

	res, err := defaultSolver.BruteForce(context.Background(), start, valid, f, d)
	if err != nil {
		return math.NaN()
	}

	return res.Root
}

// defaultSolver backs FindRootBruteForce.
var defaultSolver = &Solver{opts: defaultOptions}

// IsGoodRoot reports whether r is finite and |f(r)| < threshold.
func IsGoodRoot(r float64, f Func, threshold float64) bool {
	return goodRoot(r, f(r), threshold)
}

// goodRoot is IsGoodRoot with f(r) already evaluated. A NaN residual fails.
func goodRoot(r, residual, threshold float64) bool {
	return !isNonFinite(r) && math.Abs(residual) < threshold
}

// BruteForce is the multi-start driver.
//
// Algorithm Outline:
//  1. Validate every range (ErrInvalidRange, nothing is evaluated).
//  2. Solve from start; a good root is returned immediately.
//  3. For each range in order, for guess = Min; guess < Max; guess += Step:
//     Solve from guess; the first good root is returned.
//  4. Otherwise ErrExhausted.
//
// ctx is checked before every scan seed; on cancellation the context error
// is returned. With WithMaxSeeds(n), n > 0, the scan stops with ErrSeedLimit
// after n scan seeds.
//
// Result.Attempts counts every Newton run, the primary one included.
func (s *Solver) BruteForce(ctx context.Context, start float64, ranges []Range, f Func, d Deriv) (Result, error) {
	if f == nil || d == nil {
		return failed(start, 0), ErrNilFunc
	}
	for i, r := range ranges {
		if err := r.validate(); err != nil {
			return failed(start, 0), fmt.Errorf("range %d: %w", i, err)
		}
	}

	var (
		attempts  int
		lastIters int
		res       Result
		ok        bool
	)
	try := func(seed float64) (Result, bool) {
		attempts++
		res, err := s.run(seed, f, d)
		res.Attempts = attempts
		lastIters = res.Iterations
		if err != nil {
			return res, false
		}
		if !goodRoot(res.Root, res.Residual, s.opts.accept) {
			s.opts.debug("root rejected", "seed", seed, "root", res.Root,
				"residual", res.Residual, "err", ErrRejected)
			return res, false
		}

		return res, true
	}

	// Stage 1: primary seed.
	if res, ok = try(start); ok {
		return res, nil
	}
	s.opts.debug("primary seed failed, scanning ranges", "seed", start, "ranges", len(ranges))

	// Stage 2: scan ranges in the given order.
	for i, r := range ranges {
		for guess := range r.All() {
			if err := ctx.Err(); err != nil {
				return gaveUp(guess, attempts, lastIters), err
			}
			if s.opts.maxSeeds > 0 && attempts > s.opts.maxSeeds {
				return gaveUp(guess, attempts, lastIters), fmt.Errorf("%d seeds tried: %w", attempts-1, ErrSeedLimit)
			}
			if res, ok = try(guess); ok {
				s.opts.debug("scan seed accepted", "range", i, "seed", guess, "root", res.Root,
					"attempts", attempts)
				return res, nil
			}
		}
		s.opts.debug("range exhausted", "range", i, "bounds", r.String(), "attempts", attempts)
	}

	return gaveUp(math.NaN(), attempts, lastIters), ErrExhausted
}

// gaveUp is the Result of an unsuccessful search; Iterations is taken from
// the last Newton run.
func gaveUp(seed float64, attempts, iters int) Result {
	res := failed(seed, attempts)
	res.Iterations = iters

	return res
}
