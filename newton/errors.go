// SPDX-License-Identifier: MIT
// Package newton: sentinel error set.
// The NaN-returning functions never surface these; they are returned by the
// Solver methods and matched by callers via errors.Is.

package newton

import "errors"

var (
	// ErrNilFunc is returned when f or its derivative is nil.
	ErrNilFunc = errors.New("newton: nil function")

	// ErrNoConvergence indicates that neither the residual nor the step-size
	// test fired within the iteration cap.
	ErrNoConvergence = errors.New("newton: no convergence within iteration cap")

	// ErrNonFinite indicates that the iterate left the finite reals, typically
	// because f'(x) evaluated to zero and the step became ±Inf.
	ErrNonFinite = errors.New("newton: iterate is NaN or Inf")

	// ErrRejected marks a converged root that fails the acceptance predicate
	// (|f(r)| ≥ acceptance threshold).
	ErrRejected = errors.New("newton: root rejected by acceptance threshold")

	// ErrExhausted is returned when the primary seed and every scan seed
	// failed to produce a good root.
	ErrExhausted = errors.New("newton: search ranges exhausted")

	// ErrInvalidRange flags a scan range with Step ≤ 0, Min ≥ Max or a
	// non-finite bound.
	ErrInvalidRange = errors.New("newton: invalid scan range")

	// ErrSeedLimit is returned when the scan stopped at the WithMaxSeeds cap.
	ErrSeedLimit = errors.New("newton: scan seed limit reached")

	// ErrOptionViolation is returned by NewSolver when an Option received a
	// nonsensical value.
	ErrOptionViolation = errors.New("newton: invalid option supplied")
)
