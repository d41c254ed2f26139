// SPDX-License-Identifier: MIT

package newton

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Fixed numeric policy of the NaN-returning functions.
const (
	// MaxError is the absolute tolerance of both convergence tests and the
	// step ε of the centered-difference derivative.
	MaxError = 1e-9

	// MaxIterations caps a single Newton–Raphson run.
	MaxIterations = 50

	// AcceptThreshold bounds |f(r)| for a root to count as good in the
	// multi-start scan.
	AcceptThreshold = 1e-3
)

// Func is a pure scalar function ℝ → ℝ.
type Func func(x float64) float64

// Deriv is the derivative f' of a Func.
type Deriv func(x float64) float64

// Range describes the fallback seeds Min, Min+Step, Min+2·Step, … < Max.
//
// A Range contributes seeds only when Step > 0, Min < Max and all three
// fields are finite.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// String renders the range as (min, max, step).
func (r Range) String() string {
	return fmt.Sprintf("(%g, %g, %g)", r.Min, r.Max, r.Step)
}

// Valid reports whether r yields at least one seed.
func (r Range) Valid() bool {
	return r.validate() == nil
}

func (r Range) validate() error {
	switch {
	case isNonFinite(r.Min) || isNonFinite(r.Max) || isNonFinite(r.Step):
		return fmt.Errorf("%w: non-finite field in %v", ErrInvalidRange, r)
	case r.Step <= 0:
		return fmt.Errorf("%w: step must be > 0 in %v", ErrInvalidRange, r)
	case r.Min >= r.Max:
		return fmt.Errorf("%w: min must be < max in %v", ErrInvalidRange, r)
	}

	return nil
}

// All yields the seeds of r in increasing order. An invalid range yields
// nothing. The sequence also stops when guess+Step no longer changes guess,
// which happens once Step drops below the spacing of float64 around guess.
func (r Range) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !r.Valid() {
			return
		}
		var next float64
		for guess := r.Min; guess < r.Max; guess = next {
			if !yield(guess) {
				return
			}
			next = guess + r.Step
			if next == guess {
				return
			}
		}
	}
}

// Seeds collects All into a slice.
func (r Range) Seeds() []float64 {
	return slices.Collect(r.All())
}

// Result describes one solve.
type Result struct {
	// Root is the located zero, or NaN when none was found.
	Root float64

	// Residual is f(Root); NaN when Root is NaN.
	Residual float64

	// Iterations is the number of Newton steps of the run that produced Root
	// (or of the last run when the search failed).
	Iterations int

	// Seed is the starting point of the run that produced Root.
	Seed float64

	// Attempts counts Newton runs, primary seed included.
	Attempts int
}

// Converged reports whether Root is a finite value.
func (r Result) Converged() bool {
	return !isNonFinite(r.Root)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
