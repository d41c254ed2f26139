// SPDX-License-Identifier: MIT

package finance

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/rootfind/newton"
)

// Calculator solves IRR and XIRR with a fixed solver configuration and scan
// ranges. It is safe for concurrent use.
type Calculator struct {
	solver *newton.Solver
	ranges []newton.Range
}

// defaultCalculator backs the package-level IRR and XIRR when no option is
// given. It holds a copy of DefaultRateRanges taken at init.
var defaultCalculator = &Calculator{
	solver: mustSolver(),
	ranges: slices.Clone(DefaultRateRanges),
}

func mustSolver() *newton.Solver {
	s, err := newton.NewSolver()
	if err != nil {
		panic(err)
	}

	return s
}

// NewCalculator builds a Calculator scanning a copy of ranges
// (DefaultRateRanges when nil) with a solver configured by opts.
//
// Errors:
//   - newton.ErrOptionViolation - an option is invalid.
//   - newton.ErrInvalidRange    - a range cannot yield seeds.
func NewCalculator(ranges []newton.Range, opts ...newton.Option) (*Calculator, error) {
	s, err := newton.NewSolver(opts...)
	if err != nil {
		return nil, fmt.Errorf("finance: %w", err)
	}
	if ranges == nil {
		ranges = DefaultRateRanges
	}
	ranges = slices.Clone(ranges)
	for i, r := range ranges {
		if !r.Valid() {
			return nil, fmt.Errorf("finance: range %d %v: %w", i, r, newton.ErrInvalidRange)
		}
	}

	return &Calculator{solver: s, ranges: ranges}, nil
}

// IRR returns the internal rate of return of periodic amounts, starting from
// guess and scanning DefaultRateRanges. opts configure the solver; without
// them the shared default solver is used. Errors as for Calculator.IRR, plus
// newton.ErrOptionViolation.
func IRR(ctx context.Context, amounts []float64, guess float64, opts ...newton.Option) (float64, error) {
	c, err := calculatorFor(opts)
	if err != nil {
		return math.NaN(), err
	}

	return c.IRR(ctx, amounts, guess)
}

// XIRR returns the rate r with XNPV(r, flows) = 0. Arguments as for IRR.
func XIRR(ctx context.Context, flows []CashFlow, guess float64, opts ...newton.Option) (float64, error) {
	c, err := calculatorFor(opts)
	if err != nil {
		return math.NaN(), err
	}

	return c.XIRR(ctx, flows, guess)
}

func calculatorFor(opts []newton.Option) (*Calculator, error) {
	if len(opts) == 0 {
		return defaultCalculator, nil
	}

	return NewCalculator(nil, opts...)
}

// IRR returns r with NPV(r, amounts) = 0.
//
// Errors:
//   - ErrEmptyFlows, ErrInvalidAmount, ErrNoSignChange - input validation.
//   - ErrNoRate - wraps the newton error (ErrExhausted, ErrSeedLimit or the
//     context error).
func (c *Calculator) IRR(ctx context.Context, amounts []float64, guess float64) (float64, error) {
	if err := validateAmounts(amounts); err != nil {
		return math.NaN(), err
	}

	res, err := c.solver.BruteForce(ctx, guess, c.ranges,
		func(r float64) float64 { return NPV(r, amounts) },
		func(r float64) float64 { return npvDeriv(r, amounts) },
	)
	if err != nil {
		return math.NaN(), fmt.Errorf("%w: %w", ErrNoRate, err)
	}

	return res.Root, nil
}

// XIRR returns r with XNPV(r, flows) = 0. Errors as for IRR.
func (c *Calculator) XIRR(ctx context.Context, flows []CashFlow, guess float64) (float64, error) {
	times, amounts := yearFractions(flows)
	if err := validateAmounts(amounts); err != nil {
		return math.NaN(), err
	}

	res, err := c.solver.BruteForce(ctx, guess, c.ranges,
		func(r float64) float64 { return xnpv(r, times, amounts) },
		func(r float64) float64 { return xnpvDeriv(r, times, amounts) },
	)
	if err != nil {
		return math.NaN(), fmt.Errorf("%w: %w", ErrNoRate, err)
	}

	return res.Root, nil
}

// validateAmounts enforces a non-empty, finite, sign-changing series.
func validateAmounts(amounts []float64) error {
	if len(amounts) == 0 {
		return ErrEmptyFlows
	}

	var pos, neg bool
	for i, a := range amounts {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return fmt.Errorf("flow %d: %w", i, ErrInvalidAmount)
		}
		pos = pos || a > 0
		neg = neg || a < 0
	}
	if !pos || !neg {
		return ErrNoSignChange
	}

	return nil
}
