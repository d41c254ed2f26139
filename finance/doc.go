// SPDX-License-Identifier: MIT

// Package finance computes rates of return by inverting discounted cash-flow
// sums with the newton root finder.
//
// What is provided?
//
//	NPV / IRR   - periodic cash flows a₀, a₁, …, one per period:
//	              NPV(r) = Σ aᵢ / (1+r)^i,  IRR = r with NPV(r) = 0.
//	XNPV / XIRR - dated cash flows, Actual/365 year fractions from the
//	              earliest date:  XNPV(r) = Σ Aᵢ / (1+r)^((dᵢ−d₀)/365).
//
// Both rate solvers use the analytic derivative and the multi-start scan:
// the caller's guess first, then DefaultRateRanges (or the ranges given to
// NewCalculator). A rate is accepted when |NPV(r)| < newton.AcceptThreshold.
//
// Usage:
//
//	rate, err := finance.IRR(ctx, []float64{-70000, 12000, 15000, 18000, 21000, 26000}, 0.1)
//	if errors.Is(err, finance.ErrNoRate) {
//		// no rate in the scanned ranges
//	}
//
// Solver options apply per call:
//
//	rate, err := finance.IRR(ctx, amounts, 0.1, newton.WithTolerance(1e-12))
//
// Custom scan and tolerances:
//
//	calc, err := finance.NewCalculator(
//		[]newton.Range{{Min: -0.5, Max: 0.5, Step: 0.001}},
//		newton.WithTolerance(1e-12),
//	)
//	rate, err := calc.XIRR(ctx, flows, 0.05)
package finance
