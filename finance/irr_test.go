// SPDX-License-Identifier: MIT
package finance_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/rootfind/finance"
	"github.com/katalvlaran/rootfind/newton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestNPV checks discounting on hand-computed values.
func TestNPV(t *testing.T) {
	assert.InDelta(t, 0, finance.NPV(0.1, []float64{-100, 110}), 1e-12)
	assert.InDelta(t, 10, finance.NPV(0, []float64{-100, 50, 60}), 1e-12)
	assert.InDelta(t, 100, finance.NPV(0.5, []float64{100}), 1e-12)
	assert.Zero(t, finance.NPV(0.1, nil))
}

// TestIRR_KnownRates covers closed-form and reference rates.
func TestIRR_KnownRates(t *testing.T) {
	cases := []struct {
		name    string
		amounts []float64
		guess   float64
		want    float64
		delta   float64
	}{
		{"one period", []float64{-100, 110}, 0.1, 0.1, 1e-9},
		// 60v² + 60v − 100 = 0 with v = 1/(1+r).
		{"two periods", []float64{-100, 60, 60}, 0.1, 1/((-60+math.Sqrt(27600))/120) - 1, 1e-9},
		{"five periods", []float64{-70000, 12000, 15000, 18000, 21000, 26000}, 0.1, 0.0866, 1e-4},
		{"negative rate", []float64{-100, 50}, 0.1, -0.5, 1e-9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := finance.IRR(context.Background(), tc.amounts, tc.guess)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tc.delta)
			assert.Less(t, math.Abs(finance.NPV(got, tc.amounts)), newton.AcceptThreshold)
		})
	}
}

// TestIRR_PoorGuessRecovers verifies the scan rescues a guess where the
// NPV is undefined (1 + r = 0).
func TestIRR_PoorGuessRecovers(t *testing.T) {
	got, err := finance.IRR(context.Background(), []float64{-100, 110}, -1)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, got, 1e-9)
}

// TestIRR_Validation covers input errors.
func TestIRR_Validation(t *testing.T) {
	_, err := finance.IRR(context.Background(), nil, 0.1)
	assert.ErrorIs(t, err, finance.ErrEmptyFlows)

	_, err = finance.IRR(context.Background(), []float64{100, 200}, 0.1)
	assert.ErrorIs(t, err, finance.ErrNoSignChange)

	_, err = finance.IRR(context.Background(), []float64{-100, 0}, 0.1)
	assert.ErrorIs(t, err, finance.ErrNoSignChange)

	_, err = finance.IRR(context.Background(), []float64{-100, math.NaN()}, 0.1)
	assert.ErrorIs(t, err, finance.ErrInvalidAmount)
}

// TestIRR_NoRate verifies a series whose NPV never vanishes.
func TestIRR_NoRate(t *testing.T) {
	// 100 − 50v + 100v² has a negative discriminant.
	rate, err := finance.IRR(context.Background(), []float64{100, -50, 100}, 0.1)
	assert.ErrorIs(t, err, finance.ErrNoRate)
	assert.ErrorIs(t, err, newton.ErrExhausted)
	assert.True(t, math.IsNaN(rate))
}

// TestCalculator_ContextCanceled propagates cancellation through ErrNoRate.
func TestCalculator_ContextCanceled(t *testing.T) {
	calc, err := finance.NewCalculator(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = calc.IRR(ctx, []float64{100, -50, 100}, 0.1)
	assert.ErrorIs(t, err, finance.ErrNoRate)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestIRR_ContextCanceled stops the package-level scan after the guess.
func TestIRR_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rate, err := finance.IRR(ctx, []float64{100, -50, 100}, 0.1)
	assert.ErrorIs(t, err, finance.ErrNoRate)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, math.IsNaN(rate))

	_, err = finance.XIRR(ctx, []finance.CashFlow{
		{Date: day(2020, time.January, 1), Amount: 100},
		{Date: day(2021, time.January, 1), Amount: -50},
		{Date: day(2022, time.January, 1), Amount: 100},
	}, 0.1)
	assert.ErrorIs(t, err, context.Canceled)

	// A guess that already converges never reaches the cancellation check.
	rate, err = finance.IRR(ctx, []float64{-100, 110}, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, rate, 1e-9)
}

// TestIRR_Options applies solver options to a single call.
func TestIRR_Options(t *testing.T) {
	_, err := finance.IRR(context.Background(), []float64{100, -50, 100}, 0.1, newton.WithMaxSeeds(1))
	assert.ErrorIs(t, err, finance.ErrNoRate)
	assert.ErrorIs(t, err, newton.ErrSeedLimit)

	_, err = finance.XIRR(context.Background(), nil, 0.1, newton.WithTolerance(-1))
	assert.ErrorIs(t, err, newton.ErrOptionViolation)

	rate, err := finance.IRR(context.Background(), []float64{-100, 10, 10, 10, 10, 110}, 0.05,
		newton.WithTolerance(1e-12))
	require.NoError(t, err)
	assert.InDelta(t, 0.1, rate, 1e-10)
}

// TestNewCalculator_CopiesRanges keeps the calculator valid when the
// caller's slice changes afterwards.
func TestNewCalculator_CopiesRanges(t *testing.T) {
	ranges := []newton.Range{{Min: 0.05, Max: 0.2, Step: 0.05}}
	calc, err := finance.NewCalculator(ranges)
	require.NoError(t, err)

	ranges[0] = newton.Range{Min: 0, Max: 1, Step: 0}

	rate, err := calc.IRR(context.Background(), []float64{-100, 110}, -1)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, rate, 1e-9)
}

// TestNewCalculator_Validation rejects bad ranges and options.
func TestNewCalculator_Validation(t *testing.T) {
	_, err := finance.NewCalculator([]newton.Range{{Min: 0, Max: 1, Step: 0}})
	assert.ErrorIs(t, err, newton.ErrInvalidRange)

	_, err = finance.NewCalculator(nil, newton.WithTolerance(-1))
	assert.ErrorIs(t, err, newton.ErrOptionViolation)
}

// TestCalculator_CustomRanges limits the scan to a band without the rate.
func TestCalculator_CustomRanges(t *testing.T) {
	calc, err := finance.NewCalculator([]newton.Range{{Min: 0.5, Max: 0.6, Step: 0.05}},
		newton.WithMaxIterations(3))
	require.NoError(t, err)

	// Three iterations from 0.5 cannot reach 0.1 on this series.
	_, err = calc.IRR(context.Background(), []float64{-100, 10, 10, 10, 10, 110}, 10)
	assert.ErrorIs(t, err, finance.ErrNoRate)

	wide, err := finance.NewCalculator(nil, newton.WithTolerance(1e-12))
	require.NoError(t, err)
	rate, err := wide.IRR(context.Background(), []float64{-100, 10, 10, 10, 10, 110}, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, rate, 1e-10)
}

// TestXIRR_OneYear checks a leap-year single period: (1+r)^(366/365) = 1.1.
func TestXIRR_OneYear(t *testing.T) {
	flows := []finance.CashFlow{
		{Date: day(2020, time.January, 1), Amount: -1000},
		{Date: day(2021, time.January, 1), Amount: 1100},
	}
	want := math.Pow(1.1, 365.0/366.0) - 1

	got, err := finance.XIRR(context.Background(), flows, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-9)
}

// TestXIRR_Reference reproduces the classic spreadsheet example.
func TestXIRR_Reference(t *testing.T) {
	flows := []finance.CashFlow{
		{Date: day(2008, time.January, 1), Amount: -10000},
		{Date: day(2008, time.March, 1), Amount: 2750},
		{Date: day(2008, time.October, 30), Amount: 4250},
		{Date: day(2009, time.February, 15), Amount: 3250},
		{Date: day(2009, time.April, 1), Amount: 2750},
	}

	got, err := finance.XIRR(context.Background(), flows, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 0.3734, got, 1e-4)
	assert.InDelta(t, 0, finance.XNPV(got, flows), 1e-6)

	// Order of the input does not matter.
	shuffled := []finance.CashFlow{flows[3], flows[0], flows[4], flows[2], flows[1]}
	again, err := finance.XIRR(context.Background(), shuffled, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, got, again, 1e-12)
}

// TestXNPV_IgnoresClockTime verifies only calendar dates enter the year fraction.
func TestXNPV_IgnoresClockTime(t *testing.T) {
	plain := []finance.CashFlow{
		{Date: day(2024, time.March, 1), Amount: -500},
		{Date: day(2024, time.September, 1), Amount: 520},
	}
	timed := []finance.CashFlow{
		{Date: time.Date(2024, time.March, 1, 23, 59, 0, 0, time.UTC), Amount: -500},
		{Date: time.Date(2024, time.September, 1, 0, 1, 0, 0, time.UTC), Amount: 520},
	}
	assert.Equal(t, finance.XNPV(0.07, plain), finance.XNPV(0.07, timed))
	assert.Zero(t, finance.XNPV(0.07, nil))
}

// TestXIRR_Validation covers input errors.
func TestXIRR_Validation(t *testing.T) {
	_, err := finance.XIRR(context.Background(), nil, 0.1)
	assert.ErrorIs(t, err, finance.ErrEmptyFlows)

	_, err = finance.XIRR(context.Background(), []finance.CashFlow{
		{Date: day(2020, time.January, 1), Amount: 10},
		{Date: day(2021, time.January, 1), Amount: 20},
	}, 0.1)
	assert.ErrorIs(t, err, finance.ErrNoSignChange)
}
