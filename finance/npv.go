// SPDX-License-Identifier: MIT

package finance

import (
	"math"
	"slices"
	"time"
)

// NPV returns Σ amounts[i] / (1+rate)^i; amounts[0] is undiscounted.
func NPV(rate float64, amounts []float64) float64 {
	var (
		sum float64
		v   = 1 + rate
	)
	for i, a := range amounts {
		sum += a / math.Pow(v, float64(i))
	}

	return sum
}

// npvDeriv is dNPV/drate = Σ −i·amounts[i] / (1+rate)^(i+1).
func npvDeriv(rate float64, amounts []float64) float64 {
	var (
		sum float64
		v   = 1 + rate
	)
	for i, a := range amounts {
		if i == 0 {
			continue
		}
		sum -= float64(i) * a / math.Pow(v, float64(i+1))
	}

	return sum
}

// XNPV returns Σ Aᵢ / (1+rate)^tᵢ where tᵢ is the Actual/365 year fraction
// between the earliest flow date and the date of flow i. Flows may be in any
// order. An empty slice yields 0.
func XNPV(rate float64, flows []CashFlow) float64 {
	times, amounts := yearFractions(flows)

	return xnpv(rate, times, amounts)
}

func xnpv(rate float64, times, amounts []float64) float64 {
	var (
		sum float64
		v   = 1 + rate
	)
	for i, a := range amounts {
		sum += a / math.Pow(v, times[i])
	}

	return sum
}

// xnpvDeriv is dXNPV/drate = Σ −tᵢ·Aᵢ / (1+rate)^(tᵢ+1).
func xnpvDeriv(rate float64, times, amounts []float64) float64 {
	var (
		sum float64
		v   = 1 + rate
	)
	for i, a := range amounts {
		sum -= times[i] * a / math.Pow(v, times[i]+1)
	}

	return sum
}

// yearFractions sorts a copy of flows by date and returns parallel slices of
// year fractions from the first date and amounts. Dates are reduced to their
// calendar day so that clock time and DST shifts do not leak into t.
func yearFractions(flows []CashFlow) ([]float64, []float64) {
	if len(flows) == 0 {
		return nil, nil
	}
	sorted := slices.Clone(flows)
	slices.SortStableFunc(sorted, func(a, b CashFlow) int {
		return a.Date.Compare(b.Date)
	})

	var (
		times   = make([]float64, len(sorted))
		amounts = make([]float64, len(sorted))
		d0      = calendarDay(sorted[0].Date)
	)
	for i, cf := range sorted {
		days := math.Round(calendarDay(cf.Date).Sub(d0).Hours() / 24)
		times[i] = days / DaysPerYear
		amounts[i] = cf.Amount
	}

	return times, amounts
}

// calendarDay maps t to midnight UTC of its calendar date in t's location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
