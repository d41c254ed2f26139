// SPDX-License-Identifier: MIT

package finance

import (
	"errors"
	"time"

	"github.com/katalvlaran/rootfind/newton"
)

// Sentinel errors for cash-flow validation and rate search.
var (
	// ErrEmptyFlows is returned when no cash flow is supplied.
	ErrEmptyFlows = errors.New("finance: no cash flows")

	// ErrNoSignChange is returned when the flows are not a mix of positive
	// and negative amounts; no rate can zero such a sum.
	ErrNoSignChange = errors.New("finance: cash flows need both positive and negative amounts")

	// ErrInvalidAmount is returned for NaN or ±Inf amounts.
	ErrInvalidAmount = errors.New("finance: cash flow amount is NaN or Inf")

	// ErrNoRate wraps the newton error when no acceptable rate was found.
	ErrNoRate = errors.New("finance: no rate found")
)

// DaysPerYear is the Actual/365 day-count denominator of XNPV and XIRR.
const DaysPerYear = 365.0

// DefaultRateRanges are the fallback seeds scanned after the caller's guess:
// fine steps over the usual (−99%, 100%) band, coarse steps up to 1000%.
var DefaultRateRanges = []newton.Range{
	{Min: -0.99, Max: 1, Step: 0.01},
	{Min: 1, Max: 10, Step: 0.1},
}

// CashFlow is one dated payment. Negative amounts are outflows.
type CashFlow struct {
	Date   time.Time
	Amount float64
}
