// SPDX-License-Identifier: MIT
package newton_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/newton"
)

// BenchmarkFindRoot measures a converging run on x² − 2.
func BenchmarkFindRoot(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if math.IsNaN(newton.FindRoot(10, sqrt2, dsqrt2)) {
			b.Fatal("no convergence")
		}
	}
}

// BenchmarkFindRootDefaultDeriv measures the centered-difference adapter.
func BenchmarkFindRootDefaultDeriv(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = newton.FindRootDefaultDeriv(10, sqrt2)
	}
}

// BenchmarkFindRoot_NoConvergence measures the worst case: the full cap.
func BenchmarkFindRoot_NoConvergence(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = newton.FindRoot(0.5, noRoot, dnoRoot)
	}
}

// BenchmarkSolver_BruteForceExhausted scans 100 seeds with no root.
func BenchmarkSolver_BruteForceExhausted(b *testing.B) {
	s, err := newton.NewSolver()
	if err != nil {
		b.Fatal(err)
	}
	ranges := []newton.Range{{Min: -50, Max: 50, Step: 1}}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.BruteForce(ctx, 0.5, ranges, noRoot, dnoRoot)
	}
}
