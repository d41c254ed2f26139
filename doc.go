// Package rootfind is a small numeric kernel for solving f(x) = 0, with the
// financial rate solvers built on top of it.
//
// What is inside?
//
//	newton/   - Newton-Raphson with an analytic or centered-difference
//	            derivative, and a multi-start brute-force search that falls
//	            back to (min, max, step) seed ranges when the first guess fails
//	finance/  - NPV, XNPV and the IRR / XIRR rate solvers
//	cmd/      - the rootfind CLI (irr, xirr, version)
//	internal/ - YAML / TOML solver profiles for the CLI
//
// Two API layers live side by side:
//
//   - FindRoot, FindRootDefaultDeriv and FindRootBruteForce return NaN on
//     failure and never allocate an error.
//   - Solver returns a Result plus a sentinel error (ErrNoConvergence,
//     ErrExhausted, ...) and takes a context for long scans.
//
// Quick example:
//
//	r := newton.FindRoot(1,
//		func(x float64) float64 { return x*x - 2 },
//		func(x float64) float64 { return 2 * x })
//	// r ≈ 1.414214
//
//	go get github.com/katalvlaran/rootfind
package rootfind
