// Package quad implements fixed-order Gauss–Legendre quadrature rules:
// node/weight generation on the reference interval [-1, 1], affine
// mapping onto arbitrary intervals, and weighted-sum evaluation of
// integrands.
//
// 🚀 What is Gauss–Legendre quadrature?
//
//	An N-point Gauss–Legendre rule integrates any polynomial of degree
//	≤ 2N−1 exactly, using the N roots of the degree-N Legendre
//	polynomial as evaluation points.  It is the workhorse for smooth
//	integrands on a single interval:
//	  • spectral & finite-element assembly
//	  • probability moments and expectations
//	  • physics integrals with known smoothness
//
// ✨ Key features:
//   - explicit Newton–Raphson root refinement (no external solver)
//   - rules are immutable values; generation is deterministic
//   - exact N=1 fast path (node 0, weight 2)
//   - palindromic node/weight symmetry guaranteed by construction
//   - affine MapTo for any interval a < b
//   - evaluation in ascending node order for repeatable sums
//
// ⚙️ Usage:
//
//	rule, err := quad.GaussLegendre(7, quad.DefaultOptions())
//	if err != nil {
//	  // handle ErrNonPositiveOrder / *NumericalError
//	}
//	mapped, err := rule.MapTo(quad.Interval{A: 1, B: 3})
//	approx := mapped.Integrate(func(x float64) float64 { return x * x })
//
// Performance:
//
//   - Generation: O(N²) — N roots, each refined with O(N) polynomial
//     evaluations per Newton step (step count is small and bounded).
//   - Mapping:    O(N)
//   - Evaluation: O(N) integrand calls plus one dot product.
//
// See example_test.go for runnable examples.
package quad
