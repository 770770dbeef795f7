// Package gaussquad computes definite integrals of smooth scalar
// functions with fixed-order Gauss–Legendre quadrature, and searches
// for the smallest order that beats a target relative error against a
// known closed-form value.
//
// 🚀 What is gaussquad?
//
//	A small, deterministic numerical library that brings together:
//		• Rule generation: Legendre roots by explicit Newton–Raphson,
//		  weights in closed form, exact symmetry by construction
//		• Interval mapping: affine transport of a reference rule onto
//		  any [a, b]
//		• Evaluation: weighted sums in a fixed, repeatable order
//		• Convergence search: first order meeting the tolerance, with
//		  an immutable per-trial record trail
//		• Reporting: console traces and convergence/error charts
//
// ✨ Why choose gaussquad?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – no hidden randomness, no library root solvers
//   - Honest failures – a rule that did not converge is an error,
//     never a silently inaccurate result
//
// Everything is organized under four packages:
//
//	quad/         — rules, interval mapping, weighted evaluation
//	convergence/  — the increasing-order search and its record types
//	report/       — console trace and PNG chart rendering
//	cmd/gaussquad — CLI for the reference problem ∫ x⁶ − x²·sin(2x) dx
//
// Quick start:
//
//	out, err := convergence.Search(f, quad.Interval{A: 1, B: 3},
//	    reference, convergence.DefaultOptions())
//
//	go get github.com/katalvlaran/gaussquad
package gaussquad
