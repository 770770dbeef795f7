// Package convergence drives Gauss–Legendre quadrature across
// increasing orders until the approximation of a definite integral
// matches a known reference value to a target relative error.
//
// 🚀 What does the search do?
//
//	For N = 1, 2, 3, … it generates the order-N rule, maps it onto the
//	target interval, evaluates the integrand, and compares the result
//	against the caller-supplied reference value. The loop stops at the
//	first order whose relative error drops below the tolerance, or at
//	the order cap. Every trial leaves behind one immutable Record, so
//	callers can print a trace or plot convergence afterwards.
//
// ✨ Key features:
//   - append-only Record sequence retained for the whole run
//   - strict first-passing-order semantics (no overshoot)
//   - absolute-error fallback when the reference value is zero,
//     tagged on the record instead of failing
//   - cap exhaustion is a normal outcome (FailedCapped), not an error
//   - optional batched parallel trials that preserve the exact
//     sequential result
//
// ⚙️ Usage:
//
//	out, err := convergence.Search(f, quad.Interval{A: 1, B: 3},
//	    reference, convergence.DefaultOptions())
//	if err != nil {
//	  // *quad.NumericalError or invalid inputs
//	}
//	if out.Succeeded() {
//	  fmt.Println("first passing order:", out.First.N)
//	}
//
// The search owns no I/O; see package report for console traces and
// convergence/error charts built from the Record sequence.
package convergence
