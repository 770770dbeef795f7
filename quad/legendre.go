// Package quad - Gauss–Legendre node/weight generation on [-1, 1].
//
// The N nodes of the order-N rule are the roots of the degree-N
// Legendre polynomial P_N. Each root is located by Newton–Raphson from
// the standard asymptotic initial guess and refined until the update
// magnitude drops below Options.RootTolerance.
//
// Contract:
//   - n must be ≥ 1; otherwise ErrNonPositiveOrder.
//   - On success the returned Rule satisfies every invariant listed on
//     the Rule type (strictly increasing nodes, positive weights,
//     weight sum 2, palindromic symmetry).
//   - On refinement failure no rule is returned: the caller gets a
//     *NumericalError naming the order and the offending root index.
//
// Complexity: O(n²) — n/2 roots, each Newton step evaluates the
// three-term recurrence in O(n).
package quad

import "math"

// legendreAt evaluates P_n(x) and P_{n-1}(x) by the three-term
// recurrence (k+1)·P_{k+1} = (2k+1)·x·P_k − k·P_{k-1}, with
// P_0 = 1, P_1 = x. Requires n ≥ 1.
func legendreAt(n int, x float64) (pn, pnm1 float64) {
	pnm1, pn = 1.0, x
	var next float64
	for k := 1; k < n; k++ {
		next = (float64(2*k+1)*x*pn - float64(k)*pnm1) / float64(k+1)
		pnm1, pn = pn, next
	}

	return pn, pnm1
}

// legendreDeriv returns P'_n(x) = n·(x·P_n(x) − P_{n-1}(x)) / (x²−1).
// Valid for |x| < 1, which holds for every interior Newton iterate.
func legendreDeriv(n int, x, pn, pnm1 float64) float64 {
	return float64(n) * (x*pn - pnm1) / (x*x - 1)
}

// GaussLegendre generates the order-n Gauss–Legendre rule on [-1, 1].
//
// Roots are computed for the positive half-axis only and mirrored, so
// the palindromic identities x_i == −x_{n−1−i} and w_i == w_{n−1−i}
// hold exactly, not merely to rounding. For odd n the middle node is
// pinned to 0 (P_n is odd there; the root is exact).
//
// Errors:
//   - ErrNonPositiveOrder for n < 1.
//   - ErrBadRootTolerance / ErrBadIterationCap for invalid opts.
//   - *NumericalError (wrapping ErrNoConvergence) if any root fails to
//     converge within opts.MaxNewtonIterations.
func GaussLegendre(n int, opts Options) (Rule, error) {
	if n < 1 {
		return Rule{}, ErrNonPositiveOrder
	}
	if err := opts.validate(); err != nil {
		return Rule{}, err
	}

	// P_1(x) = x has the single root 0 with weight 2; no iteration.
	if n == 1 {
		return Rule{N: 1, Nodes: []float64{0}, Weights: []float64{2}}, nil
	}

	var (
		nodes   = make([]float64, n)
		weights = make([]float64, n)
		half    = n / 2
		x, dx   float64
		pn, pm  float64
		dp, w   float64
	)

	// Refine the half roots in (0, 1); index i counts from the largest
	// root inward, matching the asymptotic guess ordering.
	for i := 0; i < half; i++ {
		x = math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))

		converged := false
		for it := 0; it < opts.MaxNewtonIterations; it++ {
			pn, pm = legendreAt(n, x)
			dp = legendreDeriv(n, x, pn, pm)
			dx = pn / dp
			x -= dx
			if math.Abs(dx) < opts.RootTolerance {
				converged = true
				break
			}
		}
		if !converged {
			return Rule{}, &NumericalError{Order: n, Root: i}
		}

		pn, pm = legendreAt(n, x)
		dp = legendreDeriv(n, x, pn, pm)
		w = 2 / ((1 - x*x) * dp * dp)

		// Mirror: x is the i-th largest root, so it lands at the top
		// of the ascending order and −x at the bottom.
		nodes[n-1-i], weights[n-1-i] = x, w
		nodes[i], weights[i] = -x, w
	}

	// Odd order: the middle root of an odd polynomial is exactly 0.
	if n%2 == 1 {
		pn, pm = legendreAt(n, 0)
		dp = legendreDeriv(n, 0, pn, pm)
		nodes[half] = 0
		weights[half] = 2 / (dp * dp)
	}

	return Rule{N: n, Nodes: nodes, Weights: weights}, nil
}
