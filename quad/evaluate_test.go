package quad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaussquad/quad"
)

// TestSample checks element-wise evaluation order and independence.
func TestSample(t *testing.T) {
	xs := []float64{-1, 0, 2}
	ys := quad.Sample(func(x float64) float64 { return x * x }, xs)
	assert.Equal(t, []float64{1, 0, 4}, ys)

	assert.Empty(t, quad.Sample(math.Sin, nil))
}

// TestRule_Integrate_Constant mirrors the simplest sanity check: the
// integral of the constant 2 over [0, 1] is 2, for any order.
func TestRule_Integrate_Constant(t *testing.T) {
	two := func(float64) float64 { return 2 }

	for n := 1; n <= 6; n++ {
		ref, err := quad.GaussLegendre(n, quad.DefaultOptions())
		require.NoError(t, err)
		mapped, err := ref.MapTo(quad.Interval{A: 0, B: 1})
		require.NoError(t, err)

		assert.InDelta(t, 2.0, mapped.Integrate(two), 1e-14, "order %d", n)
	}
}

// TestRule_Integrate_PolynomialExactness verifies the defining property
// of Gauss–Legendre quadrature: an order-N rule integrates x^k exactly
// for every k ≤ 2N−1. Checked on [0, 2] against 2^(k+1)/(k+1).
func TestRule_Integrate_PolynomialExactness(t *testing.T) {
	iv := quad.Interval{A: 0, B: 2}

	for n := 1; n <= 10; n++ {
		ref, err := quad.GaussLegendre(n, quad.DefaultOptions())
		require.NoError(t, err)
		mapped, err := ref.MapTo(iv)
		require.NoError(t, err)

		for k := 0; k <= 2*n-1; k++ {
			exact := math.Pow(2, float64(k+1)) / float64(k+1)
			approx := mapped.Integrate(func(x float64) float64 { return math.Pow(x, float64(k)) })

			assert.InEpsilon(t, exact, approx, 1e-12, "order %d, degree %d", n, k)
		}
	}
}

// TestRule_Integrate_SmoothIntegrand checks convergence on a
// non-polynomial integrand: ∫ sin(x) dx over [0, π] = 2, already at
// modest orders well below 1e-10 relative error.
func TestRule_Integrate_SmoothIntegrand(t *testing.T) {
	ref, err := quad.GaussLegendre(8, quad.DefaultOptions())
	require.NoError(t, err)
	mapped, err := ref.MapTo(quad.Interval{A: 0, B: math.Pi})
	require.NoError(t, err)

	assert.InEpsilon(t, 2.0, mapped.Integrate(math.Sin), 1e-10)
}
