package convergence_test

import "math"

// The reference problem used across the end-to-end tests:
// f(x) = x⁶ − x²·sin(2x) over [1, 3], with the closed-form
// antiderivative F(x) = x⁷/7 + (x²/2)·cos(2x) − (x/2)·sin(2x) − ¼·cos(2x).

func refIntegrand(x float64) float64 {
	return math.Pow(x, 6) - x*x*math.Sin(2*x)
}

func refAntiderivative(x float64) float64 {
	return math.Pow(x, 7)/7 + x*x/2*math.Cos(2*x) - x/2*math.Sin(2*x) - 0.25*math.Cos(2*x)
}

// refValue is F(3) − F(1) ≈ 317.3442466738264.
func refValue() float64 {
	return refAntiderivative(3) - refAntiderivative(1)
}
