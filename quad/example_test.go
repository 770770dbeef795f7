package quad_test

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gaussquad/quad"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGaussLegendre
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Generate the classic 3-point rule on [-1, 1]. The nodes are the
//	roots of P_3 (0 and ±√(3/5)) and the weights are 8/9 and 5/9.
//
// Complexity: O(N²) generation.
func ExampleGaussLegendre() {
	rule, err := quad.GaussLegendre(3, quad.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("nodes   = [%.4f %.4f %.4f]\n", rule.Nodes[0], rule.Nodes[1], rule.Nodes[2])
	fmt.Printf("weights = [%.4f %.4f %.4f]\n", rule.Weights[0], rule.Weights[1], rule.Weights[2])
	// Output:
	// nodes   = [-0.7746 0.0000 0.7746]
	// weights = [0.5556 0.8889 0.5556]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleRule_MapTo
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Map a reference rule onto [1, 3]. The weight sum tracks the
//	interval length: 2 on the reference interval, b−a afterwards.
func ExampleRule_MapTo() {
	ref, _ := quad.GaussLegendre(4, quad.DefaultOptions())
	mapped, err := ref.MapTo(quad.Interval{A: 1, B: 3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("weight sum = %.4f\n", floats.Sum(mapped.Weights))
	// Output:
	// weight sum = 2.0000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleRule_Integrate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	∫₁³ x² dx = 26/3. A 2-point rule is exact for polynomials of
//	degree ≤ 3, so even N=2 reproduces the value to full precision.
func ExampleRule_Integrate() {
	ref, _ := quad.GaussLegendre(2, quad.DefaultOptions())
	mapped, _ := ref.MapTo(quad.Interval{A: 1, B: 3})

	approx := mapped.Integrate(func(x float64) float64 { return x * x })
	fmt.Printf("integral ≈ %.6f\n", approx)
	// Output:
	// integral ≈ 8.666667
}
