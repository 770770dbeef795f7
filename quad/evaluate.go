// Package quad - weighted-sum evaluation of an integrand under a rule.
package quad

import "gonum.org/v1/gonum/floats"

// Integrate applies the rule to f and returns Σ_i w_i · f(x_i).
//
// f is evaluated once per node, independently, in ascending node
// order; the accumulation runs in that same fixed order so results
// are repeatable across runs. The receiver is read-only.
//
// Complexity: O(n) integrand calls plus one O(n) dot product.
func (r Rule) Integrate(f Integrand) float64 {
	return floats.Dot(r.Weights, Sample(f, r.Nodes))
}
