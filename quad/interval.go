// Package quad - affine mapping of a reference rule onto [a, b].
package quad

// MapTo transforms a rule on the reference interval [-1, 1] onto the
// target interval iv = [a, b]:
//
//	x'_i = 0.5·(b−a)·x_i + 0.5·(b+a)
//	w'_i = 0.5·(b−a)·w_i
//
// The receiver is not modified; a fresh Rule is returned. Node order
// and the weight-sum invariant carry over: mapped weights sum to b−a.
//
// Errors: ErrInvalidInterval when a ≥ b; the rule is not touched.
//
// Complexity: O(n) time, O(n) space for the new node/weight slices.
func (r Rule) MapTo(iv Interval) (Rule, error) {
	if err := iv.Validate(); err != nil {
		return Rule{}, err
	}

	var (
		halfLen = 0.5 * (iv.B - iv.A)
		mid     = 0.5 * (iv.B + iv.A)
		nodes   = make([]float64, r.N)
		weights = make([]float64, r.N)
	)
	for i := 0; i < r.N; i++ {
		nodes[i] = halfLen*r.Nodes[i] + mid
		weights[i] = halfLen * r.Weights[i]
	}

	return Rule{N: r.N, Nodes: nodes, Weights: weights}, nil
}
