// Package quad - core types, sentinel errors and configuration options
// for Gauss–Legendre rule generation.
//
// Design principles:
//   - Strict sentinels: callers branch with errors.Is; no fmt.Errorf
//     where a sentinel suffices.
//   - Rules are plain values; nothing in this package mutates a Rule
//     after it has been returned.
//   - Options follow the functional-options pattern with explicit
//     DefaultOptions(), mirroring the rest of the module.
package quad

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by rule generation and interval mapping.
var (
	// ErrNonPositiveOrder indicates that a rule of order N < 1 was requested.
	ErrNonPositiveOrder = errors.New("quad: order must be positive")

	// ErrInvalidInterval indicates an integration interval with A >= B.
	ErrInvalidInterval = errors.New("quad: interval must satisfy A < B")

	// ErrBadRootTolerance indicates a non-positive Newton–Raphson tolerance.
	ErrBadRootTolerance = errors.New("quad: RootTolerance must be positive")

	// ErrBadIterationCap indicates a non-positive Newton–Raphson iteration cap.
	ErrBadIterationCap = errors.New("quad: MaxNewtonIterations must be positive")

	// ErrNoConvergence is the sentinel wrapped by *NumericalError when
	// Newton–Raphson fails to refine a Legendre root within the cap.
	ErrNoConvergence = errors.New("quad: Newton–Raphson did not converge")
)

// NumericalError reports a Newton–Raphson refinement failure for one
// Legendre root. It wraps ErrNoConvergence, so both forms work:
//
//	errors.Is(err, quad.ErrNoConvergence)
//	var ne *quad.NumericalError; errors.As(err, &ne)
type NumericalError struct {
	// Order is the requested rule order N.
	Order int
	// Root is the 0-based index of the root whose refinement failed.
	Root int
}

// Error implements the error interface.
func (e *NumericalError) Error() string {
	return fmt.Sprintf("quad: Newton–Raphson did not converge for root %d of order %d", e.Root, e.Order)
}

// Unwrap exposes ErrNoConvergence for errors.Is matching.
func (e *NumericalError) Unwrap() error { return ErrNoConvergence }

// Integrand is a pure scalar function ℝ → ℝ. It must be side-effect
// free for evaluation results to be deterministic.
type Integrand func(x float64) float64

// Sample evaluates f element-wise over xs and returns the values in
// the same order. Each node is evaluated independently; f sees no
// cross-node state.
func Sample(f Integrand, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	return ys
}

// Interval is a closed integration interval [A, B] with A < B.
type Interval struct {
	A float64
	B float64
}

// Validate returns ErrInvalidInterval unless A < B.
func (iv Interval) Validate() error {
	if !(iv.A < iv.B) {
		return ErrInvalidInterval
	}

	return nil
}

// Length returns B − A.
func (iv Interval) Length() float64 { return iv.B - iv.A }

// Rule is an N-point quadrature rule: index-aligned nodes and weights.
//
// Invariants (established by GaussLegendre and preserved by MapTo):
//   - len(Nodes) == len(Weights) == N
//   - Nodes strictly increasing, all inside the rule's interval
//   - Weights strictly positive
//   - sum(Weights) equals the interval length (2 on [-1, 1])
type Rule struct {
	// N is the rule order (number of nodes).
	N int
	// Nodes are the evaluation points in strictly increasing order.
	Nodes []float64
	// Weights are the quadrature weights, index-aligned with Nodes.
	Weights []float64
}

// Options configures Gauss–Legendre rule generation.
//
// RootTolerance       – Newton–Raphson stops once the update magnitude
//
//	falls below this value. Must be > 0. Default 1e-15.
//
// MaxNewtonIterations – hard cap on Newton steps per root; exceeding it
//
//	yields *NumericalError. Must be > 0. Default 100.
type Options struct {
	RootTolerance       float64
	MaxNewtonIterations int
}

// Option represents a functional option for configuring generation.
type Option func(*Options)

// WithRootTolerance overrides the Newton–Raphson convergence tolerance.
// Must pass a positive value; zero or negative cause ErrBadRootTolerance.
func WithRootTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadRootTolerance.Error())
		}
		o.RootTolerance = tol
	}
}

// WithMaxNewtonIterations overrides the per-root iteration cap.
// Must pass a positive value; zero or negative cause ErrBadIterationCap.
func WithMaxNewtonIterations(cap int) Option {
	return func(o *Options) {
		if cap <= 0 {
			panic(ErrBadIterationCap.Error())
		}
		o.MaxNewtonIterations = cap
	}
}

// DefaultOptions returns generation options with sensible defaults:
//
//   - RootTolerance:       1e-15 (near machine epsilon; roots are
//     refined to full double precision)
//   - MaxNewtonIterations: 100 (generous; convergence is quadratic and
//     typically takes well under ten steps)
func DefaultOptions(opts ...Option) Options {
	o := Options{
		RootTolerance:       1e-15,
		MaxNewtonIterations: 100,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// validate checks an Options value built by hand (bypassing the
// functional setters).
func (o Options) validate() error {
	if o.RootTolerance <= 0 {
		return ErrBadRootTolerance
	}
	if o.MaxNewtonIterations <= 0 {
		return ErrBadIterationCap
	}

	return nil
}
