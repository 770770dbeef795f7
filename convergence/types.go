// Package convergence - result types, sentinel errors and options for
// the order search.
//
// Design principles:
//   - Records are immutable after creation; the sequence is append-only
//     and owned exclusively by Search until it returns.
//   - Cap exhaustion and a zero reference value are valid end states,
//     carried in the Outcome; only defective inputs and numerical
//     failures surface as errors.
package convergence

import (
	"errors"

	"github.com/katalvlaran/gaussquad/quad"
)

// Sentinel errors returned by Search input validation.
var (
	// ErrNilIntegrand indicates that a nil integrand was supplied.
	ErrNilIntegrand = errors.New("convergence: integrand must be non-nil")

	// ErrBadTolerance indicates a non-positive stopping tolerance.
	ErrBadTolerance = errors.New("convergence: Tolerance must be positive")

	// ErrBadMaxOrder indicates an order cap below 1.
	ErrBadMaxOrder = errors.New("convergence: MaxOrder must be positive")

	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("convergence: Workers must be positive")
)

// State describes where the search ended.
//
// The machine has exactly three states: it starts Running and
// terminates in Succeeded (tolerance met) or FailedCapped (order cap
// reached first). No other transitions exist.
type State int

const (
	// Running is the initial state; a returned Outcome never carries it
	// except as the zero value alongside an error.
	Running State = iota

	// Succeeded means some order met the tolerance.
	Succeeded

	// FailedCapped means MaxOrder was exhausted without success.
	FailedCapped
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Succeeded:
		return "Succeeded"
	case FailedCapped:
		return "FailedCapped"
	default:
		return "Unknown"
	}
}

// Record captures one trial order. Immutable after creation.
type Record struct {
	// N is the trial order.
	N int
	// Approximation is the quadrature result at order N.
	Approximation float64
	// Err is the relative error against the reference value, or the
	// absolute error when AbsoluteFallback is set. Never negative.
	Err float64
	// AbsoluteFallback marks that the reference value was zero, where
	// relative error is undefined, and Err holds |approximation|.
	AbsoluteFallback bool
}

// Outcome is the full result of a search run.
type Outcome struct {
	// Records holds one entry per trial, in ascending order of N.
	Records []Record
	// First points at the first record satisfying the tolerance, or is
	// nil when the search was capped.
	First *Record
	// State is Succeeded or FailedCapped.
	State State
}

// Succeeded reports whether some order met the tolerance.
func (o Outcome) Succeeded() bool { return o.State == Succeeded }

// Best returns the last record produced, which carries the smallest
// error a capped run achieved. Nil when no trial ran.
func (o Outcome) Best() *Record {
	if len(o.Records) == 0 {
		return nil
	}

	return &o.Records[len(o.Records)-1]
}

// Options configures the order search.
//
// Tolerance – stop once the trial error drops below this value.
//
//	Must be > 0. Default 1e-10.
//
// MaxOrder  – hard cap on the trial order; reaching it without success
//
//	ends the search in FailedCapped. Must be ≥ 1. Default 50.
//
// Workers   – number of concurrent trials per batch. 1 (the default)
//
//	runs strictly sequentially; higher values precompute batches of
//	orders while preserving the first-passing-order result.
//
// Generator – options forwarded to quad.GaussLegendre for every trial.
type Options struct {
	Tolerance float64
	MaxOrder  int
	Workers   int
	Generator quad.Options
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithTolerance overrides the stopping tolerance.
// Must pass a positive value; zero or negative cause ErrBadTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// WithMaxOrder overrides the order cap.
// Must pass a value ≥ 1; smaller values cause ErrBadMaxOrder.
func WithMaxOrder(max int) Option {
	return func(o *Options) {
		if max < 1 {
			panic(ErrBadMaxOrder.Error())
		}
		o.MaxOrder = max
	}
}

// WithWorkers sets how many trial orders run concurrently per batch.
// Must pass a value ≥ 1; smaller values cause ErrBadWorkers.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		if workers < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = workers
	}
}

// WithGeneratorOptions forwards rule-generation options to every trial.
func WithGeneratorOptions(gen quad.Options) Option {
	return func(o *Options) {
		o.Generator = gen
	}
}

// DefaultOptions returns search options with the reference defaults:
// Tolerance 1e-10, MaxOrder 50, sequential execution, and
// quad.DefaultOptions() for rule generation.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		Tolerance: 1e-10,
		MaxOrder:  50,
		Workers:   1,
		Generator: quad.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// validate checks an Options value built by hand.
func (o Options) validate() error {
	if o.Tolerance <= 0 {
		return ErrBadTolerance
	}
	if o.MaxOrder < 1 {
		return ErrBadMaxOrder
	}
	if o.Workers < 1 {
		return ErrBadWorkers
	}

	return nil
}
