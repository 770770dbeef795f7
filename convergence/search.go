// Package convergence - the order-search loop.
//
// Contract:
//   - Trials run for N = 1..MaxOrder in ascending order; the first N
//     whose error beats the tolerance wins, regardless of Workers.
//   - quad failures (*quad.NumericalError, quad.ErrInvalidInterval)
//     abort immediately with a zero Outcome; no partial results.
//   - A capped run is NOT an error: the Outcome carries every record
//     plus State == FailedCapped so the caller can raise MaxOrder.
//
// Complexity: O(MaxOrder³) worst case — order-N generation is O(N²)
// and at most MaxOrder orders are tried. In practice smooth integrands
// stop after a handful of trials.
package convergence

import (
	"math"
	"sync"

	"github.com/katalvlaran/gaussquad/quad"
)

// Search approximates ∫f over iv at increasing orders until the error
// against reference drops below opts.Tolerance or opts.MaxOrder is
// exhausted.
//
// The error measure is |approx − reference| / |reference|; when
// reference is exactly zero that ratio is undefined, so the search
// falls back to |approx| and tags the record (AbsoluteFallback).
//
// Errors: ErrNilIntegrand, quad.ErrInvalidInterval, option sentinels,
// and any rule-generation failure. Cap exhaustion is not an error.
func Search(f quad.Integrand, iv quad.Interval, reference float64, opts Options) (Outcome, error) {
	if f == nil {
		return Outcome{}, ErrNilIntegrand
	}
	if err := iv.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := opts.validate(); err != nil {
		return Outcome{}, err
	}

	if opts.Workers > 1 {
		return searchParallel(f, iv, reference, opts)
	}

	return searchSequential(f, iv, reference, opts)
}

// searchSequential is the reference loop: one trial at a time,
// short-circuiting on the first success.
func searchSequential(f quad.Integrand, iv quad.Interval, reference float64, opts Options) (Outcome, error) {
	var (
		out   = Outcome{Records: make([]Record, 0, opts.MaxOrder)}
		state = Running
		rec   Record
		err   error
	)

	for n := 1; n <= opts.MaxOrder && state == Running; n++ {
		rec, err = trial(n, f, iv, reference, opts.Generator)
		if err != nil {
			return Outcome{}, err
		}

		out.Records = append(out.Records, rec)
		if rec.Err < opts.Tolerance {
			state = Succeeded
		}
	}
	if state == Running {
		state = FailedCapped
	}

	return finish(out, state), nil
}

// searchParallel precomputes batches of opts.Workers consecutive orders
// concurrently, then folds the batch back in ascending order. The fold
// appends and tests records exactly like the sequential loop, so the
// returned Outcome is identical; trials past the first success are
// simply discarded.
func searchParallel(f quad.Integrand, iv quad.Interval, reference float64, opts Options) (Outcome, error) {
	var (
		out   = Outcome{Records: make([]Record, 0, opts.MaxOrder)}
		state = Running
		wg    sync.WaitGroup
	)

	for base := 1; base <= opts.MaxOrder && state == Running; base += opts.Workers {
		hi := min(base+opts.Workers-1, opts.MaxOrder)
		recs := make([]Record, hi-base+1)
		errs := make([]error, hi-base+1)

		for n := base; n <= hi; n++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				recs[n-base], errs[n-base] = trial(n, f, iv, reference, opts.Generator)
			}(n)
		}
		wg.Wait()

		// Ordered reduction: scan the batch in ascending N so
		// first-passing-order semantics survive the concurrency.
		for j := range recs {
			if errs[j] != nil {
				return Outcome{}, errs[j]
			}

			out.Records = append(out.Records, recs[j])
			if recs[j].Err < opts.Tolerance {
				state = Succeeded
				break
			}
		}
	}
	if state == Running {
		state = FailedCapped
	}

	return finish(out, state), nil
}

// trial runs one order: generate, map, evaluate, measure.
func trial(n int, f quad.Integrand, iv quad.Interval, reference float64, gen quad.Options) (Record, error) {
	ref, err := quad.GaussLegendre(n, gen)
	if err != nil {
		return Record{}, err
	}
	mapped, err := ref.MapTo(iv)
	if err != nil {
		return Record{}, err
	}

	approx := mapped.Integrate(f)
	errVal, fallback := measure(approx, reference)

	return Record{N: n, Approximation: approx, Err: errVal, AbsoluteFallback: fallback}, nil
}

// measure computes the relative error, or the absolute error (tagged)
// when the reference value is zero.
func measure(approx, reference float64) (errVal float64, fallback bool) {
	if reference == 0 {
		return math.Abs(approx), true
	}

	return math.Abs(approx-reference) / math.Abs(reference), false
}

// finish pins the First pointer once the record slice is final and
// stamps the terminal state.
func finish(out Outcome, state State) Outcome {
	out.State = state
	if state == Succeeded {
		out.First = &out.Records[len(out.Records)-1]
	}

	return out
}
