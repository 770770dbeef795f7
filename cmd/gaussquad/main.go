// Command gaussquad solves the reference problem
// ∫ₐᵇ [x⁶ − x²·sin(2x)] dx with Gauss–Legendre quadrature and searches
// for the smallest order whose relative error against the closed-form
// antiderivative beats the tolerance.
//
// Usage:
//
//	gaussquad [-a 1] [-b 3] [-tol 1e-10] [-max 50] [-workers 1]
//	          [-plots DIR] [-no-color]
//
// Exit codes: 0 on success, 1 when the order cap is exhausted, 2 on
// usage or numerical errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/gaussquad/convergence"
	"github.com/katalvlaran/gaussquad/quad"
	"github.com/katalvlaran/gaussquad/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// integrand is the fixed integrand f(x) = x⁶ − x²·sin(2x).
func integrand(x float64) float64 {
	return math.Pow(x, 6) - x*x*math.Sin(2*x)
}

// antiderivative is the closed-form antiderivative
// F(x) = x⁷/7 + (x²/2)·cos(2x) − (x/2)·sin(2x) − ¼·cos(2x),
// used as the ground-truth oracle: reference = F(b) − F(a).
func antiderivative(x float64) float64 {
	return math.Pow(x, 7)/7 + x*x/2*math.Cos(2*x) - x/2*math.Sin(2*x) - 0.25*math.Cos(2*x)
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gaussquad", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		a       = fs.Float64("a", 1, "lower integration bound")
		b       = fs.Float64("b", 3, "upper integration bound")
		tol     = fs.Float64("tol", 1e-10, "target relative error")
		maxN    = fs.Int("max", 50, "order cap for the search")
		workers = fs.Int("workers", 1, "concurrent trials per batch")
		plots   = fs.String("plots", "", "directory for convergence/error charts (empty = no charts)")
		noColor = fs.Bool("no-color", false, "disable colored summary output")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	iv := quad.Interval{A: *a, B: *b}
	if err := iv.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	reference := antiderivative(*b) - antiderivative(*a)

	opts := convergence.DefaultOptions()
	opts.Tolerance = *tol
	opts.MaxOrder = *maxN
	opts.Workers = *workers
	if err := validFlags(opts); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fmt.Fprintf(stdout, "Gauss–Legendre quadrature: ∫ [x⁶ − x²·sin(2x)] dx over [%g, %g]\n", iv.A, iv.B)
	fmt.Fprintf(stdout, "reference value: %.12f\n", reference)

	out, err := convergence.Search(integrand, iv, reference, opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	report.NewConsole(stdout, *noColor).Render(out, opts.Tolerance)

	if *plots != "" {
		if err = os.MkdirAll(*plots, 0o755); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		if err = report.SavePlots(out, reference, *plots); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		fmt.Fprintf(stdout, "charts saved: %s, %s\n", report.ConvergencePlotFile, report.ErrorPlotFile)
	}

	if !out.Succeeded() {
		return 1
	}

	return 0
}

// validFlags surfaces option errors before the search does, so usage
// mistakes exit with code 2 rather than 1.
func validFlags(opts convergence.Options) error {
	switch {
	case opts.Tolerance <= 0:
		return convergence.ErrBadTolerance
	case opts.MaxOrder < 1:
		return convergence.ErrBadMaxOrder
	case opts.Workers < 1:
		return convergence.ErrBadWorkers
	default:
		return nil
	}
}
