// Package report - console rendering of the trial trace and summary.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/gaussquad/convergence"
)

// Console writes a human-readable trace of a search run to a single
// io.Writer. The zero value is not usable; construct with NewConsole.
type Console struct {
	out  io.Writer
	good *color.Color
	bad  *color.Color
}

// NewConsole returns a console renderer writing to w. With noColor set
// the summary line is plain text, which also keeps output stable in
// tests and pipes.
func NewConsole(w io.Writer, noColor bool) *Console {
	good := color.New(color.FgGreen, color.Bold)
	bad := color.New(color.FgRed, color.Bold)
	if noColor {
		good.DisableColor()
		bad.DisableColor()
	}

	return &Console{out: w, good: good, bad: bad}
}

// Trace prints one trial line. Records tagged AbsoluteFallback are
// marked, since their error column holds an absolute value.
func (c *Console) Trace(rec convergence.Record) {
	tag := ""
	if rec.AbsoluteFallback {
		tag = " (absolute)"
	}
	fmt.Fprintf(c.out, "N = %2d, integral ≈ %.12f, error = %.6e%s\n",
		rec.N, rec.Approximation, rec.Err, tag)
}

// Summary prints the terminal line for the run: the first passing
// order on success, the best achieved error on cap exhaustion.
func (c *Console) Summary(out convergence.Outcome, tolerance float64) {
	if out.Succeeded() {
		c.good.Fprintf(c.out, "first N with error < %g is N = %d, integral ≈ %.12f\n",
			tolerance, out.First.N, out.First.Approximation)

		return
	}

	best := out.Best()
	if best == nil {
		c.bad.Fprintln(c.out, "no trials were run")

		return
	}
	c.bad.Fprintf(c.out, "no order ≤ %d met tolerance %g; best error = %.6e (consider raising the cap)\n",
		best.N, tolerance, best.Err)
}

// Render prints the full trace followed by the summary.
func (c *Console) Render(out convergence.Outcome, tolerance float64) {
	for _, rec := range out.Records {
		c.Trace(rec)
	}
	c.Summary(out, tolerance)
}
