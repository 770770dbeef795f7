// Package report renders convergence search results: a per-trial
// console trace with a colored summary, and PNG charts of the
// approximation and of the log-scale error versus the quadrature order.
//
// The search itself performs no I/O; this package consumes the
// immutable Record sequence after the fact, so rendering can never
// perturb the numerics.
//
// ⚙️ Usage:
//
//	out, _ := convergence.Search(f, iv, reference, opts)
//
//	c := report.NewConsole(os.Stdout, false)
//	c.Render(out, opts.Tolerance)
//
//	if err := report.SavePlots(out, reference, "charts"); err != nil {
//	  // directory not writable, or nothing to plot
//	}
//
// SavePlots writes convergence.png (approximation vs N with a dashed
// reference line) and error.png (relative error vs N on a log axis).
package report
