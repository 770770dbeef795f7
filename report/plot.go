// Package report - PNG chart rendering for convergence runs.
package report

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/gaussquad/convergence"
)

// Chart file names written by SavePlots.
const (
	ConvergencePlotFile = "convergence.png"
	ErrorPlotFile       = "error.png"
)

// errFloor replaces exact-zero errors on the log-scale chart; a log
// axis cannot place zero.
const errFloor = 1e-18

// ErrNoRecords indicates a plot request for an outcome without trials.
var ErrNoRecords = errors.New("report: outcome has no records to plot")

// SavePlots writes the two standard charts for a run into dir:
//
//   - convergence.png — approximation vs N, with a dashed horizontal
//     line at the reference value.
//   - error.png — relative (or absolute-fallback) error vs N on a
//     logarithmic Y axis.
//
// dir must exist and be writable. Returns ErrNoRecords when the
// outcome holds no trials.
func SavePlots(out convergence.Outcome, reference float64, dir string) error {
	if len(out.Records) == 0 {
		return ErrNoRecords
	}

	if err := saveConvergencePlot(out, reference, filepath.Join(dir, ConvergencePlotFile)); err != nil {
		return err
	}

	return saveErrorPlot(out, filepath.Join(dir, ErrorPlotFile))
}

// saveConvergencePlot renders the approximation series against the
// reference value.
func saveConvergencePlot(out convergence.Outcome, reference float64, path string) error {
	p := plot.New()
	p.Title.Text = "Gauss–Legendre convergence"
	p.X.Label.Text = "N (number of nodes)"
	p.Y.Label.Text = "integral value"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(out.Records))
	for i, rec := range out.Records {
		pts[i].X = float64(rec.N)
		pts[i].Y = rec.Approximation
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("report: convergence series: %w", err)
	}

	ref := plotter.XYs{
		{X: pts[0].X, Y: reference},
		{X: pts[len(pts)-1].X, Y: reference},
	}
	refLine, err := plotter.NewLine(ref)
	if err != nil {
		return fmt.Errorf("report: reference line: %w", err)
	}
	refLine.LineStyle.Color = color.RGBA{R: 0xcc, A: 0xff}
	refLine.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	p.Add(line, points, refLine)
	p.Legend.Add("approximation", line, points)
	p.Legend.Add("reference value", refLine)

	if err = p.Save(9*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}

// saveErrorPlot renders the error series on a logarithmic Y axis.
func saveErrorPlot(out convergence.Outcome, path string) error {
	p := plot.New()
	p.Title.Text = "Error decay with Gauss–Legendre"
	p.X.Label.Text = "N (number of nodes)"
	p.Y.Label.Text = "relative error"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(out.Records))
	for i, rec := range out.Records {
		pts[i].X = float64(rec.N)
		pts[i].Y = max(rec.Err, errFloor)
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("report: error series: %w", err)
	}

	p.Add(line, points)
	p.Legend.Add("error", line, points)

	if err = p.Save(9*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}
