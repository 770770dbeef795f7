package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaussquad/convergence"
	"github.com/katalvlaran/gaussquad/report"
)

// TestSavePlots_WritesBothCharts renders a small run into a temp dir
// and checks both PNG files materialize with content.
func TestSavePlots_WritesBothCharts(t *testing.T) {
	dir := t.TempDir()

	err := report.SavePlots(successOutcome(), 317.3442466738264, dir)
	require.NoError(t, err)

	for _, name := range []string{report.ConvergencePlotFile, report.ErrorPlotFile} {
		info, statErr := os.Stat(filepath.Join(dir, name))
		require.NoError(t, statErr, "%s must exist", name)
		assert.Positive(t, info.Size(), "%s must not be empty", name)
	}
}

// TestSavePlots_ZeroErrorRecord ensures an exact-zero error (the
// degenerate-reference case) survives the log-scale chart.
func TestSavePlots_ZeroErrorRecord(t *testing.T) {
	out := successOutcome()
	out.Records[2].Err = 0

	err := report.SavePlots(out, 317.3442466738264, t.TempDir())
	assert.NoError(t, err)
}

// TestSavePlots_NoRecords rejects an empty outcome.
func TestSavePlots_NoRecords(t *testing.T) {
	err := report.SavePlots(convergence.Outcome{}, 0, t.TempDir())
	assert.ErrorIs(t, err, report.ErrNoRecords)
}
