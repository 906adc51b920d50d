// Package render computes render-ready data from session state. It is pure
// computation with no dependency on the widget toolkit, so the paint path
// can be tested headless.
package render

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"line-fitter/internal/fit"
	"line-fitter/internal/model"
	"line-fitter/pkg/geometry"
)

// LineSamples is the number of evenly spaced x values used to draw the
// line across the data range. Dense enough for a visually smooth stroke.
const LineSamples = 400

// Frame holds everything the UI needs to paint one consistent view of the
// session: scatter positions, the sampled line, and the formatted strings.
type Frame struct {
	// Points are the scatter positions in insertion order.
	Points []geometry.Point2D

	// PointLabels are the "(x.xx, y.yy)" list entries, one per point.
	PointLabels []string

	// LineXs and LineYs sample the current line across [CoordMin, CoordMax].
	LineXs []float64
	LineYs []float64

	// Equation is the formatted "y = m·x ± b" string.
	Equation string

	// Loss is "Loss: V.VVV", or "Loss: N/A" when there are no points.
	Loss string

	// M and B are the raw line parameters, for input fields that echo the
	// fitted values back to the user.
	M float64
	B float64
}

// Snapshot computes a Frame for the given points and line.
func Snapshot(points []geometry.Point2D, line *model.LineModel) Frame {
	m, b := line.Params()

	xs := floats.Span(make([]float64, LineSamples), model.CoordMin, model.CoordMax)

	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
	}

	return Frame{
		Points:      points,
		PointLabels: labels,
		LineXs:      xs,
		LineYs:      line.Evaluate(xs),
		Equation:    line.Format(),
		Loss:        formatLoss(points, m, b),
		M:           m,
		B:           b,
	}
}

func formatLoss(points []geometry.Point2D, m, b float64) string {
	loss, ok := fit.Loss(points, m, b)
	if !ok {
		return "Loss: N/A"
	}
	return fmt.Sprintf("Loss: %.3f", loss)
}
