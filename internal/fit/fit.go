// Package fit computes ordinary least-squares line fits and the half
// mean-squared-error loss displayed by the UI.
package fit

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"line-fitter/pkg/geometry"
)

// ErrInsufficientData is returned when a fit is requested with fewer than
// two points.
var ErrInsufficientData = errors.New("need at least two points to fit a line")

// ErrDegenerateFit is returned when all x values are identical. The
// vertical line has no finite slope in the y = m·x + b form, and letting
// the division produce NaN would leak into the displayed equation.
var ErrDegenerateFit = errors.New("all points share the same x; cannot fit a vertical line")

// Fit computes the least-squares slope and intercept minimizing the sum of
// squared vertical residuals over the given points.
func Fit(points []geometry.Point2D) (m, b float64, err error) {
	if len(points) < 2 {
		return 0, 0, ErrInsufficientData
	}

	xs, ys := split(points)
	if stat.Variance(xs, nil) == 0 {
		return 0, 0, ErrDegenerateFit
	}

	// LinearRegression returns (alpha, beta) for y = alpha + beta*x.
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return beta, alpha, nil
}

// Loss returns mean((y_i - (m·x_i + b))²) / 2 over the points. The 1/2
// factor is the display convention and must be preserved. ok is false when
// there are no points; the loss is undefined then, not zero.
func Loss(points []geometry.Point2D, m, b float64) (loss float64, ok bool) {
	if len(points) == 0 {
		return 0, false
	}

	var sum float64
	for _, p := range points {
		r := p.Y - (m*p.X + b)
		sum += r * r
	}
	return sum / float64(len(points)) / 2, true
}

func split(points []geometry.Point2D) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}
