package fit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"line-fitter/pkg/geometry"
)

func pts(coords ...float64) []geometry.Point2D {
	out := make([]geometry.Point2D, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, geometry.Point2D{X: coords[i], Y: coords[i+1]})
	}
	return out
}

func TestFit_ExactLine(t *testing.T) {
	// Points lying exactly on y = 2x + 3.
	points := pts(0, 3, 1, 5, 2, 7)

	m, b, err := Fit(points)
	require.NoError(t, err)
	require.InDelta(t, 2.0, m, 1e-9)
	require.InDelta(t, 3.0, b, 1e-9)
}

func TestFit_MatchesClosedForm(t *testing.T) {
	points := pts(1, 2, 2, 3, 3, 5, 4, 6)

	// Independent closed-form OLS:
	// m = (nΣxy − ΣxΣy) / (nΣx² − (Σx)²), b = (Σy − mΣx)/n.
	var sx, sy, sxy, sxx float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
		sxy += p.X * p.Y
		sxx += p.X * p.X
	}
	n := float64(len(points))
	wantM := (n*sxy - sx*sy) / (n*sxx - sx*sx)
	wantB := (sy - wantM*sx) / n

	m, b, err := Fit(points)
	require.NoError(t, err)
	require.InDelta(t, wantM, m, 1e-12)
	require.InDelta(t, wantB, b, 1e-12)
}

func TestFit_InsufficientData(t *testing.T) {
	_, _, err := Fit(nil)
	require.ErrorIs(t, err, ErrInsufficientData)

	_, _, err = Fit(pts(1, 1))
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestFit_DegenerateVerticalLine(t *testing.T) {
	_, _, err := Fit(pts(5, 1, 5, 2))
	require.ErrorIs(t, err, ErrDegenerateFit)

	_, _, err = Fit(pts(5, 1, 5, 2, 5, 9))
	require.ErrorIs(t, err, ErrDegenerateFit)
}

func TestLoss_EmptyIsUndefined(t *testing.T) {
	loss, ok := Loss(nil, 1, 0)
	require.False(t, ok)
	require.Zero(t, loss)
}

func TestLoss_ExactFitIsZero(t *testing.T) {
	points := pts(0, 3, 1, 5, 2, 7)
	loss, ok := Loss(points, 2, 3)
	require.True(t, ok)
	require.InDelta(t, 0.0, loss, 1e-12)
}

func TestLoss_KnownValue(t *testing.T) {
	// Residuals against y = 0 are 0 and 1; mean square is 0.5, halved 0.25.
	points := pts(0, 0, 1, 1)
	loss, ok := Loss(points, 0, 0)
	require.True(t, ok)
	require.InDelta(t, 0.25, loss, 1e-12)
}

func TestLoss_MatchesDirectComputation(t *testing.T) {
	points := pts(1, 2, 2, 3, 3, 5, 4, 6)

	m, b, err := Fit(points)
	require.NoError(t, err)

	var sum float64
	for _, p := range points {
		r := p.Y - (m*p.X + b)
		sum += r * r
	}
	want := sum / float64(len(points)) / 2

	loss, ok := Loss(points, m, b)
	require.True(t, ok)
	require.InDelta(t, want, loss, 1e-12)
}
