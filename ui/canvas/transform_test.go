package canvas

import (
	"testing"

	"github.com/stretchr/testify/require"

	"line-fitter/pkg/geometry"
)

func TestDataToPixel(t *testing.T) {
	view := DefaultView // [-10,10] on both axes
	w, h := 800.0, 600.0

	// View center maps to the surface center.
	px, py := dataToPixel(geometry.NewPoint2D(0, 0), view, w, h)
	require.InDelta(t, 400, px, 1e-9)
	require.InDelta(t, 300, py, 1e-9)

	// Data y grows upward, pixel y grows downward.
	px, py = dataToPixel(geometry.NewPoint2D(-10, 10), view, w, h)
	require.InDelta(t, 0, px, 1e-9)
	require.InDelta(t, 0, py, 1e-9)

	px, py = dataToPixel(geometry.NewPoint2D(10, -10), view, w, h)
	require.InDelta(t, 800, px, 1e-9)
	require.InDelta(t, 600, py, 1e-9)
}

func TestPixelToDataRoundTrip(t *testing.T) {
	view := geometry.NewRect(-3, 2, 12, 12)
	w, h := 640.0, 480.0

	points := []geometry.Point2D{
		{X: -3, Y: 2},
		{X: 0, Y: 8},
		{X: 9, Y: 14},
		{X: 1.25, Y: 3.5},
	}

	for _, p := range points {
		px, py := dataToPixel(p, view, w, h)
		back := pixelToData(px, py, view, w, h)
		require.InDelta(t, p.X, back.X, 1e-9)
		require.InDelta(t, p.Y, back.Y, 1e-9)
	}
}

func TestClampView(t *testing.T) {
	// Too narrow: widened to the minimum span around the same center.
	narrow := geometry.NewRect(-0.5, -0.5, 1, 1)
	clamped := clampView(narrow)
	require.Equal(t, minViewSpan, clamped.Width)
	require.Equal(t, minViewSpan, clamped.Height)
	require.InDelta(t, 0, clamped.Center().X, 1e-9)
	require.InDelta(t, 0, clamped.Center().Y, 1e-9)

	// Too wide: shrunk to the maximum span.
	wide := geometry.NewRect(-500, -500, 1000, 1000)
	clamped = clampView(wide)
	require.Equal(t, maxViewSpan, clamped.Width)

	// In range: unchanged span, square aspect.
	ok := clampView(geometry.NewRect(-10, -10, 20, 20))
	require.Equal(t, 20.0, ok.Width)
	require.Equal(t, 20.0, ok.Height)
}

func TestZoomKeepsCursorFixed(t *testing.T) {
	view := DefaultView
	at := geometry.NewPoint2D(4, -2)

	zoomed := clampView(view.ScaledAbout(at, 1/zoomStep))

	// The anchor point keeps the same relative position, so it maps to
	// the same pixel before and after.
	w, h := 500.0, 500.0
	px0, py0 := dataToPixel(at, view, w, h)
	px1, py1 := dataToPixel(at, zoomed, w, h)
	require.InDelta(t, px0, px1, 1e-9)
	require.InDelta(t, py0, py1, 1e-9)
}

func TestGridStep(t *testing.T) {
	// 800px over 20 units is 40px per unit: unit grid.
	require.Equal(t, 1.0, gridStep(geometry.NewRect(-10, -10, 20, 20), 800))
	// 800px over 160 units is 5px per unit: coarse grid.
	require.Equal(t, 5.0, gridStep(geometry.NewRect(-80, -80, 160, 160), 800))
	// Fully zoomed out: coarser still.
	require.Equal(t, 10.0, gridStep(geometry.NewRect(-100, -100, 200, 200), 400))
}
