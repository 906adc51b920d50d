package canvas

import (
	"line-fitter/internal/model"
	"line-fitter/pkg/geometry"
)

// DefaultView is the startup view: the full data range on both axes.
var DefaultView = geometry.NewRect(model.CoordMin, model.CoordMin,
	model.CoordMax-model.CoordMin, model.CoordMax-model.CoordMin)

// View width limits for zooming, in data units.
const (
	minViewSpan = 2.0
	maxViewSpan = 200.0
)

// dataToPixel maps a data-space point into pixel coordinates for a surface
// of the given size showing the given view rectangle. Pixel y grows
// downward while data y grows upward.
func dataToPixel(p geometry.Point2D, view geometry.Rect, w, h float64) (px, py float64) {
	px = (p.X - view.X) / view.Width * w
	py = h - (p.Y-view.Y)/view.Height*h
	return px, py
}

// pixelToData is the inverse of dataToPixel.
func pixelToData(px, py float64, view geometry.Rect, w, h float64) geometry.Point2D {
	return geometry.Point2D{
		X: view.X + px/w*view.Width,
		Y: view.Y + (h-py)/h*view.Height,
	}
}

// clampView keeps a view rectangle within sane zoom limits.
func clampView(view geometry.Rect) geometry.Rect {
	center := view.Center()
	span := view.Width
	if span < minViewSpan {
		span = minViewSpan
	}
	if span > maxViewSpan {
		span = maxViewSpan
	}
	// The view stays square so both axes share one zoom level.
	return geometry.NewRect(center.X-span/2, center.Y-span/2, span, span)
}
