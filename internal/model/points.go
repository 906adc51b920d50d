// Package model holds the session data types: the point collection and the
// current line parameters.
package model

import (
	"sort"

	"line-fitter/pkg/geometry"
)

// Coordinate range accepted for stored points. Clicks mapping outside this
// box are rejected, not clamped.
const (
	CoordMin = -10.0
	CoordMax = 10.0
)

// DataBounds is the closed box every stored point must lie in.
var DataBounds = geometry.NewRect(CoordMin, CoordMin, CoordMax-CoordMin, CoordMax-CoordMin)

// PointSet is an ordered collection of 2D points. Insertion order is
// preserved and drives both the displayed list and delete-by-index
// semantics. Duplicates are allowed.
type PointSet struct {
	points []geometry.Point2D
}

// NewPointSet creates an empty point set.
func NewPointSet() *PointSet {
	return &PointSet{}
}

// Add appends a point if both coordinates are within DataBounds.
// Out-of-bounds points are silently rejected (the click-outside-plot case).
// Returns true if the point was stored.
func (ps *PointSet) Add(x, y float64) bool {
	p := geometry.NewPoint2D(x, y)
	if !DataBounds.Contains(p) {
		return false
	}
	ps.points = append(ps.points, p)
	return true
}

// RemoveLast removes the most recently added point. No-op on an empty set.
// Returns true if a point was removed.
func (ps *PointSet) RemoveLast() bool {
	if len(ps.points) == 0 {
		return false
	}
	ps.points = ps.points[:len(ps.points)-1]
	return true
}

// RemoveAt removes the points at the given zero-based indices. Indices are
// processed in descending order so earlier positions stay valid during
// removal. Out-of-range and duplicate indices are ignored.
// Returns the number of points removed.
func (ps *PointSet) RemoveAt(indices []int) int {
	if len(indices) == 0 {
		return 0
	}

	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	removed := 0
	prev := -1
	for _, idx := range sorted {
		if idx == prev {
			continue
		}
		prev = idx
		if idx < 0 || idx >= len(ps.points) {
			continue
		}
		ps.points = append(ps.points[:idx], ps.points[idx+1:]...)
		removed++
	}
	return removed
}

// Clear removes all points. Confirmation is the caller's responsibility.
func (ps *PointSet) Clear() {
	ps.points = ps.points[:0]
}

// Points returns a copy of the ordered point sequence for read-only
// consumption by fitting, loss, and rendering.
func (ps *PointSet) Points() []geometry.Point2D {
	out := make([]geometry.Point2D, len(ps.points))
	copy(out, ps.points)
	return out
}

// Len returns the number of stored points.
func (ps *PointSet) Len() int {
	return len(ps.points)
}
