package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRect_Contains(t *testing.T) {
	r := NewRect(-10, -10, 20, 20)

	require.True(t, r.Contains(NewPoint2D(0, 0)))
	// Edges are inclusive.
	require.True(t, r.Contains(NewPoint2D(-10, -10)))
	require.True(t, r.Contains(NewPoint2D(10, 10)))

	require.False(t, r.Contains(NewPoint2D(10.001, 0)))
	require.False(t, r.Contains(NewPoint2D(0, -10.001)))
}

func TestRect_Center(t *testing.T) {
	r := NewRect(-10, -10, 20, 20)
	require.Equal(t, Point2D{X: 0, Y: 0}, r.Center())

	r = NewRect(2, 4, 6, 8)
	require.Equal(t, Point2D{X: 5, Y: 8}, r.Center())
}

func TestRect_ScaledAbout(t *testing.T) {
	r := NewRect(-10, -10, 20, 20)
	at := NewPoint2D(5, -5)

	scaled := r.ScaledAbout(at, 0.5)
	require.Equal(t, 10.0, scaled.Width)
	require.Equal(t, 10.0, scaled.Height)

	// The anchor stays at the same relative position.
	relX := (at.X - r.X) / r.Width
	relY := (at.Y - r.Y) / r.Height
	require.InDelta(t, relX, (at.X-scaled.X)/scaled.Width, 1e-12)
	require.InDelta(t, relY, (at.Y-scaled.Y)/scaled.Height, 1e-12)
}

func TestPoint2D_Distance(t *testing.T) {
	require.InDelta(t, 5.0, NewPoint2D(0, 0).Distance(NewPoint2D(3, 4)), 1e-12)
	require.Zero(t, NewPoint2D(1, 1).Distance(NewPoint2D(1, 1)))
}

func TestPoint2D_Arithmetic(t *testing.T) {
	a := NewPoint2D(1, 2)
	b := NewPoint2D(3, -4)

	require.Equal(t, Point2D{X: 4, Y: -2}, a.Add(b))
	require.Equal(t, Point2D{X: -2, Y: 6}, a.Sub(b))
	require.Equal(t, Point2D{X: 2, Y: 4}, a.Scale(2))
}
