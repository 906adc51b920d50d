package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"line-fitter/pkg/geometry"
)

func TestPointSet_Add(t *testing.T) {
	ps := NewPointSet()

	require.True(t, ps.Add(1, 2))
	require.Equal(t, 1, ps.Len())
	require.Equal(t, []geometry.Point2D{{X: 1, Y: 2}}, ps.Points())

	// Boundary values are inside the closed interval.
	require.True(t, ps.Add(-10, 10))
	require.True(t, ps.Add(10, -10))
	require.Equal(t, 3, ps.Len())
}

func TestPointSet_AddAllowsDuplicates(t *testing.T) {
	ps := NewPointSet()

	require.True(t, ps.Add(3, 3))
	require.True(t, ps.Add(3, 3))
	require.Equal(t, 2, ps.Len())
}

func TestPointSet_AddOutOfBoundsRejected(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"x too large", 10.01, 0},
		{"x too small", -10.5, 0},
		{"y too large", 0, 11},
		{"y too small", 0, -10.001},
		{"both out", 20, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := NewPointSet()
			require.False(t, ps.Add(tt.x, tt.y))
			require.Equal(t, 0, ps.Len())
		})
	}
}

func TestPointSet_RemoveLast(t *testing.T) {
	ps := NewPointSet()
	ps.Add(1, 1)
	ps.Add(2, 2)

	require.True(t, ps.RemoveLast())
	require.Equal(t, []geometry.Point2D{{X: 1, Y: 1}}, ps.Points())

	require.True(t, ps.RemoveLast())
	require.Equal(t, 0, ps.Len())

	// No-op on empty, no error.
	require.False(t, ps.RemoveLast())
	require.Equal(t, 0, ps.Len())
}

func TestPointSet_RemoveAt(t *testing.T) {
	newSet := func() *PointSet {
		ps := NewPointSet()
		ps.Add(0, 0)
		ps.Add(1, 1)
		ps.Add(2, 2)
		ps.Add(3, 3)
		return ps
	}

	t.Run("removes given positions, keeps order", func(t *testing.T) {
		ps := newSet()
		require.Equal(t, 2, ps.RemoveAt([]int{0, 2}))
		require.Equal(t, []geometry.Point2D{{X: 1, Y: 1}, {X: 3, Y: 3}}, ps.Points())
	})

	t.Run("order of indices does not matter", func(t *testing.T) {
		ps := newSet()
		require.Equal(t, 2, ps.RemoveAt([]int{2, 0}))
		require.Equal(t, []geometry.Point2D{{X: 1, Y: 1}, {X: 3, Y: 3}}, ps.Points())
	})

	t.Run("out of range ignored", func(t *testing.T) {
		ps := newSet()
		require.Equal(t, 1, ps.RemoveAt([]int{-1, 3, 4, 100}))
		require.Equal(t, 3, ps.Len())
	})

	t.Run("duplicate indices remove once", func(t *testing.T) {
		ps := newSet()
		require.Equal(t, 1, ps.RemoveAt([]int{1, 1, 1}))
		require.Equal(t, 3, ps.Len())
	})

	t.Run("empty selection is a no-op", func(t *testing.T) {
		ps := newSet()
		require.Equal(t, 0, ps.RemoveAt(nil))
		require.Equal(t, 4, ps.Len())
	})
}

func TestPointSet_Clear(t *testing.T) {
	ps := NewPointSet()
	ps.Add(1, 1)
	ps.Add(2, 2)

	ps.Clear()
	require.Equal(t, 0, ps.Len())
	require.Empty(t, ps.Points())

	// Clearing an empty set is fine.
	ps.Clear()
	require.Equal(t, 0, ps.Len())
}

func TestPointSet_PointsReturnsCopy(t *testing.T) {
	ps := NewPointSet()
	ps.Add(1, 1)

	snapshot := ps.Points()
	snapshot[0] = geometry.Point2D{X: 9, Y: 9}

	require.Equal(t, []geometry.Point2D{{X: 1, Y: 1}}, ps.Points())
}
