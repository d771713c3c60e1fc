package physics

import (
	"slices"
	"testing"
)

func collect(g *SpatialGrid, x, y float64) []int {
	var found []int
	g.QueryAround(x, y, func(i int) bool {
		found = append(found, i)
		return false
	})
	slices.Sort(found)
	return found
}

func TestSpatialGridQueryAround(t *testing.T) {
	g := NewSpatialGrid(800, 600, 48)
	g.Insert(100, 100, 0) // Same cell as query
	g.Insert(150, 100, 1) // Neighbor cell
	g.Insert(400, 400, 2) // Far away

	got := collect(g, 110, 110)
	if !slices.Equal(got, []int{0, 1}) {
		t.Errorf("QueryAround = %v, want [0 1]", got)
	}
}

func TestSpatialGridOffFieldPositions(t *testing.T) {
	g := NewSpatialGrid(800, 600, 48)
	g.Insert(50, -30, 0)  // Above the field
	g.Insert(50, 10, 1)   // Top row
	g.Insert(900, 300, 2) // Right of the field

	if got := collect(g, 50, -40); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("query above field = %v, want [0 1]", got)
	}
	if got := collect(g, 790, 300); !slices.Equal(got, []int{2}) {
		t.Errorf("query at right edge = %v, want [2]", got)
	}
}

func TestSpatialGridEarlyStop(t *testing.T) {
	g := NewSpatialGrid(100, 100, 50)
	for i := 0; i < 5; i++ {
		g.Insert(10, 10, i)
	}

	calls := 0
	g.QueryAround(10, 10, func(int) bool {
		calls++
		return true
	})
	if calls != 1 {
		t.Errorf("callback called %d times, want 1", calls)
	}
}

func TestSpatialGridClear(t *testing.T) {
	g := NewSpatialGrid(100, 100, 50)
	g.Insert(10, 10, 0)
	g.Clear()

	if got := collect(g, 10, 10); len(got) != 0 {
		t.Errorf("after Clear got %v, want empty", got)
	}
}
