package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectRange_PartitionsAroundMedian(t *testing.T) {
	points := []Point{{5, 0}, {3, 0}, {8, 0}, {1, 0}, {9, 0}, {2, 0}, {7, 0}}
	ids := []uint32{0, 1, 2, 3, 4, 5, 6}
	k := 3 // middle index of a 7-element range

	selectRange(points, ids, k, 0, len(points)-1, 0)

	for i := 0; i < k; i++ {
		assert.LessOrEqual(t, points[i].X, points[k].X)
	}
	for i := k + 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i].X, points[k].X)
	}
}

func TestSortKD_LeafSmallerThanNodeSizeUntouched(t *testing.T) {
	points := []Point{{3, 1}, {1, 1}, {2, 1}}
	ids := []uint32{0, 1, 2}

	sortKD(points, ids, 4, 0, len(points)-1, 0)

	assert.Equal(t, []Point{{3, 1}, {1, 1}, {2, 1}}, points)
	assert.Equal(t, []uint32{0, 1, 2}, ids)
}

func TestSortKD_PermutationPreserved(t *testing.T) {
	points := make([]Point, 50)
	ids := make([]uint32, 50)
	for i := range points {
		points[i] = Point{X: float64((i * 37) % 50), Y: float64((i * 13) % 50)}
		ids[i] = uint32(i)
	}

	sortKD(points, ids, 4, 0, len(points)-1, 0)

	seen := make(map[uint32]bool)
	for _, id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, 50)
}
