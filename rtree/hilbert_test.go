package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHilbertXY_DegenerateExtent(t *testing.T) {
	b := Box{0, 0, 0, 0}

	t.Run("ZeroWidth", func(t *testing.T) {
		hx, hy := hilbertXY(b, 0, 0, 0, 10)
		assert.Equal(t, uint32(0), hx)
		assert.Equal(t, uint32(0), hy)
	})

	t.Run("ZeroHeight", func(t *testing.T) {
		hx, hy := hilbertXY(b, 0, 0, 10, 0)
		assert.Equal(t, uint32(0), hx)
		assert.Equal(t, uint32(0), hy)
	})
}

func TestHilbertIndex_Origin(t *testing.T) {
	assert.Equal(t, uint32(0), hilbertIndex(0, 0))
}

func TestHilbertIndex_Deterministic(t *testing.T) {
	assert.Equal(t, hilbertIndex(12345, 54321), hilbertIndex(12345, 54321))
}

func TestHilbertIndex_DistinctPointsDistinctIndices(t *testing.T) {
	points := [][2]uint32{
		{0, 0},
		{hilbertMax, 0},
		{0, hilbertMax},
		{hilbertMax, hilbertMax},
		{1, 0},
		{0, 1},
		{hilbertMax / 2, hilbertMax / 2},
	}
	seen := make(map[uint32]struct{})
	for _, p := range points {
		idx := hilbertIndex(p[0], p[1])
		_, dup := seen[idx]
		assert.False(t, dup, "hilbertIndex(%d,%d) collided with an earlier point", p[0], p[1])
		seen[idx] = struct{}{}
	}
}
