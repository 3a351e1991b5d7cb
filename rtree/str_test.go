package rtree

import (
	"math"
	"testing"

	"github.com/packedspatial/packedspatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildSTR_Parallel checks that enabling WithParallelism produces
// exactly the same packed buffer as the sequential default: the sort
// phases are independent per slice, so fan-out must not change the
// result.
func TestBuildSTR_Parallel(t *testing.T) {
	boxes := make([]Box, 40)
	for i := range boxes {
		x := math.Mod(float64(i)*7.0, 23.0)
		y := math.Mod(float64(i)*13.0, 17.0)
		boxes[i] = Box{x, y, x + 1, y + 1}
	}

	build := func(opts ...STROption) []byte {
		b, err := New(uint32(len(boxes)), 4, packedspatial.F64)
		require.NoError(t, err)
		for _, box := range boxes {
			_, err := b.Add(box.MinX, box.MinY, box.MaxX, box.MaxY)
			require.NoError(t, err)
		}
		tree, err := b.Finish(STR, opts...)
		require.NoError(t, err)
		return tree.Bytes()
	}

	sequential := build()
	parallel := build(WithParallelism(4))

	assert.Equal(t, sequential, parallel)
}

func TestTileLevel_LeafUsesMinCorner(t *testing.T) {
	level := []entry{
		{box: Box{5, 5, 6, 6}, val: 0},
		{box: Box{1, 9, 2, 10}, val: 1},
		{box: Box{3, 1, 4, 2}, val: 2},
	}

	tileLevel(level, 3, true, strOptions{})

	for i := 1; i < len(level); i++ {
		assert.LessOrEqual(t, level[i-1].box.MinX, level[i].box.MinX)
	}
}
