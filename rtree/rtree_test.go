package rtree

import (
	"testing"

	"github.com/packedspatial/packedspatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	boxes := []Box{{0, 0, 2, 2}, {1, 1, 3, 3}, {2, 2, 4, 4}}
	built := newBuiltTree(t, Hilbert, boxes, 16)

	parsed, err := Parse(built.Bytes())
	require.NoError(t, err)

	assert.Equal(t, built.NumItems(), parsed.NumItems())
	assert.Equal(t, built.NodeSize(), parsed.NodeSize())
	assert.Equal(t, built.CoordType(), parsed.CoordType())
	assert.Equal(t, built.Bounds(), parsed.Bounds())
	assert.ElementsMatch(t, built.Search(built.Bounds()), parsed.Search(parsed.Bounds()))
}

func TestParse_BadBuffer(t *testing.T) {
	_, err := Parse([]byte{1, 2, 3})

	require.Error(t, err)
	assert.ErrorIs(t, err, packedspatial.NewError(packedspatial.BadBuffer, ""))
}

func TestRTree_Bounds_Empty(t *testing.T) {
	b, err := New(0, 16, packedspatial.F64)
	require.NoError(t, err)
	tree, err := b.Finish(Hilbert)
	require.NoError(t, err)

	assert.Equal(t, Box{}, tree.Bounds())
}
