package rtree

import (
	"math"
	"testing"

	"github.com/packedspatial/packedspatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuiltTree(t *testing.T, method Method, boxes []Box, nodeSize uint16) *RTree {
	t.Helper()
	b, err := New(uint32(len(boxes)), nodeSize, packedspatial.F64)
	require.NoError(t, err)
	for _, box := range boxes {
		_, err := b.Add(box.MinX, box.MinY, box.MaxX, box.MaxY)
		require.NoError(t, err)
	}
	tree, err := b.Finish(method)
	require.NoError(t, err)
	return tree
}

// TestScenarioS1 walks a small Hilbert R-tree built over three
// overlapping boxes with node_size 16.
func TestScenarioS1(t *testing.T) {
	boxes := []Box{
		{0, 0, 2, 2},
		{1, 1, 3, 3},
		{2, 2, 4, 4},
	}
	tree := newBuiltTree(t, Hilbert, boxes, 16)

	assert.Equal(t, 144, len(tree.Bytes()))
	// Box 1 (1,1,3,3) shares only the corner point (1,1) with this
	// query; the box-intersection test is inclusive of shared
	// boundary points, so it is reported as intersecting too.
	assert.ElementsMatch(t, []int{0, 1}, tree.Search(Box{0, 0, 1, 1}))
	assert.ElementsMatch(t, []int{0, 1, 2}, tree.Search(Box{2, 2, 3, 3}))
	assert.Equal(t, []int{2, 1, 0}, tree.Neighbors(5, 5, -1, math.Inf(1)))
}

// TestScenarioS2 reproduces the single-item tree walkthrough.
func TestScenarioS2(t *testing.T) {
	tree := newBuiltTree(t, Hilbert, []Box{{10, 10, 20, 20}}, 16)

	assert.Empty(t, tree.Search(Box{0, 0, 5, 5}))
	assert.Equal(t, []int{0}, tree.Search(Box{15, 15, 15, 15}))

	neighbors := tree.Neighbors(0, 0, 1, math.Inf(1))
	require.Equal(t, []int{0}, neighbors)

	root := tree.Bounds()
	assert.Equal(t, math.Sqrt(200), math.Sqrt(root.distSquared(0, 0)))
}

// TestScenarioS3 reproduces the empty-tree walkthrough.
func TestScenarioS3(t *testing.T) {
	b, err := New(0, 16, packedspatial.F64)
	require.NoError(t, err)
	tree, err := b.Finish(Hilbert)
	require.NoError(t, err)

	assert.Equal(t, 8, len(tree.Bytes()))
	assert.Empty(t, tree.Search(Box{math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1)}))
}

// TestScenarioS5 reproduces the STR corner case where P = S = 2.
func TestScenarioS5(t *testing.T) {
	boxes := make([]Box, 17)
	for i := range boxes {
		x := float64(i)
		boxes[i] = Box{x, x, x + 1, x + 1}
	}

	fullExtent := Box{math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1)}
	expected := make([]int, 17)
	for i := range expected {
		expected[i] = i
	}

	strTree := newBuiltTree(t, STR, boxes, 16)
	assert.ElementsMatch(t, expected, strTree.Search(fullExtent))

	hilbertTree := newBuiltTree(t, Hilbert, boxes, 16)
	assert.ElementsMatch(t, expected, hilbertTree.Search(fullExtent))
}

func TestBuilder_Add_TooManyItems(t *testing.T) {
	b, err := New(1, 16, packedspatial.F64)
	require.NoError(t, err)
	_, err = b.Add(0, 0, 1, 1)
	require.NoError(t, err)

	_, err = b.Add(0, 0, 1, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, packedspatial.NewError(packedspatial.TooManyItems, ""))
}

func TestBuilder_Add_InvalidCoordinate(t *testing.T) {
	b, err := New(1, 16, packedspatial.F64)
	require.NoError(t, err)

	_, err = b.Add(math.NaN(), 0, 1, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, packedspatial.NewError(packedspatial.InvalidCoordinate, ""))
}

func TestBuilder_Finish_NotEnoughItems(t *testing.T) {
	b, err := New(2, 16, packedspatial.F64)
	require.NoError(t, err)
	_, err = b.Add(0, 0, 1, 1)
	require.NoError(t, err)

	_, err = b.Finish(Hilbert)

	require.Error(t, err)
	assert.ErrorIs(t, err, packedspatial.NewError(packedspatial.NotEnoughItems, ""))
}

func TestNew_BadNodeSize(t *testing.T) {
	_, err := New(1, 0, packedspatial.F64)

	require.Error(t, err)
	assert.ErrorIs(t, err, packedspatial.NewError(packedspatial.BadNodeSize, ""))
}

func TestBuilder_Finish_AlreadyFinished(t *testing.T) {
	b, err := New(0, 16, packedspatial.F64)
	require.NoError(t, err)
	_, err = b.Finish(Hilbert)
	require.NoError(t, err)

	_, err = b.Finish(Hilbert)

	require.Error(t, err)
	assert.ErrorIs(t, err, packedspatial.NewError(packedspatial.TooManyItems, ""))
}
