package kdtree

import (
	"testing"

	"github.com/packedspatial/packedspatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	points := []Point{{0, 2}, {1, 3}, {2, 4}, {-1, -1}}
	built := newBuiltTree(t, points, 2)

	parsed, err := Parse(built.Bytes())
	require.NoError(t, err)

	assert.Equal(t, built.NumItems(), parsed.NumItems())
	assert.Equal(t, built.NodeSize(), parsed.NodeSize())
	assert.Equal(t, built.CoordType(), parsed.CoordType())
	assert.Equal(t, built.Range(-10, -10, 10, 10), parsed.Range(-10, -10, 10, 10))
}

func TestParse_BadBuffer(t *testing.T) {
	_, err := Parse([]byte{1, 2, 3})

	require.Error(t, err)
	assert.ErrorIs(t, err, packedspatial.NewError(packedspatial.BadBuffer, ""))
}
