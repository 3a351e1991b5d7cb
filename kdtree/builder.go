package kdtree

import (
	"math"

	"github.com/packedspatial/packedspatial"
)

// Builder accepts points one at a time and packs them into an
// immutable *KDTree on Finish. Its lifecycle is the same one-shot
// state machine as rtree.Builder: New → zero or more Add calls (until
// numItems points are added) → Finish.
type Builder struct {
	nodeSize  uint16
	coordType packedspatial.CoordType
	points    []Point
	finished  bool
}

// New creates a Builder that will accept exactly numItems points. It
// returns BadNodeSize if nodeSize is outside [2, 65535].
func New(numItems uint32, nodeSize uint16, coordType packedspatial.CoordType) (*Builder, error) {
	if nodeSize < 2 {
		return nil, packedspatial.NewError(packedspatial.BadNodeSize, "node size must be at least 2")
	}
	if !coordType.Valid() {
		return nil, packedspatial.NewError(packedspatial.TypeMismatch, "unknown coordinate type")
	}
	return &Builder{
		nodeSize:  nodeSize,
		coordType: coordType,
		points:    make([]Point, 0, numItems),
	}, nil
}

// Add appends a point and returns its position, which equals its
// insertion index (0-based). It returns InvalidCoordinate if either
// coordinate is NaN, and TooManyItems once numItems points have
// already been added or Finish has already been called.
func (b *Builder) Add(x, y float64) (int, error) {
	if b.finished || len(b.points) == cap(b.points) {
		return 0, packedspatial.NewError(packedspatial.TooManyItems, "more items added than declared capacity")
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, packedspatial.NewError(packedspatial.InvalidCoordinate, "point coordinate is NaN")
	}
	pos := len(b.points)
	b.points = append(b.points, Point{X: x, Y: y})
	return pos, nil
}

// Finish sorts and packs the added points into an immutable *KDTree
// via a recursive median split. It returns NotEnoughItems if fewer
// than the declared numItems points were added.
func (b *Builder) Finish() (*KDTree, error) {
	if b.finished {
		return nil, packedspatial.NewError(packedspatial.TooManyItems, "builder already finished")
	}
	if len(b.points) != cap(b.points) {
		return nil, packedspatial.NewError(packedspatial.NotEnoughItems, "fewer items added than declared capacity")
	}
	meta, err := NewMetadata(uint32(len(b.points)), b.nodeSize, b.coordType)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, meta.NumBytes())
	writeHeader(buf, header{coordType: b.coordType, nodeSize: b.nodeSize, numItems: meta.NumItems})
	b.finished = true

	if meta.NumItems == 0 {
		return &KDTree{buf: buf, meta: meta}, nil
	}

	points := make([]Point, len(b.points))
	copy(points, b.points)
	ids := make([]uint32, len(points))
	for i := range ids {
		ids[i] = uint32(i)
	}
	sortKD(points, ids, int(b.nodeSize), 0, len(points)-1, 0)

	kernel := packedspatial.KernelFor(b.coordType)
	numItems := int(meta.NumItems)
	width := meta.IndexWidth()
	for i, p := range points {
		if err := writePoint(buf, kernel, i, p); err != nil {
			return nil, err
		}
		writeItemIndex(buf, numItems, kernel.Size, width, i, ids[i])
	}
	return &KDTree{buf: buf, meta: meta}, nil
}
