package rtree

import (
	"github.com/packedspatial/packedspatial"
)

// LevelBound is the half-open range [Offset, Offset+Count) of node
// positions, in node units from the start of the buffer's node data,
// occupied by one level. Level 0 holds the original items (in sorted
// order); the last level holds exactly one node, the root.
type LevelBound struct {
	Offset int
	Count  int
}

// Metadata is the pure arithmetic derived from (numItems, nodeSize,
// coordType): level sizes, per-level offsets, total node/byte counts.
// It never touches a buffer; FromBuffer is the only function that
// parses bytes, and it does so purely to recover these same three
// integers before calling NewMetadata.
type Metadata struct {
	NumItems  uint32
	NodeSize  uint16
	CoordType packedspatial.CoordType

	levels []LevelBound
}

// NewMetadata derives the full arithmetic for an R-tree holding
// numItems items with the given nodeSize and coordType. It returns
// BadNodeSize if nodeSize is outside [2, 65535].
func NewMetadata(numItems uint32, nodeSize uint16, coordType packedspatial.CoordType) (Metadata, error) {
	if nodeSize < 2 {
		return Metadata{}, packedspatial.NewError(packedspatial.BadNodeSize, "node size must be at least 2")
	}
	levels := levelBounds(int(numItems), int(nodeSize))
	return Metadata{
		NumItems:  numItems,
		NodeSize:  nodeSize,
		CoordType: coordType,
		levels:    levels,
	}, nil
}

// levelBounds computes the leaves-first level layout: level 0 has
// numItems nodes; each subsequent level has ceil(prev/nodeSize) nodes;
// the sequence ends once a level has size 1 (the root). numItems == 0
// is a special case yielding a single, empty level.
func levelBounds(numItems, nodeSize int) []LevelBound {
	var sizes []int
	if numItems == 0 {
		sizes = []int{0}
	} else {
		sizes = []int{numItems}
		for sizes[len(sizes)-1] > 1 {
			prev := sizes[len(sizes)-1]
			sizes = append(sizes, (prev+nodeSize-1)/nodeSize)
		}
	}
	bounds := make([]LevelBound, len(sizes))
	offset := 0
	for i, n := range sizes {
		bounds[i] = LevelBound{Offset: offset, Count: n}
		offset += n
	}
	return bounds
}

// NumLevels returns the number of levels, at least 1.
func (m Metadata) NumLevels() int {
	return len(m.levels)
}

// LevelBounds returns the (offset, count) pair for level, where level
// 0 is the items and level NumLevels()-1 is the root. It returns
// LevelOutOfRange if level is out of bounds.
func (m Metadata) LevelBounds(level int) (LevelBound, error) {
	if level < 0 || level >= len(m.levels) {
		return LevelBound{}, packedspatial.NewError(packedspatial.LevelOutOfRange, "level index out of range")
	}
	return m.levels[level], nil
}

// NumNodes returns the total number of boxes stored in the buffer,
// including items (level 0).
func (m Metadata) NumNodes() int {
	if len(m.levels) == 0 {
		return 0
	}
	last := m.levels[len(m.levels)-1]
	return last.Offset + last.Count
}

// IndexWidth returns the byte width (2 or 4) of one entry of the index
// array: u16 unless NumNodes() requires u32.
func (m Metadata) IndexWidth() int {
	return packedspatial.IndexWidth(m.NumNodes())
}

// NumBytes returns the total size in bytes of the finished buffer.
func (m Metadata) NumBytes() int {
	n := m.NumNodes()
	return headerSize + n*4*m.CoordType.Size() + n*m.IndexWidth()
}

// FromBuffer parses the 8-byte header of buf and re-derives a full
// Metadata, validating that buf's length matches the size computed
// from the header fields exactly. It returns BadBuffer on any
// mismatch: too short, bad magic, bad version, bad coordinate tag, or
// wrong length.
func FromBuffer(buf []byte) (Metadata, error) {
	h, err := parseHeader(buf)
	if err != nil {
		return Metadata{}, err
	}
	m, err := NewMetadata(h.numItems, h.nodeSize, h.coordType)
	if err != nil {
		return Metadata{}, packedspatial.WrapError(packedspatial.BadBuffer, "invalid header parameters", err)
	}
	if len(buf) != m.NumBytes() {
		return Metadata{}, packedspatial.NewError(packedspatial.BadBuffer, "buffer length does not match size computed from header")
	}
	return m, nil
}
