package kdtree

import "github.com/packedspatial/packedspatial"

// Metadata is the pure arithmetic derived from (numItems, nodeSize,
// coordType). Unlike the R-tree there is no level structure: every
// item is stored once, at a position fixed by the recursive median
// split performed during Finish.
type Metadata struct {
	NumItems  uint32
	NodeSize  uint16
	CoordType packedspatial.CoordType
}

// NewMetadata derives the layout arithmetic for a k-d tree holding
// numItems points with the given nodeSize and coordType. It returns
// BadNodeSize if nodeSize is outside [2, 65535].
func NewMetadata(numItems uint32, nodeSize uint16, coordType packedspatial.CoordType) (Metadata, error) {
	if nodeSize < 2 {
		return Metadata{}, packedspatial.NewError(packedspatial.BadNodeSize, "node size must be at least 2")
	}
	return Metadata{NumItems: numItems, NodeSize: nodeSize, CoordType: coordType}, nil
}

// IndexWidth returns the byte width (2 or 4) of one index-array entry,
// a property of num_items alone for the k-d tree.
func (m Metadata) IndexWidth() int {
	return packedspatial.IndexWidth(int(m.NumItems))
}

// NumBytes returns the total size in bytes of the finished buffer.
func (m Metadata) NumBytes() int {
	n := int(m.NumItems)
	return headerSize + n*2*m.CoordType.Size() + n*m.IndexWidth()
}

// FromBuffer parses the 8-byte header of buf and re-derives a full
// Metadata, validating that buf's length matches the size computed
// from the header fields exactly.
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
