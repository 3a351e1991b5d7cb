package rtree

import "github.com/packedspatial/packedspatial"

// RTree is an immutable, packed Hilbert/STR R-tree: a single
// contiguous byte buffer holding an 8-byte header, a coordinate block,
// and an index block. Every query method is read-only and safe for
// concurrent use by multiple goroutines, since nothing ever mutates
// buf or meta after Parse or Builder.Finish returns.
type RTree struct {
	buf  []byte
	meta Metadata
}

// Parse interprets buf as an already-built R-tree buffer, validating
// its header and length. It does not copy buf; the returned *RTree
// aliases it, so the caller must not mutate buf afterward.
func Parse(buf []byte) (*RTree, error) {
	meta, err := FromBuffer(buf)
	if err != nil {
		return nil, err
	}
	return &RTree{buf: buf, meta: meta}, nil
}

// Bytes returns the underlying buffer, unchanged since construction.
func (t *RTree) Bytes() []byte {
	return t.buf
}

// Metadata returns the tree's derived layout arithmetic.
func (t *RTree) Metadata() Metadata {
	return t.meta
}

// NumItems returns the number of items the tree was built with.
func (t *RTree) NumItems() uint32 {
	return t.meta.NumItems
}

// NodeSize returns the configured node size.
func (t *RTree) NodeSize() uint16 {
	return t.meta.NodeSize
}

// CoordType returns the coordinate tag the tree was built with.
func (t *RTree) CoordType() packedspatial.CoordType {
	return t.meta.CoordType
}

// Bounds returns the root node's bounding box: the union of every
// item's box. For an empty tree (NumItems() == 0) it returns the zero
// Box.
func (t *RTree) Bounds() Box {
	if t.meta.NumItems == 0 {
		return Box{}
	}
	kernel := packedspatial.KernelFor(t.meta.CoordType)
	root := t.meta.levels[t.meta.NumLevels()-1]
	return readBox(t.buf, kernel, root.Offset)
}
