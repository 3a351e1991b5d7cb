package kdtree

import "github.com/packedspatial/packedspatial"

// KDTree is an immutable, packed k-d tree: a single contiguous byte
// buffer holding an 8-byte header, a coordinate block, and an index
// block. Every query method is read-only and safe for concurrent use
// by multiple goroutines.
type KDTree struct {
	buf  []byte
	meta Metadata
}

// Parse interprets buf as an already-built k-d tree buffer, validating
// its header and length. It does not copy buf; the returned *KDTree
// aliases it, so the caller must not mutate buf afterward.
func Parse(buf []byte) (*KDTree, error) {
	meta, err := FromBuffer(buf)
	if err != nil {
		return nil, err
	}
	return &KDTree{buf: buf, meta: meta}, nil
}

// Bytes returns the underlying buffer, unchanged since construction.
func (t *KDTree) Bytes() []byte {
	return t.buf
}

// Metadata returns the tree's derived layout arithmetic.
func (t *KDTree) Metadata() Metadata {
	return t.meta
}

// NumItems returns the number of points the tree was built with.
func (t *KDTree) NumItems() uint32 {
	return t.meta.NumItems
}

// NodeSize returns the configured leaf capacity.
func (t *KDTree) NodeSize() uint16 {
	return t.meta.NodeSize
}

// CoordType returns the coordinate tag the tree was built with.
func (t *KDTree) CoordType() packedspatial.CoordType {
	return t.meta.CoordType
}
