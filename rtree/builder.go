package rtree

import (
	"sort"

	"github.com/packedspatial/packedspatial"
)

// Method selects the bulk-loading strategy used by Builder.Finish.
type Method int

const (
	// Hilbert sorts items by the Hilbert distance of their centroid.
	// This is the method used by flatbush and is required for
	// byte-for-byte compatibility with it.
	Hilbert Method = iota
	// STR (Sort-Tile-Recursive) bulk-loads via repeated x/y tiling,
	// bottom-up.
	STR
)

// Builder accepts bounding boxes one at a time and packs them into an
// immutable *RTree on Finish. Its lifecycle is a one-shot state
// machine: New → zero or more Add calls (until numItems are added) →
// Finish. Calling Add or Finish again after Finish has succeeded once
// returns TooManyItems.
type Builder struct {
	nodeSize  uint16
	coordType packedspatial.CoordType
	items     []Box
	finished  bool
}

// New creates a Builder that will accept exactly numItems boxes.
// It returns BadNodeSize if nodeSize is outside [2, 65535].
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
		items:     make([]Box, 0, numItems),
	}, nil
}

// Add appends a box and returns its position, which equals its
// insertion index (0-based). It returns InvalidCoordinate if any of
// the four coordinates is NaN, and TooManyItems once numItems boxes
// have already been added or Finish has already been called.
func (b *Builder) Add(minX, minY, maxX, maxY float64) (int, error) {
	if b.finished || len(b.items) == cap(b.items) {
		return 0, packedspatial.NewError(packedspatial.TooManyItems, "more items added than declared capacity")
	}
	box := Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	if !box.isFinite() {
		return 0, packedspatial.NewError(packedspatial.InvalidCoordinate, "box coordinate is NaN")
	}
	pos := len(b.items)
	b.items = append(b.items, box)
	return pos, nil
}

// Finish sorts and packs the added boxes into an immutable *RTree
// using the given Method. It returns NotEnoughItems if fewer than the
// declared numItems boxes were added.
func (b *Builder) Finish(method Method, opts ...STROption) (*RTree, error) {
	if b.finished {
		return nil, packedspatial.NewError(packedspatial.TooManyItems, "builder already finished")
	}
	if len(b.items) != cap(b.items) {
		return nil, packedspatial.NewError(packedspatial.NotEnoughItems, "fewer items added than declared capacity")
	}
	meta, err := NewMetadata(uint32(len(b.items)), b.nodeSize, b.coordType)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, meta.NumBytes())
	writeHeader(buf, header{coordType: b.coordType, nodeSize: b.nodeSize, numItems: meta.NumItems})
	b.finished = true

	if meta.NumItems == 0 {
		return &RTree{buf: buf, meta: meta}, nil
	}

	kernel := packedspatial.KernelFor(b.coordType)
	switch method {
	case Hilbert:
		if err := buildHilbert(buf, meta, kernel, b.items); err != nil {
			return nil, err
		}
	case STR:
		o := applySTROptions(opts)
		if err := buildSTR(buf, meta, kernel, b.items, o); err != nil {
			return nil, err
		}
	default:
		return nil, packedspatial.NewError(packedspatial.TypeMismatch, "unknown build method")
	}
	return &RTree{buf: buf, meta: meta}, nil
}

// buildHilbert computes dataset bounds, maps each item's centroid to a
// Hilbert distance on the 16-bit grid, sorts stably (ties keep
// insertion order) ascending by distance, then packs the levels
// bottom-up by simple contiguous grouping.
func buildHilbert(buf []byte, meta Metadata, kernel packedspatial.Kernel, items []Box) error {
	bounds := emptyBox
	for _, it := range items {
		bounds.Expand(it)
	}
	w, h := bounds.MaxX-bounds.MinX, bounds.MaxY-bounds.MinY

	type distItem struct {
		dist uint32
		box  Box
		orig uint32
	}
	sorted := make([]distItem, len(items))
	for i, it := range items {
		hx, hy := hilbertXY(it, bounds.MinX, bounds.MinY, w, h)
		sorted[i] = distItem{dist: hilbertIndex(hx, hy), box: it, orig: uint32(i)}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].dist < sorted[j].dist })

	level0 := meta.levels[0]
	for i, it := range sorted {
		pos := level0.Offset + i
		if err := writeBox(buf, kernel, pos, it.box); err != nil {
			return err
		}
		writeNodeIndex(buf, meta.NumNodes(), kernel.Size, meta.IndexWidth(), pos, it.orig)
	}
	packLevelsSequential(buf, meta, kernel)
	return nil
}

// packLevelsSequential builds every level above level 0 from an
// already-written, already-ordered lower level by grouping nodes into
// consecutive runs of nodeSize. The STR method in str.go performs the
// analogous grouping itself, interleaved with its per-level re-tiling.
func packLevelsSequential(buf []byte, meta Metadata, kernel packedspatial.Kernel) {
	numNodes := meta.NumNodes()
	width := meta.IndexWidth()
	nodeSize := int(meta.NodeSize)
	for level := 1; level < len(meta.levels); level++ {
		prev := meta.levels[level-1]
		cur := meta.levels[level]
		for j := 0; j < cur.Count; j++ {
			childStart := prev.Offset + j*nodeSize
			childEnd := childStart + nodeSize
			if prevEnd := prev.Offset + prev.Count; childEnd > prevEnd {
				childEnd = prevEnd
			}
			union := emptyBox
			for c := childStart; c < childEnd; c++ {
				union.Expand(readBox(buf, kernel, c))
			}
			pos := cur.Offset + j
			_ = writeBox(buf, kernel, pos, union) // union of finite boxes is always finite
			writeNodeIndex(buf, numNodes, kernel.Size, width, pos, uint32(childStart))
		}
	}
}
