package kdtree

import "github.com/packedspatial/packedspatial"

// kdFrame is one pending [lo, hi] range of the packed array still to
// be descended, on the given split axis.
type kdFrame struct {
	lo, hi, axis int
}

// PointView is a read-only view over every point a KDTree stores, in
// packed order. Indexing into it decodes directly from the tree's
// backing buffer on each call rather than copying every point into a
// fresh slice up front. The view aliases the tree's buffer and is
// only valid for as long as the *KDTree it came from.
type PointView struct {
	buf      []byte
	kernel   packedspatial.Kernel
	numItems int
	width    int
}

// Len returns the number of points in the view.
func (v PointView) Len() int {
	return v.numItems
}

// Point decodes and returns the i'th point in packed order, i being in
// [0, Len()).
func (v PointView) Point(i int) Point {
	return readPoint(v.buf, v.kernel, i)
}

// Index decodes and returns the original insertion index of the i'th
// point in packed order.
func (v PointView) Index(i int) uint32 {
	return readItemIndex(v.buf, v.numItems, v.kernel.Size, v.width, i)
}

// Points returns a zero-copy view over every point t stores, in
// packed (not insertion) order.
func (t *KDTree) Points() PointView {
	return PointView{
		buf:      t.buf,
		kernel:   packedspatial.KernelFor(t.meta.CoordType),
		numItems: int(t.meta.NumItems),
		width:    t.meta.IndexWidth(),
	}
}

// Range returns, in implementation-defined but deterministic order,
// the original insertion indices of every point inside the axis-
// aligned box [minX, maxX] × [minY, maxY]. It never errors or panics
// for any query box, including an inverted one (minX > maxX), which
// simply matches nothing.
func (t *KDTree) Range(minX, minY, maxX, maxY float64) []int {
	if t.meta.NumItems == 0 {
		return nil
	}
	kernel := packedspatial.KernelFor(t.meta.CoordType)
	numItems := int(t.meta.NumItems)
	width := t.meta.IndexWidth()
	nodeSize := int(t.meta.NodeSize)

	stack := []kdFrame{{lo: 0, hi: numItems - 1, axis: 0}}
	var results []int

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.hi-f.lo <= nodeSize {
			for i := f.lo; i <= f.hi; i++ {
				p := readPoint(t.buf, kernel, i)
				if p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY {
					idx := readItemIndex(t.buf, numItems, kernel.Size, width, i)
					results = append(results, int(idx))
				}
			}
			continue
		}

		mid := (f.lo + f.hi) / 2
		p := readPoint(t.buf, kernel, mid)
		if p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY {
			idx := readItemIndex(t.buf, numItems, kernel.Size, width, mid)
			results = append(results, int(idx))
		}

		var coord, lo, hi float64
		if f.axis == 0 {
			coord, lo, hi = p.X, minX, maxX
		} else {
			coord, lo, hi = p.Y, minY, maxY
		}
		nextAxis := 1 - f.axis
		if lo <= coord {
			stack = append(stack, kdFrame{lo: f.lo, hi: mid - 1, axis: nextAxis})
		}
		if hi >= coord {
			stack = append(stack, kdFrame{lo: mid + 1, hi: f.hi, axis: nextAxis})
		}
	}
	return results
}

// Within returns the original insertion indices of every point within
// radius r of (qx, qy), using the same axis-bounded descent as Range
// but with a circular (squared-distance) inclusion test. A negative r
// matches nothing; it never errors or panics.
func (t *KDTree) Within(qx, qy, r float64) []int {
	if t.meta.NumItems == 0 || r < 0 {
		return nil
	}
	kernel := packedspatial.KernelFor(t.meta.CoordType)
	numItems := int(t.meta.NumItems)
	width := t.meta.IndexWidth()
	nodeSize := int(t.meta.NodeSize)
	r2 := r * r
	minX, maxX, minY, maxY := qx-r, qx+r, qy-r, qy+r

	stack := []kdFrame{{lo: 0, hi: numItems - 1, axis: 0}}
	var results []int

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.hi-f.lo <= nodeSize {
			for i := f.lo; i <= f.hi; i++ {
				p := readPoint(t.buf, kernel, i)
				dx, dy := p.X-qx, p.Y-qy
				if dx*dx+dy*dy <= r2 {
					idx := readItemIndex(t.buf, numItems, kernel.Size, width, i)
					results = append(results, int(idx))
				}
			}
			continue
		}

		mid := (f.lo + f.hi) / 2
		p := readPoint(t.buf, kernel, mid)
		dx, dy := p.X-qx, p.Y-qy
		if dx*dx+dy*dy <= r2 {
			idx := readItemIndex(t.buf, numItems, kernel.Size, width, mid)
			results = append(results, int(idx))
		}

		var coord, lo, hi float64
		if f.axis == 0 {
			coord, lo, hi = p.X, minX, maxX
		} else {
			coord, lo, hi = p.Y, minY, maxY
		}
		nextAxis := 1 - f.axis
		if lo <= coord {
			stack = append(stack, kdFrame{lo: f.lo, hi: mid - 1, axis: nextAxis})
		}
		if hi >= coord {
			stack = append(stack, kdFrame{lo: mid + 1, hi: f.hi, axis: nextAxis})
		}
	}
	return results
}
