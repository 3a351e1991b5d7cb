package rtree

import (
	"context"
	"math"
	"sort"

	"github.com/packedspatial/packedspatial"
	"golang.org/x/sync/errgroup"
)

// entry is a working (box, position-value) pair used while building
// a level of the STR tree. For the leaf level it is (box, original
// insertion index); for every level above it is (union box,
// first-child node position).
type entry struct {
	box Box
	val uint32
}

// STROption configures the STR (Sort-Tile-Recursive) build method.
type STROption func(*strOptions)

type strOptions struct {
	parallelism int
}

// WithParallelism sets the number of goroutines used to parallelize
// the per-slice sort-by-y phase of each STR level. The sort-by-x phase
// always runs sequentially. A value of 0 or 1 (the default) runs every
// sort phase sequentially on the calling goroutine; correctness never
// depends on this option.
func WithParallelism(n int) STROption {
	return func(o *strOptions) { o.parallelism = n }
}

func applySTROptions(opts []STROption) strOptions {
	var o strOptions
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// buildSTR sorts by min_x, tiles into S vertical slices, sorts each
// slice by min_y, and groups into leaf runs of nodeSize; then recurses
// the same tiling on parent node centers, level by level, until a
// single root remains. Each level's final tiled order is
// written to the buffer as soon as it is fixed, and the next level up
// is built by grouping consecutive runs of that fixed order — so
// parent-child contiguity (required by the packed, pointer-free node
// layout) always holds.
func buildSTR(buf []byte, meta Metadata, kernel packedspatial.Kernel, items []Box, opts strOptions) error {
	nodeSize := int(meta.NodeSize)
	numNodes := meta.NumNodes()
	width := meta.IndexWidth()

	level := make([]entry, len(items))
	for i, it := range items {
		level[i] = entry{box: it, val: uint32(i)}
	}

	for l := 0; l < len(meta.levels)-1; l++ {
		bound := meta.levels[l]
		nextCount := meta.levels[l+1].Count
		s := int(math.Ceil(math.Sqrt(float64(nextCount))))
		sliceSize := s * nodeSize
		tileLevel(level, sliceSize, l == 0, opts)

		for i, e := range level {
			pos := bound.Offset + i
			if err := writeBox(buf, kernel, pos, e.box); err != nil {
				return err
			}
			writeNodeIndex(buf, numNodes, kernel.Size, width, pos, e.val)
		}

		next := make([]entry, nextCount)
		for j := 0; j < nextCount; j++ {
			start := j * nodeSize
			end := start + nodeSize
			if end > len(level) {
				end = len(level)
			}
			union := emptyBox
			for c := start; c < end; c++ {
				union.Expand(level[c].box)
			}
			next[j] = entry{box: union, val: uint32(bound.Offset + start)}
		}
		level = next
	}

	// level now holds the single root entry; write it at its level
	// offset (the last level).
	root := meta.levels[len(meta.levels)-1]
	if err := writeBox(buf, kernel, root.Offset, level[0].box); err != nil {
		return err
	}
	writeNodeIndex(buf, numNodes, kernel.Size, width, root.Offset, level[0].val)
	return nil
}

// tileLevel reorders level in place: sort by x-key ascending (stable,
// so ties keep the incoming order — insertion order at the leaf
// level), then within each contiguous run of sliceSize entries, sort
// by y-key ascending (again stable). leafLevel selects min_x/min_y as
// the key (spec step 2-4); otherwise the key is the node's box center
// (spec step 6, "using node-center points").
func tileLevel(level []entry, sliceSize int, leafLevel bool, opts strOptions) {
	xKey := func(b Box) float64 { return b.centerX() }
	yKey := func(b Box) float64 { return b.centerY() }
	if leafLevel {
		xKey = func(b Box) float64 { return b.MinX }
		yKey = func(b Box) float64 { return b.MinY }
	}

	sortEntries(level, xKey)

	n := len(level)
	slices := make([][]entry, 0, (n+sliceSize-1)/sliceSize)
	for start := 0; start < n; start += sliceSize {
		end := start + sliceSize
		if end > n {
			end = n
		}
		slices = append(slices, level[start:end])
	}
	sortSlices(slices, yKey, opts)
}

func sortEntries(level []entry, key func(Box) float64) {
	sort.SliceStable(level, func(i, j int) bool { return key(level[i].box) < key(level[j].box) })
}

// sortSlices sorts each slice by key, optionally fanning the slices
// out across a bounded pool of goroutines via errgroup when the caller
// requested parallelism: each slice is independent scratch, so this is
// a pure fork-join with no shared mutable state across goroutines.
func sortSlices(slices [][]entry, key func(Box) float64, opts strOptions) {
	if opts.parallelism <= 1 || len(slices) <= 1 {
		for _, s := range slices {
			sort.SliceStable(s, func(i, j int) bool { return key(s[i].box) < key(s[j].box) })
		}
		return
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(opts.parallelism)
	for _, s := range slices {
		s := s
		g.Go(func() error {
			sort.SliceStable(s, func(i, j int) bool { return key(s[i].box) < key(s[j].box) })
			return nil
		})
	}
	_ = g.Wait() // sort.SliceStable never errors; Wait just blocks until every slice is sorted.
}
