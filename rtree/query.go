package rtree

import (
	"container/heap"
	"math"

	"github.com/packedspatial/packedspatial"
)

// Search returns, in implementation-defined but deterministic order,
// the original insertion indices of every item whose box intersects
// q. Search never errors and never panics for any q, including
// degenerate (zero-area) or infinite boxes.
func (t *RTree) Search(q Box) []int {
	if t.meta.NumItems == 0 {
		return nil
	}
	kernel := packedspatial.KernelFor(t.meta.CoordType)
	numNodes := t.meta.NumNodes()
	width := t.meta.IndexWidth()
	nodeSize := int(t.meta.NodeSize)
	numLevels := t.meta.NumLevels()

	type frame struct {
		pos, level int
	}
	stack := []frame{{pos: t.meta.levels[numLevels-1].Offset, level: numLevels - 1}}
	var results []int

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		bound := t.meta.levels[f.level]
		end := f.pos + nodeSize
		if levelEnd := bound.Offset + bound.Count; end > levelEnd {
			end = levelEnd
		}
		isLeaf := f.level == 0
		for pos := f.pos; pos < end; pos++ {
			box := readBox(t.buf, kernel, pos)
			if !box.intersects(q) {
				continue
			}
			idx := readNodeIndex(t.buf, numNodes, kernel.Size, width, pos)
			if isLeaf {
				results = append(results, int(idx))
			} else {
				stack = append(stack, frame{pos: int(idx), level: f.level - 1})
			}
		}
	}
	return results
}

// nnCandidate is one entry in the best-first search's min-heap, keyed
// by squared distance to the query point.
type nnCandidate struct {
	distSq float64
	pos    int
	level  int
}

type nnHeap []nnCandidate

func (h nnHeap) Len() int            { return len(h) }
func (h nnHeap) Less(i, j int) bool  { return h[i].distSq < h[j].distSq }
func (h nnHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nnHeap) Push(x interface{}) { *h = append(*h, x.(nnCandidate)) }
func (h *nnHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Neighbors returns the original insertion indices of items nearest to
// (qx, qy), in ascending order of distance, via best-first search over
// a squared-distance min-heap. maxResults < 0 means no limit on result
// count. A NaN or negative maxDistance is treated as +Inf; queries
// never panic on NaN inputs.
func (t *RTree) Neighbors(qx, qy float64, maxResults int, maxDistance float64) []int {
	if t.meta.NumItems == 0 {
		return nil
	}
	if math.IsNaN(maxDistance) || maxDistance < 0 {
		maxDistance = math.Inf(1)
	}
	maxDistSq := maxDistance * maxDistance

	kernel := packedspatial.KernelFor(t.meta.CoordType)
	numNodes := t.meta.NumNodes()
	width := t.meta.IndexWidth()
	numLevels := t.meta.NumLevels()

	rootLevel := numLevels - 1
	rootPos := t.meta.levels[rootLevel].Offset
	rootBox := readBox(t.buf, kernel, rootPos)

	h := &nnHeap{{distSq: rootBox.distSquared(qx, qy), pos: rootPos, level: rootLevel}}
	heap.Init(h)

	var results []int
	for h.Len() > 0 && maxResults != 0 {
		c := heap.Pop(h).(nnCandidate)
		if c.distSq > maxDistSq {
			break
		}
		if c.level == 0 {
			idx := readNodeIndex(t.buf, numNodes, kernel.Size, width, c.pos)
			results = append(results, int(idx))
			if maxResults > 0 {
				maxResults--
			}
			continue
		}
		childLevel := c.level - 1
		childBound := t.meta.levels[childLevel]
		nodeSize := int(t.meta.NodeSize)
		start := int(readNodeIndex(t.buf, numNodes, kernel.Size, width, c.pos))
		end := start + nodeSize
		if levelEnd := childBound.Offset + childBound.Count; end > levelEnd {
			end = levelEnd
		}
		for pos := start; pos < end; pos++ {
			box := readBox(t.buf, kernel, pos)
			heap.Push(h, nnCandidate{distSq: box.distSquared(qx, qy), pos: pos, level: childLevel})
		}
	}
	return results
}

// joinTicket is one pending pair of single nodes, one from each tree,
// still to be tested for intersection.
type joinTicket struct {
	posA, levelA int
	posB, levelB int
}

// TreeJoin returns, as two equal-length parallel slices of original
// insertion indices, every pair of items (one from t, one from other)
// whose boxes intersect. It descends a dual stack of
// single-node pairs, always expanding the child nodes of whichever
// side currently sits at the higher level (ties favor t), so the
// total work stays close to O(|t| + |other| + |results|) rather than
// the O(|t|·|other|) of a naive cross product.
func (t *RTree) TreeJoin(other *RTree) (left, right []uint32) {
	if t.meta.NumItems == 0 || other.meta.NumItems == 0 {
		return nil, nil
	}
	kernelA := packedspatial.KernelFor(t.meta.CoordType)
	kernelB := packedspatial.KernelFor(other.meta.CoordType)
	numNodesA, widthA := t.meta.NumNodes(), t.meta.IndexWidth()
	numNodesB, widthB := other.meta.NumNodes(), other.meta.IndexWidth()
	nodeSizeA, nodeSizeB := int(t.meta.NodeSize), int(other.meta.NodeSize)

	rootLevelA := t.meta.NumLevels() - 1
	rootLevelB := other.meta.NumLevels() - 1
	stack := []joinTicket{{
		posA: t.meta.levels[rootLevelA].Offset, levelA: rootLevelA,
		posB: other.meta.levels[rootLevelB].Offset, levelB: rootLevelB,
	}}

	for len(stack) > 0 {
		tk := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		boxA := readBox(t.buf, kernelA, tk.posA)
		boxB := readBox(other.buf, kernelB, tk.posB)
		if !boxA.intersects(boxB) {
			continue
		}

		isLeafA := tk.levelA == 0
		isLeafB := tk.levelB == 0
		if isLeafA && isLeafB {
			idxA := readNodeIndex(t.buf, numNodesA, kernelA.Size, widthA, tk.posA)
			idxB := readNodeIndex(other.buf, numNodesB, kernelB.Size, widthB, tk.posB)
			left = append(left, idxA)
			right = append(right, idxB)
			continue
		}

		if !isLeafA && (isLeafB || tk.levelA >= tk.levelB) {
			childLevel := tk.levelA - 1
			bound := t.meta.levels[childLevel]
			start := int(readNodeIndex(t.buf, numNodesA, kernelA.Size, widthA, tk.posA))
			end := start + nodeSizeA
			if levelEnd := bound.Offset + bound.Count; end > levelEnd {
				end = levelEnd
			}
			for c := start; c < end; c++ {
				stack = append(stack, joinTicket{posA: c, levelA: childLevel, posB: tk.posB, levelB: tk.levelB})
			}
		} else {
			childLevel := tk.levelB - 1
			bound := other.meta.levels[childLevel]
			start := int(readNodeIndex(other.buf, numNodesB, kernelB.Size, widthB, tk.posB))
			end := start + nodeSizeB
			if levelEnd := bound.Offset + bound.Count; end > levelEnd {
				end = levelEnd
			}
			for c := start; c < end; c++ {
				stack = append(stack, joinTicket{posA: tk.posA, levelA: tk.levelA, posB: c, levelB: childLevel})
			}
		}
	}
	return left, right
}

// LevelView is a read-only view over one level of an RTree's node
// array. Indexing into it decodes directly from the tree's backing
// buffer on each call rather than copying the level into a fresh
// slice up front, so inspecting one or two nodes of a large level
// costs O(1) instead of O(level size). The view aliases the tree's
// buffer and is only valid for as long as the *RTree it came from.
type LevelView struct {
	buf      []byte
	kernel   packedspatial.Kernel
	numNodes int
	width    int
	bound    LevelBound
}

// Len returns the number of nodes in the view.
func (v LevelView) Len() int {
	return v.bound.Count
}

// Box decodes and returns the box of the i'th node in the view, i
// being in [0, Len()).
func (v LevelView) Box(i int) Box {
	return readBox(v.buf, v.kernel, v.bound.Offset+i)
}

// Index decodes and returns the raw index-array entry of the i'th
// node in the view: for level 0 this is the original insertion index
// (a permutation of 0..NumItems-1); for every level above, it is the
// first-child node position of the node one level down.
func (v LevelView) Index(i int) uint32 {
	return readNodeIndex(v.buf, v.numNodes, v.kernel.Size, v.width, v.bound.Offset+i)
}

// LevelView returns a zero-copy view over level's nodes, 0 being the
// leaf (item) level. It returns LevelOutOfRange if level is not a
// valid level of t.
func (t *RTree) LevelView(level int) (LevelView, error) {
	bound, err := t.meta.LevelBounds(level)
	if err != nil {
		return LevelView{}, err
	}
	return LevelView{
		buf:      t.buf,
		kernel:   packedspatial.KernelFor(t.meta.CoordType),
		numNodes: t.meta.NumNodes(),
		width:    t.meta.IndexWidth(),
		bound:    bound,
	}, nil
}

// BoxesAtLevel returns the decoded boxes of every node at the given
// level, 0 being the leaf (item) level, in stored order, copied into a
// fresh slice. Prefer LevelView when only a few nodes of a large level
// are needed. It returns LevelOutOfRange if level is not a valid level
// of t.
func (t *RTree) BoxesAtLevel(level int) ([]Box, error) {
	v, err := t.LevelView(level)
	if err != nil {
		return nil, err
	}
	boxes := make([]Box, v.Len())
	for i := range boxes {
		boxes[i] = v.Box(i)
	}
	return boxes, nil
}

// IndicesAtLevel returns the raw index-array entries of every node at
// the given level, in stored order, copied into a fresh slice: for
// level 0 these are original insertion indices (a permutation of
// 0..NumItems-1); for every level above, each is the first-child node
// position of the node one level down. Prefer LevelView when only a
// few nodes of a large level are needed.
func (t *RTree) IndicesAtLevel(level int) ([]uint32, error) {
	v, err := t.LevelView(level)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, v.Len())
	for i := range out {
		out[i] = v.Index(i)
	}
	return out, nil
}
