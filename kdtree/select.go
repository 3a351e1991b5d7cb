package kdtree

import "math"

// axisValue returns the coordinate of p on the given axis: 0 for x,
// 1 for y.
func axisValue(p Point, axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// swapItem exchanges points[i]/points[j] and their parallel ids[i]/ids[j],
// keeping the index permutation in lock-step with the coordinates it
// describes.
func swapItem(points []Point, ids []uint32, i, j int) {
	points[i], points[j] = points[j], points[i]
	ids[i], ids[j] = ids[j], ids[i]
}

// selectRange partitions points[left..right] (inclusive) in place so
// that points[k] holds the element that would be at position k were
// the range fully sorted by axis, with every element to its left no
// greater and every element to its right no smaller. This is the
// Floyd-Rivest variant of quickselect: expected linear time, with a
// recursive narrowing step for large ranges that keeps worst-case
// comparisons low. ids is permuted in lock-step with points.
//
// Equal keys break ties by the lower id first so that, combined with
// deterministic swap order, two builds over the same input produce
// the same packed layout.
func selectRange(points []Point, ids []uint32, k, left, right, axis int) {
	// cmp orders points[i] against the pivot (tv, tid) by axis value,
	// then by id.
	cmp := func(i int, tv float64, tid uint32) int {
		v := axisValue(points[i], axis)
		switch {
		case v < tv || (v == tv && ids[i] < tid):
			return -1
		case v > tv || (v == tv && ids[i] > tid):
			return 1
		}
		return 0
	}
	for right > left {
		if right-left > 600 {
			n := float64(right - left + 1)
			m := float64(k - left + 1)
			z := math.Log(n)
			s := 0.5 * math.Exp(2*z/3)
			sd := 0.5 * math.Sqrt(z*s*(n-s)/n)
			if m-n/2 < 0 {
				sd = -sd
			}
			newLeft := int(math.Max(float64(left), math.Floor(float64(k)-m*s/n+sd)))
			newRight := int(math.Min(float64(right), math.Floor(float64(k)+(n-m)*s/n+sd)))
			selectRange(points, ids, k, newLeft, newRight, axis)
		}

		tv, tid := axisValue(points[k], axis), ids[k]
		i, j := left, right

		swapItem(points, ids, left, k)
		if cmp(right, tv, tid) > 0 {
			swapItem(points, ids, left, right)
		}

		for i < j {
			swapItem(points, ids, i, j)
			i++
			j--
			for cmp(i, tv, tid) < 0 {
				i++
			}
			for cmp(j, tv, tid) > 0 {
				j--
			}
		}

		if cmp(left, tv, tid) == 0 {
			swapItem(points, ids, left, j)
		} else {
			j++
			swapItem(points, ids, j, right)
		}

		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

// sortKD performs a recursive median split: stop once a range holds
// no more than nodeSize points; otherwise partition around the middle
// index on the current axis and recurse into both halves, alternating
// axes.
func sortKD(points []Point, ids []uint32, nodeSize, left, right, axis int) {
	if right-left <= nodeSize {
		return
	}
	mid := (left + right) / 2
	selectRange(points, ids, mid, left, right, axis)
	sortKD(points, ids, nodeSize, left, mid-1, 1-axis)
	sortKD(points, ids, nodeSize, mid+1, right, 1-axis)
}
