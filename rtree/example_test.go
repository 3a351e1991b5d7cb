// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree_test

import (
	"fmt"
	"math"

	"github.com/packedspatial/packedspatial"
	"github.com/packedspatial/packedspatial/rtree"
)

func ExampleNew() {
	boxes := []rtree.Box{
		{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2},
		{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3},
		{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4},
	}
	b, _ := rtree.New(uint32(len(boxes)), 16, packedspatial.F64) // Ignore error ONLY to keep example simple.
	for _, box := range boxes {
		_, _ = b.Add(box.MinX, box.MinY, box.MaxX, box.MaxY)
	}
	tree, _ := b.Finish(rtree.Hilbert)

	fmt.Println(tree.Bounds())
	// Output: [0,0,4,4]
}

func ExampleRTree_Search() {
	b, _ := rtree.New(1, 16, packedspatial.F64) // Ignore error ONLY to keep example simple.
	_, _ = b.Add(10, 10, 20, 20)
	tree, _ := b.Finish(rtree.Hilbert)

	fmt.Println(tree.Search(rtree.Box{MinX: 15, MinY: 15, MaxX: 15, MaxY: 15}))
	fmt.Println(tree.Search(rtree.Box{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}))
	// Output: [0]
	// []
}

func ExampleRTree_Neighbors() {
	boxes := []rtree.Box{
		{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2},
		{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3},
		{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4},
	}
	b, _ := rtree.New(uint32(len(boxes)), 16, packedspatial.F64) // Ignore error ONLY to keep example simple.
	for _, box := range boxes {
		_, _ = b.Add(box.MinX, box.MinY, box.MaxX, box.MaxY)
	}
	tree, _ := b.Finish(rtree.Hilbert)

	fmt.Println(tree.Neighbors(5, 5, -1, math.Inf(1)))
	// Output: [2 1 0]
}
