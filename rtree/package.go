// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rtree provides an immutable, packed, ABI-stable 2-D R-tree
// spatial index whose entire state lives in a single contiguous byte
// buffer with a fixed layout binary-compatible with the reference
// JavaScript library flatbush (https://github.com/mourner/flatbush).
//
// Construction is a one-shot builder: create with New, Add boxes in
// any number of batches until the declared item count is filled, then
// Finish to sort and pack the buffer. The finished buffer never
// changes again; it may be copied, memory-mapped, or parsed back with
// Parse in a different process.
package rtree
