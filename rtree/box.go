// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"fmt"
	"math"
)

// Box is an axis-aligned bounding box in the working (float64)
// representation shared by the builder and queries. It is converted
// to/from the index's storage CoordType by a packedspatial.Kernel only
// at the buffer boundary, so the rest of the package never needs to
// know the storage width.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// emptyBox is an inverted box that Expand always widens. It must never
// be written to a buffer or returned from a query: it exists purely as
// the zero value for a running union.
var emptyBox = Box{
	MinX: math.Inf(1),
	MinY: math.Inf(1),
	MaxX: math.Inf(-1),
	MaxY: math.Inf(-1),
}

func (b Box) String() string {
	return fmt.Sprintf("[%.8g,%.8g,%.8g,%.8g]", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// Expand grows b, if necessary, to be the smallest box containing both
// b and o.
func (b *Box) Expand(o Box) {
	if o.MinX < b.MinX {
		b.MinX = o.MinX
	}
	if o.MinY < b.MinY {
		b.MinY = o.MinY
	}
	if o.MaxX > b.MaxX {
		b.MaxX = o.MaxX
	}
	if o.MaxY > b.MaxY {
		b.MaxY = o.MaxY
	}
}

// intersects reports whether b and o share at least one point. Boxes
// that only touch along an edge or at a corner count as intersecting.
func (b Box) intersects(o Box) bool {
	return b.MaxX >= o.MinX && b.MaxY >= o.MinY && b.MinX <= o.MaxX && b.MinY <= o.MaxY
}

func (b Box) centerX() float64 {
	return (b.MinX + b.MaxX) / 2
}

func (b Box) centerY() float64 {
	return (b.MinY + b.MaxY) / 2
}

// distSquared returns the squared distance from the point (x, y) to
// the closest point of b, zero if the point lies inside b.
func (b Box) distSquared(x, y float64) float64 {
	dx := math.Max(0, math.Max(b.MinX-x, x-b.MaxX))
	dy := math.Max(0, math.Max(b.MinY-y, y-b.MaxY))
	return dx*dx + dy*dy
}

func (b Box) isFinite() bool {
	return !math.IsNaN(b.MinX) && !math.IsNaN(b.MinY) && !math.IsNaN(b.MaxX) && !math.IsNaN(b.MaxY)
}
