package rtree

import "math"

// hilbertMax is the largest coordinate of the 16-bit grid flatbush
// quantizes item centroids onto, i.e. coordinates lie in
// [0, hilbertMax] on each axis. This must stay 16 bits and hilbertMax
// must stay 0xFFFF (65535, not 65536) for bit-for-bit compatibility
// with the reference JavaScript flatbush implementation.
const hilbertMax = 0xFFFF

// hilbertXY maps a box's centroid into the Hilbert quantization grid
// defined by the dataset extent (x, y, w, h). A zero-width or
// zero-height extent maps every centroid to grid coordinate 0 on that
// axis, matching flatbush's behavior for degenerate (all-equal)
// datasets.
func hilbertXY(b Box, x, y, w, h float64) (uint32, uint32) {
	var hx, hy uint32
	if w != 0 {
		hx = uint32(math.Floor(hilbertMax * (b.centerX() - x) / w))
	}
	if h != 0 {
		hy = uint32(math.Floor(hilbertMax * (b.centerY() - y) / h))
	}
	return hx, hy
}

// hilbertIndex computes the distance along a 16th-order Hilbert curve
// of the point (x, y), where x and y each range over [0, hilbertMax].
//
// This is a direct, unparameterized (curve order fixed at 16) port of
// the well-known public-domain bit-twiddling algorithm from
// https://github.com/rawrunprotected/hilbert_curves, the same
// algorithm flatbush itself uses.
func hilbertIndex(x, y uint32) uint32 {
	a := x ^ y
	b := 0xFFFF ^ a
	c := 0xFFFF ^ (x | y)
	d := x & (y ^ 0xFFFF)

	A := a | (b >> 1)
	B := (a >> 1) ^ a
	C := ((c >> 1) ^ (b & (d >> 1))) ^ c
	D := ((a & (c >> 1)) ^ (d >> 1)) ^ d

	a, b, c, d = A, B, C, D
	A = (a & (a >> 2)) ^ (b & (b >> 2))
	B = (a & (b >> 2)) ^ (b & ((a ^ b) >> 2))
	C ^= (a & (c >> 2)) ^ (b & (d >> 2))
	D ^= (b & (c >> 2)) ^ ((a ^ b) & (d >> 2))

	a, b, c, d = A, B, C, D
	A = (a & (a >> 4)) ^ (b & (b >> 4))
	B = (a & (b >> 4)) ^ (b & ((a ^ b) >> 4))
	C ^= (a & (c >> 4)) ^ (b & (d >> 4))
	D ^= (b & (c >> 4)) ^ ((a ^ b) & (d >> 4))

	a, b, c, d = A, B, C, D
	C ^= (a & (c >> 8)) ^ (b & (d >> 8))
	D ^= (b & (c >> 8)) ^ ((a ^ b) & (d >> 8))

	a = C ^ (C >> 1)
	b = D ^ (D >> 1)

	i0 := x ^ y
	i1 := b | (0xFFFF ^ (i0 | a))

	i0 = (i0 | (i0 << 8)) & 0x00FF00FF
	i0 = (i0 | (i0 << 4)) & 0x0F0F0F0F
	i0 = (i0 | (i0 << 2)) & 0x33333333
	i0 = (i0 | (i0 << 1)) & 0x55555555

	i1 = (i1 | (i1 << 8)) & 0x00FF00FF
	i1 = (i1 | (i1 << 4)) & 0x0F0F0F0F
	i1 = (i1 | (i1 << 2)) & 0x33333333
	i1 = (i1 | (i1 << 1)) & 0x55555555

	return (i1 << 1) | i0
}
