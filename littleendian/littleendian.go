// Package littleendian provides portable, alignment-free little-endian
// encode/decode helpers for the fixed-width integers used by the packed
// index binary layouts.
//
// Every function here operates on a byte slice directly, never on an
// unsafe.Pointer cast of a struct, so callers never need to worry about
// the natural alignment of the underlying array: the packed coordinate
// and index blocks are laid out back-to-back with no padding, and on
// many platforms that means reads at offsets that are not multiples of
// the coordinate width.
package littleendian

// Uint16 decodes a little-endian uint16 from the first two bytes of b.
func Uint16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler: see golang.org/issue/14808
	return uint16(b[0]) | uint16(b[1])<<8
}

// PutUint16 encodes v as little-endian into the first two bytes of b.
func PutUint16(b []byte, v uint16) {
	_ = b[1]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

// Uint32 decodes a little-endian uint32 from the first four bytes of b.
func Uint32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler: see golang.org/issue/14808
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// PutUint32 encodes v as little-endian into the first four bytes of b.
func PutUint32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// Uint64 decodes a little-endian uint64 from the first eight bytes of b.
func Uint64(b []byte) uint64 {
	_ = b[7] // Bounds check hint to compiler: see golang.org/issue/14808
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// PutUint64 encodes v as little-endian into the first eight bytes of b.
func PutUint64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
