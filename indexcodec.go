package packedspatial

// IndexWidth returns the byte width (2 or 4) of the index array
// entries for a packed index holding n positions: u16 when n fits in
// 16 bits, else u32. n is num_nodes for the R-tree and num_items for
// the k-d tree.
func IndexWidth(n int) int {
	if n < 1<<16 {
		return 2
	}
	return 4
}

// ReadIndex decodes an index-array entry of the given width (2 or 4,
// as returned by IndexWidth) from b[0:width].
func ReadIndex(b []byte, width int) uint32 {
	if width == 2 {
		return uint32(leUint16(b))
	}
	return leUint32(b)
}

// WriteIndex encodes v into b[0:width] as an index-array entry of the
// given width (2 or 4, as returned by IndexWidth). It panics if v does
// not fit in a 2-byte index and width is 2; callers choose width from
// IndexWidth(n) so this can only happen on programmer error.
func WriteIndex(b []byte, width int, v uint32) {
	if width == 2 {
		if v > 0xFFFF {
			textPanic("index value overflows 16-bit index width")
		}
		lePutUint16(b, uint16(v))
		return
	}
	lePutUint32(b, v)
}
