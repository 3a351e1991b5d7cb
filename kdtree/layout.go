package kdtree

import "github.com/packedspatial/packedspatial"

// Point is a 2-D point in the working (float64) representation shared
// by the builder and queries.
type Point struct {
	X, Y float64
}

func coordBlockOffset(pos, coordSize int) int {
	return headerSize + pos*2*coordSize
}

func indexBlockStart(numItems, coordSize int) int {
	return headerSize + numItems*2*coordSize
}

// writePoint encodes p at item position pos in the coordinate block.
func writePoint(buf []byte, kernel packedspatial.Kernel, pos int, p Point) error {
	off := coordBlockOffset(pos, kernel.Size)
	if err := kernel.Write(buf[off:], p.X); err != nil {
		return err
	}
	return kernel.Write(buf[off+kernel.Size:], p.Y)
}

// readPoint decodes the point stored at item position pos.
func readPoint(buf []byte, kernel packedspatial.Kernel, pos int) Point {
	off := coordBlockOffset(pos, kernel.Size)
	return Point{
		X: kernel.Read(buf[off:]),
		Y: kernel.Read(buf[off+kernel.Size:]),
	}
}

func writeItemIndex(buf []byte, numItems, coordSize, width, pos int, v uint32) {
	off := indexBlockStart(numItems, coordSize) + pos*width
	packedspatial.WriteIndex(buf[off:], width, v)
}

func readItemIndex(buf []byte, numItems, coordSize, width, pos int) uint32 {
	off := indexBlockStart(numItems, coordSize) + pos*width
	return packedspatial.ReadIndex(buf[off:], width)
}
