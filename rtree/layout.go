package rtree

import "github.com/packedspatial/packedspatial"

// coordBlockOffset returns the byte offset of node pos's first
// coordinate (MinX) within the coordinate block.
func coordBlockOffset(pos, coordSize int) int {
	return headerSize + pos*4*coordSize
}

// indexBlockStart returns the byte offset where the index array
// begins, immediately after the coordinate block for all numNodes
// nodes.
func indexBlockStart(numNodes, coordSize int) int {
	return headerSize + numNodes*4*coordSize
}

// writeBox encodes box into the coordinate block at node position pos
// using kernel, the storage width for this index's CoordType.
func writeBox(buf []byte, kernel packedspatial.Kernel, pos int, box Box) error {
	off := coordBlockOffset(pos, kernel.Size)
	if err := kernel.Write(buf[off:], box.MinX); err != nil {
		return err
	}
	if err := kernel.Write(buf[off+kernel.Size:], box.MinY); err != nil {
		return err
	}
	if err := kernel.Write(buf[off+2*kernel.Size:], box.MaxX); err != nil {
		return err
	}
	if err := kernel.Write(buf[off+3*kernel.Size:], box.MaxY); err != nil {
		return err
	}
	return nil
}

// readBox decodes the box stored at node position pos.
func readBox(buf []byte, kernel packedspatial.Kernel, pos int) Box {
	off := coordBlockOffset(pos, kernel.Size)
	return Box{
		MinX: kernel.Read(buf[off:]),
		MinY: kernel.Read(buf[off+kernel.Size:]),
		MaxX: kernel.Read(buf[off+2*kernel.Size:]),
		MaxY: kernel.Read(buf[off+3*kernel.Size:]),
	}
}

// writeNodeIndex encodes v as the index-array entry for node pos.
func writeNodeIndex(buf []byte, numNodes, coordSize, width, pos int, v uint32) {
	off := indexBlockStart(numNodes, coordSize) + pos*width
	packedspatial.WriteIndex(buf[off:], width, v)
}

// readNodeIndex decodes the index-array entry for node pos.
func readNodeIndex(buf []byte, numNodes, coordSize, width, pos int) uint32 {
	off := indexBlockStart(numNodes, coordSize) + pos*width
	return packedspatial.ReadIndex(buf[off:], width)
}
