package rtree

import (
	"github.com/packedspatial/packedspatial"
	"github.com/packedspatial/packedspatial/littleendian"
)

// magic is the first header byte identifying a packed R-tree buffer.
const magic = 0xFB

// version is the only supported header version, packed into the high
// nibble of header byte 1 alongside the CoordType tag in the low
// nibble.
const version = 0x3

// headerSize is the fixed size in bytes of every R-tree header.
const headerSize = 8

// header is the decoded form of the 8-byte buffer header.
type header struct {
	coordType packedspatial.CoordType
	nodeSize  uint16
	numItems  uint32
}

func writeHeader(buf []byte, h header) {
	buf[0] = magic
	buf[1] = version<<4 | byte(h.coordType)
	lePutUint16(buf[2:4], h.nodeSize)
	lePutUint32(buf[4:8], h.numItems)
}

// parseHeader validates and decodes the 8-byte header at the start of
// buf. It does not validate the total buffer length; callers combine
// it with Metadata.NumBytes to do that.
func parseHeader(buf []byte) (header, error) {
	if len(buf) < headerSize {
		return header{}, packedspatial.NewError(packedspatial.BadBuffer, "buffer shorter than header")
	}
	if buf[0] != magic {
		return header{}, packedspatial.NewError(packedspatial.BadBuffer, "bad magic byte for R-tree")
	}
	gotVersion := buf[1] >> 4
	if gotVersion != version {
		return header{}, packedspatial.NewError(packedspatial.BadBuffer, "unsupported version")
	}
	coordType := packedspatial.CoordType(buf[1] & 0x0F)
	if !coordType.Valid() {
		return header{}, packedspatial.NewError(packedspatial.BadBuffer, "unknown coordinate type tag")
	}
	return header{
		coordType: coordType,
		nodeSize:  leUint16(buf[2:4]),
		numItems:  leUint32(buf[4:8]),
	}, nil
}

func leUint16(b []byte) uint16       { return littleendian.Uint16(b) }
func lePutUint16(b []byte, v uint16) { littleendian.PutUint16(b, v) }
func leUint32(b []byte) uint32       { return littleendian.Uint32(b) }
func lePutUint32(b []byte, v uint32) { littleendian.PutUint32(b, v) }
