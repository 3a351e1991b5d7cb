package packedspatial

import (
	"math"

	"github.com/packedspatial/packedspatial/littleendian"
)

// CoordType is the closed tag of coordinate storage widths shared by
// every packed index. All coordinates within a given index share one
// CoordType; it is stored in the 8-byte header and encodes as a
// single nibble.
type CoordType uint8

// The eight supported coordinate types, numbered to match the low
// nibble of byte 1 of the header exactly as flatbush/kdbush define it.
const (
	F64 CoordType = iota
	F32
	I8
	U8
	I16
	U16
	I32
	U32
)

// Valid reports whether c is one of the eight supported coordinate
// types.
func (c CoordType) Valid() bool {
	return c <= U32
}

func (c CoordType) String() string {
	switch c {
	case F64:
		return "F64"
	case F32:
		return "F32"
	case I8:
		return "I8"
	case U8:
		return "U8"
	case I16:
		return "I16"
	case U16:
		return "U16"
	case I32:
		return "I32"
	case U32:
		return "U32"
	default:
		return "CoordType(invalid)"
	}
}

// Size returns the width in bytes of a single coordinate of this type.
// It panics if c is not Valid; callers that derive c from untrusted
// input must check Valid first (see FromBuffer in the rtree/kdtree
// packages, which does exactly that before ever calling Size).
func (c CoordType) Size() int {
	switch c {
	case F64:
		return 8
	case F32, I32, U32:
		return 4
	case I16, U16:
		return 2
	case I8, U8:
		return 1
	default:
		textPanic("Size called on invalid CoordType")
		return 0
	}
}

// Kernel is the capability set a coordinate type must provide to the
// generic tree-building and query code: read a coordinate out of a
// byte buffer, write one in, and convert to/from the float64 used for
// Hilbert quantization and distance math. Rather than modeling this
// with an interface/inheritance hierarchy, each CoordType resolves to
// one Kernel value containing monomorphised closures over the
// coordinate width.
type Kernel struct {
	Size int
	// Read decodes the coordinate stored at b[0:Size] as a float64.
	Read func(b []byte) float64
	// Write encodes v into b[0:Size], using a correctly-rounded cast
	// for integer coordinate types. It returns InvalidCoordinate if v
	// is NaN (float types) or cannot be represented at all (integer
	// types receiving an infinite value).
	Write func(b []byte, v float64) error
}

// KernelFor returns the Kernel for c. It panics if c is not Valid; the
// header-parsing code in rtree/kdtree always validates the coordinate
// tag before calling KernelFor.
func KernelFor(c CoordType) Kernel {
	switch c {
	case F64:
		return f64Kernel
	case F32:
		return f32Kernel
	case I8:
		return i8Kernel
	case U8:
		return u8Kernel
	case I16:
		return i16Kernel
	case U16:
		return u16Kernel
	case I32:
		return i32Kernel
	case U32:
		return u32Kernel
	default:
		textPanic("KernelFor called on invalid CoordType")
		panic("unreachable")
	}
}

func checkFinite(v float64) error {
	if math.IsNaN(v) {
		return NewError(InvalidCoordinate, "coordinate is NaN")
	}
	return nil
}

func checkInteger(v float64) error {
	if err := checkFinite(v); err != nil {
		return err
	}
	if math.IsInf(v, 0) {
		return NewError(InvalidCoordinate, "coordinate is infinite")
	}
	return nil
}

var f64Kernel = Kernel{
	Size: 8,
	Read: func(b []byte) float64 {
		return math.Float64frombits(leUint64(b))
	},
	Write: func(b []byte, v float64) error {
		if err := checkFinite(v); err != nil {
			return err
		}
		lePutUint64(b, math.Float64bits(v))
		return nil
	},
}

var f32Kernel = Kernel{
	Size: 4,
	Read: func(b []byte) float64 {
		return float64(math.Float32frombits(leUint32(b)))
	},
	Write: func(b []byte, v float64) error {
		if err := checkFinite(v); err != nil {
			return err
		}
		lePutUint32(b, math.Float32bits(float32(v)))
		return nil
	},
}

var i8Kernel = Kernel{
	Size: 1,
	Read: func(b []byte) float64 {
		return float64(int8(b[0]))
	},
	Write: func(b []byte, v float64) error {
		if err := checkInteger(v); err != nil {
			return err
		}
		b[0] = byte(int8(math.Round(v)))
		return nil
	},
}

var u8Kernel = Kernel{
	Size: 1,
	Read: func(b []byte) float64 {
		return float64(b[0])
	},
	Write: func(b []byte, v float64) error {
		if err := checkInteger(v); err != nil {
			return err
		}
		b[0] = byte(uint8(math.Round(v)))
		return nil
	},
}

var i16Kernel = Kernel{
	Size: 2,
	Read: func(b []byte) float64 {
		return float64(int16(leUint16(b)))
	},
	Write: func(b []byte, v float64) error {
		if err := checkInteger(v); err != nil {
			return err
		}
		lePutUint16(b, uint16(int16(math.Round(v))))
		return nil
	},
}

var u16Kernel = Kernel{
	Size: 2,
	Read: func(b []byte) float64 {
		return float64(leUint16(b))
	},
	Write: func(b []byte, v float64) error {
		if err := checkInteger(v); err != nil {
			return err
		}
		lePutUint16(b, uint16(math.Round(v)))
		return nil
	},
}

var i32Kernel = Kernel{
	Size: 4,
	Read: func(b []byte) float64 {
		return float64(int32(leUint32(b)))
	},
	Write: func(b []byte, v float64) error {
		if err := checkInteger(v); err != nil {
			return err
		}
		lePutUint32(b, uint32(int32(math.Round(v))))
		return nil
	},
}

var u32Kernel = Kernel{
	Size: 4,
	Read: func(b []byte) float64 {
		return float64(leUint32(b))
	},
	Write: func(b []byte, v float64) error {
		if err := checkInteger(v); err != nil {
			return err
		}
		lePutUint32(b, uint32(math.Round(v)))
		return nil
	},
}

func leUint16(b []byte) uint16        { return littleendian.Uint16(b) }
func lePutUint16(b []byte, v uint16)  { littleendian.PutUint16(b, v) }
func leUint32(b []byte) uint32        { return littleendian.Uint32(b) }
func lePutUint32(b []byte, v uint32)  { littleendian.PutUint32(b, v) }
func leUint64(b []byte) uint64        { return littleendian.Uint64(b) }
func lePutUint64(b []byte, v uint64)  { littleendian.PutUint64(b, v) }
