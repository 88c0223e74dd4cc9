// Package prim implements endian-aware encode and decode of fixed-width
// scalars at known byte offsets.
//
// Decoding reads the scalar's width in bytes, applies the declared byte order
// through an endian.EndianEngine, and reinterprets the bit pattern as the
// requested Go type. Single-byte values are order-independent. The functions
// perform no bounds checking; callers slice the buffer to the field location
// first, which is how the view package drives them after its own range checks.
package prim

import (
	"math"
	"unsafe"

	"github.com/arloliu/sbekit/endian"
)

// Scalar is the set of wire types a schema field can carry: fixed-width
// integers and IEEE-754 floats.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Unsigned is the subset of Scalar usable for length prefixes, bitsets and
// header count fields.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SizeOf returns the encoded width of T in bytes.
func SizeOf[T Scalar]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Get decodes a T from the start of b using the given byte order.
// b must hold at least SizeOf[T]() bytes.
func Get[T Scalar](b []byte, engine endian.EndianEngine) T {
	var v T
	switch unsafe.Sizeof(v) {
	case 1:
		u := b[0]
		return *(*T)(unsafe.Pointer(&u))
	case 2:
		u := engine.Uint16(b)
		return *(*T)(unsafe.Pointer(&u))
	case 4:
		u := engine.Uint32(b)
		return *(*T)(unsafe.Pointer(&u))
	default:
		u := engine.Uint64(b)
		return *(*T)(unsafe.Pointer(&u))
	}
}

// Put encodes v at the start of b using the given byte order.
// b must hold at least SizeOf[T]() bytes.
func Put[T Scalar](b []byte, engine endian.EndianEngine, v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		b[0] = *(*byte)(unsafe.Pointer(&v))
	case 2:
		engine.PutUint16(b, *(*uint16)(unsafe.Pointer(&v)))
	case 4:
		engine.PutUint32(b, *(*uint32)(unsafe.Pointer(&v)))
	default:
		engine.PutUint64(b, *(*uint64)(unsafe.Pointer(&v)))
	}
}

// GetUint decodes an unsigned integer of the given byte width (1, 2, 4 or 8)
// from the start of b. Header layouts use it to read count fields whose width
// is only known at run time.
func GetUint(b []byte, width int, engine endian.EndianEngine) uint64 {
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(engine.Uint16(b))
	case 4:
		return uint64(engine.Uint32(b))
	default:
		return engine.Uint64(b)
	}
}

// PutUint encodes v as an unsigned integer of the given byte width
// (1, 2, 4 or 8) at the start of b.
func PutUint(b []byte, width int, engine endian.EndianEngine, v uint64) {
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		engine.PutUint16(b, uint16(v))
	case 4:
		engine.PutUint32(b, uint32(v))
	default:
		engine.PutUint64(b, v)
	}
}

// MaxUint returns the largest value representable in an unsigned integer of
// the given byte width.
func MaxUint(width int) uint64 {
	switch width {
	case 1:
		return math.MaxUint8
	case 2:
		return math.MaxUint16
	case 4:
		return math.MaxUint32
	default:
		return math.MaxUint64
	}
}
