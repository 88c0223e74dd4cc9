// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface.
// Schema-declared byte orders (little, big, or native) resolve to one of the
// two standard engines; decoding reverses bytes only when the declared order
// differs from the host order, and single-byte values never reverse.
//
// # Basic Usage
//
// SBE schemas default to little-endian, so most users want GetLittleEndianEngine():
//
//	import "github.com/arloliu/sbekit/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	v := engine.Uint32(buf)
//
// For schemas that declare a big-endian byte order:
//
//	engine := endian.GetBigEndianEngine()
//
// A schema-declared "native" order resolves to the host order:
//
//	engine := endian.GetNativeEngine()
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	// Create a byte slice pointing to the memory address of 'i'.
	// We only need the first byte.
	b := (*[2]byte)(unsafe.Pointer(&i))

	// Check the first byte at the lowest memory address
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	if IsNativeBigEndian() {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// ReverseUint16 returns v with its two bytes swapped.
func ReverseUint16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// ReverseUint32 returns v with its four bytes reversed.
func ReverseUint32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// ReverseUint64 returns v with its eight bytes reversed.
func ReverseUint64(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}
