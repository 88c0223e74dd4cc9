package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	// Verify the result matches the actual system endianness
	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		// Big-endian system
		require.Equal(binary.BigEndian, result, "CheckEndianness() should return BigEndian")
	case 0x02:
		// Little-endian system
		require.Equal(binary.LittleEndian, result, "CheckEndianness() should return LittleEndian")
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestIsNativeEndiannessInverse(t *testing.T) {
	// IsNativeLittleEndian and IsNativeBigEndian should be inverses
	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())
}

func TestGetNativeEngine(t *testing.T) {
	engine := GetNativeEngine()
	require.True(t, CompareNativeEndian(engine))

	// Native engine must agree with host byte order when round-tripping
	buf := make([]byte, 8)
	var v uint64 = 0x0102030405060708
	engine.PutUint64(buf, v)
	require.Equal(t, v, engine.Uint64(buf))
}

func TestGetEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestReverseUint16(t *testing.T) {
	require.Equal(t, uint16(0x3412), ReverseUint16(0x1234))
	require.Equal(t, uint16(0), ReverseUint16(0))
	require.Equal(t, uint16(0xFFFF), ReverseUint16(0xFFFF))
}

func TestReverseUint32(t *testing.T) {
	require.Equal(t, uint32(0x78563412), ReverseUint32(0x12345678))
	require.Equal(t, uint32(0x12345678), ReverseUint32(ReverseUint32(0x12345678)))
}

func TestReverseUint64(t *testing.T) {
	require.Equal(t, uint64(0xEFCDAB8967452301), ReverseUint64(0x0123456789ABCDEF))
	require.Equal(t, uint64(0x0123456789ABCDEF), ReverseUint64(ReverseUint64(0x0123456789ABCDEF)))
}

func TestEnginesDisagreeOnMultiByte(t *testing.T) {
	le := make([]byte, 4)
	be := make([]byte, 4)
	GetLittleEndianEngine().PutUint32(le, 0x12345678)
	GetBigEndianEngine().PutUint32(be, 0x12345678)

	require.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, le)
	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, be)

	// One order's encoding read with the other order is the byte reversal
	require.Equal(t, ReverseUint32(0x12345678), GetBigEndianEngine().Uint32(le))
}
