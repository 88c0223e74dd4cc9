package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Full encode/decode cycle over a message with a fixed block, a flat group
// of three entries and a five byte data blob.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 128)
	legs := [][2]uint32{{101, 1}, {202, 2}, {303, 3}}
	note := []byte("hello")
	size := encodeQuote(buf, 77, 12, 1234.5, legs, note)

	// encoded size is the exact sum of the parts
	require.Equal(8+quoteBlockLength+4+3*legBlockLength+1+len(note), size)

	m := makeQuote(buf)
	require.Equal(uint64(quoteTemplateID), m.TemplateID())
	require.Equal(uint64(quoteSchemaID), m.SchemaID())
	require.Equal(uint64(quoteVersion), m.Version())
	require.Equal(quoteBlockLength, m.BlockLength())

	c := InitCursor(m)
	require.Equal(uint32(77), m.ID(c, ModeDefault))
	require.Equal(uint16(12), m.Qty(c, ModeDefault))
	require.Equal(1234.5, m.Px(c, ModeDefault))

	g := m.Legs(c, ModeDefault)
	require.Equal(3, g.Len())
	i := 0
	for _, e := range g.CursorEntries(c) {
		require.Equal(legs[i][0], e.LegID(c, ModeDefault))
		require.Equal(legs[i][1], e.Ratio(c, ModeDefault))
		i++
	}
	require.Equal(3, i)

	d := m.Note(c, ModeDefault)
	require.Equal(note, d.Bytes())
	require.Equal(size, m.SizeBytesFast(c))

	// the whole message validates at its exact size, and one byte less
	// must be rejected
	require.True(SizeBytesChecked(m, size).Valid)
	require.Equal(size, SizeBytesChecked(m, size).Size)
	require.False(SizeBytesChecked(m, size-1).Valid)
}

// Random access through stateless accessors must agree with the cursor pass.
func TestStatelessMatchesCursorAccess(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 128)
	encodeQuote(buf, 9, 3, 0.5, [][2]uint32{{5, 50}}, []byte("ab"))
	m := makeQuote(buf)

	require.Equal(uint32(9), m.IDDirect())
	require.Equal(uint32(9), GetValue[uint32](m, 0, le))
	require.Equal(uint16(3), GetValue[uint16](m, 4, le))
	require.Equal(0.5, GetValue[float64](m, 6, le))

	g := m.LegsDirect()
	require.Equal(1, g.Len())
	require.Equal([]byte("ab"), m.NoteDirect().Bytes())

	// direct writes are immediately visible to cursor reads
	m.SetIDDirect(11)
	c := InitCursor(m)
	require.Equal(uint32(11), m.ID(c, ModeDefault))
}
