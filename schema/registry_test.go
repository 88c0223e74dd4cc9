package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbekit/endian"
	"github.com/arloliu/sbekit/errs"
	"github.com/arloliu/sbekit/view"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry(3, view.StandardHeader(), endian.GetLittleEndianEngine())
	require.NoError(t, r.Register(Descriptor{Name: "Quote", TemplateID: 7, SchemaID: 3, Version: 1}))
	require.NoError(t, r.Register(Descriptor{Name: "Book", TemplateID: 8, SchemaID: 3, Version: 1}))
	return r
}

// encodeHeader writes a standard little-endian header.
func encodeHeader(blockLength, templateID, schemaID, version uint64) []byte {
	buf := make([]byte, 16)
	m := view.NewMessage(view.NewRange(buf), view.StandardHeader(), endian.GetLittleEndianEngine())
	m.FillHeader(view.HeaderValues{
		BlockLength: blockLength,
		TemplateID:  templateID,
		SchemaID:    schemaID,
		Version:     version,
	})
	return buf
}

func TestRegistryLookup(t *testing.T) {
	require := require.New(t)
	r := testRegistry(t)

	d, ok := r.ByTemplateID(7)
	require.True(ok)
	require.Equal("Quote", d.Name)

	d, ok = r.ByName("Book")
	require.True(ok)
	require.Equal(uint64(8), d.TemplateID)

	_, ok = r.ByTemplateID(99)
	require.False(ok)
	_, ok = r.ByName("Trade")
	require.False(ok)
}

func TestRegistryDuplicates(t *testing.T) {
	require := require.New(t)
	r := testRegistry(t)

	err := r.Register(Descriptor{Name: "Other", TemplateID: 7, SchemaID: 3})
	require.ErrorIs(err, errs.ErrDuplicateTemplate)

	err = r.Register(Descriptor{Name: "Quote", TemplateID: 9, SchemaID: 3})
	require.ErrorIs(err, errs.ErrDuplicateTemplate)

	err = r.Register(Descriptor{Name: "Alien", TemplateID: 9, SchemaID: 4})
	require.ErrorIs(err, errs.ErrSchemaMismatch)
}

func TestRegistryIdentify(t *testing.T) {
	require := require.New(t)
	r := testRegistry(t)

	d, err := r.Identify(encodeHeader(14, 7, 3, 1))
	require.NoError(err)
	require.Equal("Quote", d.Name)

	_, err = r.Identify(encodeHeader(14, 99, 3, 1))
	require.ErrorIs(err, errs.ErrUnknownTemplate)

	_, err = r.Identify(encodeHeader(14, 7, 5, 1))
	require.ErrorIs(err, errs.ErrSchemaMismatch)

	_, err = r.Identify(nil)
	require.ErrorIs(err, errs.ErrNilBuffer)

	_, err = r.Identify(make([]byte, 4))
	require.ErrorIs(err, errs.ErrBufferTooSmall)
}

func TestRegistryFailedRegisterLeavesNoTrace(t *testing.T) {
	require := require.New(t)
	r := testRegistry(t)

	err := r.Register(Descriptor{Name: "Trade", TemplateID: 7, SchemaID: 3})
	require.ErrorIs(err, errs.ErrDuplicateTemplate)

	// the rejected name stays available for a valid registration
	require.NoError(r.Register(Descriptor{Name: "Trade", TemplateID: 10, SchemaID: 3}))
}

func TestNameHashStable(t *testing.T) {
	require := require.New(t)
	require.Equal(NameHash("Quote"), NameHash("Quote"))
	require.NotEqual(NameHash("Quote"), NameHash("Book"))
}
