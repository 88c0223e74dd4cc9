package view

import (
	"github.com/arloliu/sbekit/endian"
	"github.com/arloliu/sbekit/fault"
	"github.com/arloliu/sbekit/prim"
)

// Field locates one unsigned header field inside a composite: a byte offset
// from the composite start and an encoded width of 1, 2, 4 or 8 bytes.
// A zero-width Field marks an absent optional member.
type Field struct {
	Offset int
	Width  int
}

// Present reports whether the field exists in the layout.
func (f Field) Present() bool {
	return f.Width != 0
}

// Max returns the largest value the field can encode.
func (f Field) Max() uint64 {
	return prim.MaxUint(f.Width)
}

// get reads the field relative to base inside r.
func (f Field) get(r Range, base int, engine endian.EndianEngine) uint64 {
	return prim.GetUint(r.bytes(base-r.off+f.Offset, f.Width), f.Width, engine)
}

// put writes the field relative to base inside r.
func (f Field) put(r Range, base int, engine endian.EndianEngine, v uint64) {
	r.CheckWritable()
	prim.PutUint(r.bytes(base-r.off+f.Offset, f.Width), f.Width, engine, v)
}

// HeaderLayout describes a message header composite: its total encoded size
// and the location of each field. BlockLength, TemplateID, SchemaID and
// Version are mandatory; NumGroups and NumVarDataFields are optional
// extensions some schemas carry.
type HeaderLayout struct {
	Size             int
	BlockLength      Field
	TemplateID       Field
	SchemaID         Field
	Version          Field
	NumGroups        Field
	NumVarDataFields Field
}

// StandardHeader returns the common 8-byte message header layout: four
// consecutive 16-bit fields.
func StandardHeader() HeaderLayout {
	return HeaderLayout{
		Size:        8,
		BlockLength: Field{Offset: 0, Width: 2},
		TemplateID:  Field{Offset: 2, Width: 2},
		SchemaID:    Field{Offset: 4, Width: 2},
		Version:     Field{Offset: 6, Width: 2},
	}
}

// Dimension describes a repeating group's dimension composite: its total
// encoded size and the location of the per-entry block length and entry
// count fields. NumGroups and NumVarDataFields are optional extensions.
type Dimension struct {
	Size             int
	BlockLength      Field
	NumInGroup       Field
	NumGroups        Field
	NumVarDataFields Field
}

// StandardDimension returns the common 4-byte group dimension layout: a
// 16-bit block length followed by a 16-bit entry count.
func StandardDimension() Dimension {
	return Dimension{
		Size:        4,
		BlockLength: Field{Offset: 0, Width: 2},
		NumInGroup:  Field{Offset: 2, Width: 2},
	}
}

// checkCount validates that a requested entry count fits the NumInGroup
// field's encoding.
func (d Dimension) checkCount(count int) {
	if count < 0 || uint64(count) > d.NumInGroup.Max() {
		fault.Reportf("entry count %d exceeds dimension limit %d",
			count, d.NumInGroup.Max())
	}
}
