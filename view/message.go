package view

import (
	"github.com/arloliu/sbekit/endian"
	"github.com/arloliu/sbekit/fault"
)

// HeaderValues carries the values FillHeader writes into a message header.
// NumGroups and NumVarDataFields are ignored when the layout lacks those
// fields.
type HeaderValues struct {
	BlockLength      uint64
	TemplateID       uint64
	SchemaID         uint64
	Version          uint64
	NumGroups        uint64
	NumVarDataFields uint64
}

// Message is the base of every generated top-level message view: a range
// whose first bytes are the message header, followed by the fixed block and
// then groups and data members. Generated message types embed it and add
// field accessors and VisitChildren.
type Message struct {
	Range
	layout HeaderLayout
	engine endian.EndianEngine
}

// NewMessage wraps a range as a message with the given header layout.
// Construction touches no bytes; every accessor re-validates against the
// buffer end on each call, so a view over a buffer that later proves too
// short fails at the offending access, not here.
func NewMessage(r Range, layout HeaderLayout, engine endian.EndianEngine) Message {
	return Message{Range: r, layout: layout, engine: engine}
}

// HeaderSize returns the header's encoded size. It is a layout constant and
// reads no buffer bytes.
func (m Message) HeaderSize() int {
	return m.layout.Size
}

// Header returns a view over the message header, validating that the buffer
// can hold it.
func (m Message) Header() Composite {
	m.CheckSpan(0, m.layout.Size)
	return NewComposite(m.Range, m.layout.Size)
}

// Level returns the address of the message's fixed block, just past the
// header.
func (m Message) Level() int {
	return m.Addr() + m.layout.Size
}

// BlockLength returns the fixed block size recorded in the header.
func (m Message) BlockLength() int {
	m.CheckSpan(0, m.layout.Size)
	return int(m.layout.BlockLength.get(m.Range, m.Addr(), m.engine))
}

// TemplateID returns the template identifier recorded in the header.
func (m Message) TemplateID() uint64 {
	m.CheckSpan(0, m.layout.Size)
	return m.layout.TemplateID.get(m.Range, m.Addr(), m.engine)
}

// SchemaID returns the schema identifier recorded in the header.
func (m Message) SchemaID() uint64 {
	m.CheckSpan(0, m.layout.Size)
	return m.layout.SchemaID.get(m.Range, m.Addr(), m.engine)
}

// Version returns the schema version recorded in the header.
func (m Message) Version() uint64 {
	m.CheckSpan(0, m.layout.Size)
	return m.layout.Version.get(m.Range, m.Addr(), m.engine)
}

// FillHeader writes all header fields in one step and returns a header view.
// Values that exceed a field's encoding are a contract violation.
func (m Message) FillHeader(h HeaderValues) Composite {
	m.CheckWritable()
	m.CheckSpan(0, m.layout.Size)
	base := m.Addr()
	putChecked(m.Range, m.layout.BlockLength, base, m.engine, h.BlockLength)
	putChecked(m.Range, m.layout.TemplateID, base, m.engine, h.TemplateID)
	putChecked(m.Range, m.layout.SchemaID, base, m.engine, h.SchemaID)
	putChecked(m.Range, m.layout.Version, base, m.engine, h.Version)
	if m.layout.NumGroups.Present() {
		putChecked(m.Range, m.layout.NumGroups, base, m.engine, h.NumGroups)
	}
	if m.layout.NumVarDataFields.Present() {
		putChecked(m.Range, m.layout.NumVarDataFields, base, m.engine, h.NumVarDataFields)
	}
	return NewComposite(m.Range, m.layout.Size)
}

// SizeBytesFast returns the message's encoded size given a cursor positioned
// one past its last decoded member, typically after a full encode or decode
// pass. It reads no buffer bytes.
func (m Message) SizeBytesFast(c *Cursor) int {
	return c.Pos() - m.Addr()
}

// Engine returns the byte order engine the message decodes with.
func (m Message) Engine() endian.EndianEngine {
	return m.engine
}

func putChecked(r Range, f Field, base int, engine endian.EndianEngine, v uint64) {
	if v > f.Max() {
		fault.Reportf("header value %d exceeds %d-byte field", v, f.Width)
	}
	f.put(r, base, engine, v)
}
