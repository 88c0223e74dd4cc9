package view

// Hand-written views mimicking what generated accessor code looks like,
// shared by the tests in this package.
//
// quoteMsg: 8-byte standard header, 14-byte fixed block (id uint32, qty
// uint16, px float64), a flat "legs" group (4-byte standard dimension,
// 8-byte entries: legID uint32, ratio uint32) and a "note" data member with
// a 1-byte length prefix.
//
// bookMsg: same header, 2-byte fixed block (depth uint16), a nested
// "orders" group whose entries carry a 4-byte fixed block (ref uint32)
// followed by a "tag" data member with a 1-byte length prefix.

import "github.com/arloliu/sbekit/endian"

var le = endian.GetLittleEndianEngine()

const (
	quoteBlockLength = 14
	quoteTemplateID  = 7
	quoteSchemaID    = 3
	quoteVersion     = 1

	legBlockLength = 8

	bookBlockLength = 2
	bookTemplateID  = 8
)

type quoteLeg struct{ Entry }

func wrapLeg(e Entry) quoteLeg { return quoteLeg{e} }

func (e quoteLeg) LegID(c *Cursor, m Mode) uint32 {
	return CursorGetValue[uint32](e, c, m, 0, 0, le)
}

func (e quoteLeg) SetLegID(c *Cursor, m Mode, v uint32) {
	CursorSetValue(e, c, m, 0, 0, le, v)
}

func (e quoteLeg) Ratio(c *Cursor, m Mode) uint32 {
	return CursorGetLastValue[uint32](e, c, m, 0, 4, le)
}

func (e quoteLeg) SetRatio(c *Cursor, m Mode, v uint32) {
	CursorSetLastValue(e, c, m, 0, 4, le, v)
}

func (e quoteLeg) SizeBytes() int { return e.BlockLength() }

func (e quoteLeg) VisitChildren(vis Visitor, c *Cursor) bool {
	if vis.OnField("legId", e.LegID(c, ModeDefault)) {
		return true
	}
	if vis.OnField("ratio", e.Ratio(c, ModeDefault)) {
		return true
	}
	return false
}

type quoteMsg struct{ Message }

func makeQuote(buf []byte) quoteMsg {
	return quoteMsg{NewMessage(NewRange(buf), StandardHeader(), le)}
}

func makeConstQuote(buf []byte) quoteMsg {
	return quoteMsg{NewMessage(NewConstRange(buf), StandardHeader(), le)}
}

func (m quoteMsg) ID(c *Cursor, mo Mode) uint32 {
	return CursorGetValue[uint32](m, c, mo, 0, 0, le)
}

func (m quoteMsg) SetID(c *Cursor, mo Mode, v uint32) {
	CursorSetValue(m, c, mo, 0, 0, le, v)
}

func (m quoteMsg) Qty(c *Cursor, mo Mode) uint16 {
	return CursorGetValue[uint16](m, c, mo, 0, 4, le)
}

func (m quoteMsg) SetQty(c *Cursor, mo Mode, v uint16) {
	CursorSetValue(m, c, mo, 0, 4, le, v)
}

func (m quoteMsg) Px(c *Cursor, mo Mode) float64 {
	return CursorGetLastValue[float64](m, c, mo, 0, 6, le)
}

func (m quoteMsg) SetPx(c *Cursor, mo Mode, v float64) {
	CursorSetLastValue(m, c, mo, 0, 6, le, v)
}

// IDDirect is the stateless counterpart of ID.
func (m quoteMsg) IDDirect() uint32 {
	return GetValue[uint32](m, 0, le)
}

func (m quoteMsg) SetIDDirect(v uint32) {
	SetValue(m, 0, le, v)
}

func wrapLegs(r Range) FlatGroup[quoteLeg] {
	return NewFlatGroup(r, StandardDimension(), le, wrapLeg)
}

func (m quoteMsg) Legs(c *Cursor, mo Mode) FlatGroup[quoteLeg] {
	return CursorFirstGroup(m, c, mo, wrapLegs)
}

func (m quoteMsg) LegsDirect() FlatGroup[quoteLeg] {
	return wrapLegs(FirstTail(m))
}

func wrapNote(r Range) DynamicArray[byte] {
	return NewDynamicArray[byte](r, 1, le)
}

func (m quoteMsg) Note(c *Cursor, mo Mode) DynamicArray[byte] {
	return CursorData(m, c, mo, wrapNote, m.NoteDirect)
}

func (m quoteMsg) NoteDirect() DynamicArray[byte] {
	return wrapNote(TailAfter(m, m.LegsDirect()))
}

func (m quoteMsg) VisitChildren(vis Visitor, c *Cursor) bool {
	if vis.OnField("id", m.ID(c, ModeDefault)) {
		return true
	}
	if vis.OnField("qty", m.Qty(c, ModeDefault)) {
		return true
	}
	if vis.OnField("px", m.Px(c, ModeDefault)) {
		return true
	}
	legs := m.Legs(c, ModeDefault)
	if vis.OnGroup(legs, c) {
		return true
	}
	note := m.Note(c, ModeDefault)
	return vis.OnData(note)
}

// encodeQuote fills buf with a quote carrying the given legs and note and
// returns its encoded size.
func encodeQuote(buf []byte, id uint32, qty uint16, px float64, legs [][2]uint32, note []byte) int {
	m := makeQuote(buf)
	m.FillHeader(HeaderValues{
		BlockLength: quoteBlockLength,
		TemplateID:  quoteTemplateID,
		SchemaID:    quoteSchemaID,
		Version:     quoteVersion,
	})
	c := InitCursor(m)
	m.SetID(c, ModeDefault, id)
	m.SetQty(c, ModeDefault, qty)
	m.SetPx(c, ModeDefault, px)
	g := m.Legs(c, ModeDefault)
	g.FillHeader(legBlockLength, uint64(len(legs)))
	i := 0
	for _, e := range g.CursorEntries(c) {
		e.SetLegID(c, ModeDefault, legs[i][0])
		e.SetRatio(c, ModeDefault, legs[i][1])
		i++
	}
	// the prefix is not written yet, so view the member without advancing
	d := m.Note(c, ModeDontMove)
	d.AssignSlice(note)
	c.SetPos(d.Addr() + d.SizeBytes())
	return m.SizeBytesFast(c)
}

type orderEntry struct{ Entry }

func wrapOrder(e Entry) orderEntry { return orderEntry{e} }

func (e orderEntry) Ref(c *Cursor, m Mode) uint32 {
	return CursorGetLastValue[uint32](e, c, m, 0, 0, le)
}

func (e orderEntry) SetRef(c *Cursor, m Mode, v uint32) {
	CursorSetLastValue(e, c, m, 0, 0, le, v)
}

func (e orderEntry) Tag(c *Cursor, m Mode) DynamicArray[byte] {
	return CursorFirstData(e, c, m, wrapNote)
}

func (e orderEntry) TagDirect() DynamicArray[byte] {
	return wrapNote(FirstTail(e))
}

func (e orderEntry) SizeBytes() int {
	return e.BlockLength() + e.TagDirect().SizeBytes()
}

func (e orderEntry) VisitChildren(vis Visitor, c *Cursor) bool {
	if vis.OnField("ref", e.Ref(c, ModeDefault)) {
		return true
	}
	return vis.OnData(e.Tag(c, ModeDefault))
}

type bookMsg struct{ Message }

func makeBook(buf []byte) bookMsg {
	return bookMsg{NewMessage(NewRange(buf), StandardHeader(), le)}
}

func (m bookMsg) Depth(c *Cursor, mo Mode) uint16 {
	return CursorGetLastValue[uint16](m, c, mo, 0, 0, le)
}

func (m bookMsg) SetDepth(c *Cursor, mo Mode, v uint16) {
	CursorSetLastValue(m, c, mo, 0, 0, le, v)
}

func wrapOrders(r Range) NestedGroup[orderEntry] {
	return NewNestedGroup(r, StandardDimension(), le, wrapOrder)
}

func (m bookMsg) Orders(c *Cursor, mo Mode) NestedGroup[orderEntry] {
	return CursorFirstGroup(m, c, mo, wrapOrders)
}

func (m bookMsg) OrdersDirect() NestedGroup[orderEntry] {
	return wrapOrders(FirstTail(m))
}

func (m bookMsg) VisitChildren(vis Visitor, c *Cursor) bool {
	if vis.OnField("depth", m.Depth(c, ModeDefault)) {
		return true
	}
	orders := m.Orders(c, ModeDefault)
	return vis.OnGroup(orders, c)
}

type bookOrder struct {
	ref uint32
	tag []byte
}

// encodeBook fills buf with a book message and returns its encoded size.
func encodeBook(buf []byte, depth uint16, orders []bookOrder) int {
	m := makeBook(buf)
	m.FillHeader(HeaderValues{
		BlockLength: bookBlockLength,
		TemplateID:  bookTemplateID,
		SchemaID:    quoteSchemaID,
		Version:     quoteVersion,
	})
	c := InitCursor(m)
	m.SetDepth(c, ModeDefault, depth)
	g := m.Orders(c, ModeDefault)
	g.FillHeader(4, uint64(len(orders)))
	i := 0
	for _, e := range g.CursorEntries(c) {
		e.SetRef(c, ModeDefault, orders[i].ref)
		d := e.Tag(c, ModeDontMove)
		d.AssignSlice(orders[i].tag)
		c.SetPos(d.Addr() + d.SizeBytes())
		i++
	}
	return m.SizeBytesFast(c)
}
