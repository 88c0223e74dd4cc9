package view

import (
	"iter"

	"github.com/arloliu/sbekit/endian"
)

// group carries what flat and nested repeating groups share: the range, the
// dimension layout describing the group header, and the byte order engine.
type group struct {
	Range
	dim    Dimension
	engine endian.EndianEngine
}

// HeaderSize returns the dimension header's encoded size. It is a layout
// constant and reads no buffer bytes.
func (g group) HeaderSize() int {
	return g.dim.Size
}

// Header returns a view over the group's dimension header, validating that
// the buffer can hold it.
func (g group) Header() Composite {
	g.CheckSpan(0, g.dim.Size)
	return NewComposite(g.Range, g.dim.Size)
}

// Level returns the address of the first entry, just past the dimension
// header.
func (g group) Level() int {
	return g.Addr() + g.dim.Size
}

// BlockLength returns the per-entry block length recorded in the dimension.
func (g group) BlockLength() int {
	g.CheckSpan(0, g.dim.Size)
	return int(g.dim.BlockLength.get(g.Range, g.Addr(), g.engine))
}

// Len returns the entry count recorded in the dimension.
func (g group) Len() int {
	g.CheckSpan(0, g.dim.Size)
	return int(g.dim.NumInGroup.get(g.Range, g.Addr(), g.engine))
}

// MaxLen returns the largest entry count the dimension can encode.
func (g group) MaxLen() uint64 {
	return g.dim.NumInGroup.Max()
}

// Empty reports whether the group currently holds no entries.
func (g group) Empty() bool {
	return g.Len() == 0
}

// Resize rewrites the entry count in the dimension header. No entry bytes
// are touched: growing exposes whatever the buffer holds at the new entry
// positions, shrinking leaves former entries' bytes in place.
func (g group) Resize(count int) {
	g.CheckWritable()
	g.dim.checkCount(count)
	g.CheckSpan(0, g.dim.Size)
	g.dim.NumInGroup.put(g.Range, g.Addr(), g.engine, uint64(count))
}

// Clear sets the entry count to zero.
func (g group) Clear() {
	g.Resize(0)
}

// FillHeader writes the block length and entry count (plus the optional
// extension fields when the layout carries them) and returns a header view.
func (g group) FillHeader(blockLength, count uint64) Composite {
	g.CheckWritable()
	g.CheckSpan(0, g.dim.Size)
	base := g.Addr()
	putChecked(g.Range, g.dim.BlockLength, base, g.engine, blockLength)
	putChecked(g.Range, g.dim.NumInGroup, base, g.engine, count)
	return NewComposite(g.Range, g.dim.Size)
}

// entryAt wraps the entry starting at the given absolute address.
func (g group) entryAt(addr, blockLength int) Entry {
	return NewEntry(g.Range.At(addr), blockLength)
}

// cursorEntries yields entries constructed at the cursor's position. The
// caller's traversal of each entry is what advances the cursor to the next
// one, so each entry must be consumed in full before the next iteration.
func cursorEntries[E EntryView](g group, wrap func(Entry) E, c *Cursor) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		n := g.Len()
		bl := g.BlockLength()
		for i := range n {
			if !yield(i, wrap(NewEntry(Range{buf: c.buf, off: c.pos, ro: c.ro}, bl))) {
				return
			}
		}
	}
}

// visitEntries drives a visitor over the group's entries through c.
func visitEntries[E EntryView](g group, wrap func(Entry) E, vis Visitor, c *Cursor) bool {
	for _, e := range cursorEntries(g, wrap, c) {
		if vis.OnEntry(e, c) {
			return true
		}
	}
	return false
}
