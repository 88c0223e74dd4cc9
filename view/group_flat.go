package view

import (
	"iter"

	"github.com/arloliu/sbekit/endian"
	"github.com/arloliu/sbekit/fault"
)

// FlatGroup is a view over a repeating group whose entries contain only
// fixed-layout fields. Every entry occupies exactly the dimension's block
// length, so entry addresses and the group size are closed-form and random
// access is O(1).
//
// E is the generated entry view type; wrap adapts the runtime Entry base
// into it.
type FlatGroup[E EntryView] struct {
	group
	wrap func(Entry) E
}

// NewFlatGroup wraps a range as a flat repeating group.
func NewFlatGroup[E EntryView](r Range, dim Dimension, engine endian.EndianEngine, wrap func(Entry) E) FlatGroup[E] {
	return FlatGroup[E]{group: group{Range: r, dim: dim, engine: engine}, wrap: wrap}
}

// SizeBytes returns the group's encoded size: the dimension header plus
// count times block length. It reads only the dimension.
func (g FlatGroup[E]) SizeBytes() int {
	return g.dim.Size + g.Len()*g.BlockLength()
}

// At returns the entry at index i. An out-of-range index is a contract
// violation.
func (g FlatGroup[E]) At(i int) E {
	n := g.Len()
	if i < 0 || i >= n {
		fault.Reportf("group entry %d out of range [0, %d)", i, n)
	}
	bl := g.BlockLength()
	return g.wrap(g.entryAt(g.Level()+i*bl, bl))
}

// Front returns the first entry. Calling it on an empty group is a contract
// violation.
func (g FlatGroup[E]) Front() E {
	g.checkNonEmpty()
	return g.At(0)
}

// Back returns the last entry. Calling it on an empty group is a contract
// violation.
func (g FlatGroup[E]) Back() E {
	g.checkNonEmpty()
	return g.At(g.Len() - 1)
}

// All returns an index ordered iterator over the entries. Iteration is
// index-driven, so a zero block length cannot loop forever.
func (g FlatGroup[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		n := g.Len()
		bl := g.BlockLength()
		addr := g.Level()
		for i := range n {
			if !yield(i, g.wrap(g.entryAt(addr, bl))) {
				return
			}
			addr += bl
		}
	}
}

// CursorEntries yields entries constructed at c's position; consuming each
// entry through the cursor is what advances it to the next entry.
func (g FlatGroup[E]) CursorEntries(c *Cursor) iter.Seq2[int, E] {
	return cursorEntries(g.group, g.wrap, c)
}

// VisitChildren drives vis over the group's entries through c, stopping
// early when a callback returns true.
func (g FlatGroup[E]) VisitChildren(vis Visitor, c *Cursor) bool {
	return visitEntries(g.group, g.wrap, vis, c)
}

func (g FlatGroup[E]) checkNonEmpty() {
	if g.Empty() {
		fault.Reportf("entry access on an empty group")
	}
}
