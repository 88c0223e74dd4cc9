package view

import (
	"iter"

	"github.com/arloliu/sbekit/endian"
	"github.com/arloliu/sbekit/fault"
)

// NestedGroup is a view over a repeating group whose entries carry nested
// groups or variable-length data, so entries have individual sizes. Entry
// addresses are only discoverable by walking: iteration asks each yielded
// entry for its size to find the next one, random access does not exist, and
// SizeBytes is O(total entries) over the nested tree.
type NestedGroup[E EntryView] struct {
	group
	wrap func(Entry) E
}

// NewNestedGroup wraps a range as a nested repeating group.
func NewNestedGroup[E EntryView](r Range, dim Dimension, engine endian.EndianEngine, wrap func(Entry) E) NestedGroup[E] {
	return NestedGroup[E]{group: group{Range: r, dim: dim, engine: engine}, wrap: wrap}
}

// SizeBytes returns the group's encoded size: the dimension header plus the
// sum of each entry's own size, computed recursively.
func (g NestedGroup[E]) SizeBytes() int {
	size := g.dim.Size
	for _, e := range g.All() {
		size += e.SizeBytes()
	}
	return size
}

// Front returns the first entry. Calling it on an empty group is a contract
// violation.
func (g NestedGroup[E]) Front() E {
	if g.Empty() {
		fault.Reportf("entry access on an empty group")
	}
	return g.wrap(g.entryAt(g.Level(), g.BlockLength()))
}

// All returns an index ordered, strictly forward iterator over the entries.
// Each step bounds-checks the yielded entry's span before advancing past it.
func (g NestedGroup[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		n := g.Len()
		bl := g.BlockLength()
		addr := g.Level()
		for i := range n {
			e := g.wrap(g.entryAt(addr, bl))
			if !yield(i, e) {
				return
			}
			size := e.SizeBytes()
			g.CheckSpan(addr-g.Addr(), size)
			addr += size
		}
	}
}

// CursorEntries yields entries constructed at c's position; consuming each
// entry through the cursor is what advances it to the next entry.
func (g NestedGroup[E]) CursorEntries(c *Cursor) iter.Seq2[int, E] {
	return cursorEntries(g.group, g.wrap, c)
}

// VisitChildren drives vis over the group's entries through c, stopping
// early when a callback returns true.
func (g NestedGroup[E]) VisitChildren(vis Visitor, c *Cursor) bool {
	return visitEntries(g.group, g.wrap, vis, c)
}
