package view

import (
	"github.com/arloliu/sbekit/endian"
	"github.com/arloliu/sbekit/fault"
	"github.com/arloliu/sbekit/prim"
)

// Mode selects how a cursor accessor addresses a member and what it does to
// the cursor afterwards. Generated accessors pick the mode; the runtime
// functions in this file implement it once per member shape.
type Mode uint8

const (
	// ModeDefault reads at the cursor plus the member's offset relative to
	// the previous member's end, then advances past the member. It is the
	// steady state of sequential access.
	ModeDefault Mode = iota

	// ModeInit addresses the member absolutely through its view, attaches
	// the cursor to the view's buffer and leaves it past the member. It
	// starts cursor traversal mid-message.
	ModeInit

	// ModeDontMove reads like ModeDefault but leaves the cursor where it
	// was, allowing the same member to be revisited.
	ModeDontMove

	// ModeInitDontMove addresses the member absolutely and positions the
	// cursor so that a subsequent ModeDefault access of this same member
	// finds it: at the member's address minus its relative offset.
	ModeInitDontMove

	// ModeSkip advances the cursor past the member without decoding it.
	ModeSkip
)

// Cursor tracks a byte position inside a message buffer during sequential
// access. The zero Cursor is detached; a ModeInit or ModeInitDontMove access
// (or InitCursor) attaches it to a view's buffer.
type Cursor struct {
	buf []byte
	pos int
	ro  bool
}

// InitCursor returns a cursor attached to v's buffer and positioned at v's
// fixed block, ready for ModeDefault access of the first field.
func InitCursor(v LevelView) *Cursor {
	return &Cursor{buf: v.Buffer(), pos: v.Level(), ro: !v.Writable()}
}

// Pos returns the cursor's current absolute position.
func (c *Cursor) Pos() int {
	return c.pos
}

// SetPos moves the cursor to an absolute position.
func (c *Cursor) SetPos(pos int) {
	c.pos = pos
}

// Attached reports whether the cursor is bound to a buffer.
func (c *Cursor) Attached() bool {
	return c.buf != nil
}

// check validates that size bytes at rel from the cursor lie inside the
// buffer.
func (c *Cursor) check(rel, size int) {
	if c.buf == nil {
		fault.Reportf("access through a detached cursor")
	}
	if c.pos+rel < 0 || c.pos+rel+size > len(c.buf) {
		fault.Reportf("cursor span [%d, %d) escapes buffer of %d bytes",
			c.pos+rel, c.pos+rel+size, len(c.buf))
	}
}

// attach binds the cursor to v's buffer, carrying v's mutability.
func (c *Cursor) attach(v LevelView) {
	c.buf = v.Buffer()
	c.ro = !v.Writable()
}

func (c *Cursor) checkWritable() {
	if c.ro {
		fault.Reportf("write through a read-only cursor")
	}
}

// CursorGetValue reads a fixed-block scalar member through c. rel is the
// member's offset relative to the end of the previous fixed member, abs its
// absolute offset within v's block. ModeSkip returns the zero value.
func CursorGetValue[T prim.Scalar](v LevelView, c *Cursor, m Mode, rel, abs int, engine endian.EndianEngine) T {
	size := prim.SizeOf[T]()
	switch m {
	case ModeInit:
		c.attach(v)
		at := v.Level() + abs
		c.pos = at + size
		c.check(at-c.pos, size)
		return prim.Get[T](c.buf[at:at+size], engine)
	case ModeInitDontMove:
		c.attach(v)
		at := v.Level() + abs
		c.pos = at - rel
		c.check(at-c.pos, size)
		return prim.Get[T](c.buf[at:at+size], engine)
	case ModeDontMove:
		c.check(rel, size)
		return prim.Get[T](c.buf[c.pos+rel:c.pos+rel+size], engine)
	case ModeSkip:
		c.check(rel, size)
		c.pos += rel + size
		var zero T
		return zero
	default:
		c.check(rel, size)
		at := c.pos + rel
		c.pos = at + size
		return prim.Get[T](c.buf[at:at+size], engine)
	}
}

// CursorSetValue writes a fixed-block scalar member through c, with the same
// addressing as CursorGetValue. ModeSkip is a contract violation: skipping
// is a read-side policy.
func CursorSetValue[T prim.Scalar](v LevelView, c *Cursor, m Mode, rel, abs int, engine endian.EndianEngine, val T) {
	size := prim.SizeOf[T]()
	switch m {
	case ModeInit:
		c.attach(v)
		at := v.Level() + abs
		c.pos = at + size
		c.check(at-c.pos, size)
		c.checkWritable()
		prim.Put(c.buf[at:at+size], engine, val)
	case ModeInitDontMove:
		c.attach(v)
		at := v.Level() + abs
		c.pos = at - rel
		c.check(at-c.pos, size)
		c.checkWritable()
		prim.Put(c.buf[at:at+size], engine, val)
	case ModeDontMove:
		c.check(rel, size)
		c.checkWritable()
		prim.Put(c.buf[c.pos+rel:c.pos+rel+size], engine, val)
	case ModeSkip:
		fault.Reportf("skip mode on a write accessor")
	default:
		c.check(rel, size)
		c.checkWritable()
		at := c.pos + rel
		c.pos = at + size
		prim.Put(c.buf[at:at+size], engine, val)
	}
}

// CursorGetLastValue reads the last fixed member of v's block and, in the
// advancing modes, snaps the cursor to the end of the block as recorded in
// the dimension or header. The snap is what makes old-schema decoding skip
// block bytes this schema version does not know about.
func CursorGetLastValue[T prim.Scalar](v LevelView, c *Cursor, m Mode, rel, abs int, engine endian.EndianEngine) T {
	size := prim.SizeOf[T]()
	switch m {
	case ModeInit:
		c.attach(v)
		at := v.Level() + abs
		c.pos = at
		c.check(0, size)
		c.pos = v.Level() + v.BlockLength()
		return prim.Get[T](c.buf[at:at+size], engine)
	case ModeInitDontMove:
		return CursorGetValue[T](v, c, ModeInitDontMove, rel, abs, engine)
	case ModeDontMove:
		return CursorGetValue[T](v, c, ModeDontMove, rel, abs, engine)
	case ModeSkip:
		c.check(rel, size)
		c.pos = v.Level() + v.BlockLength()
		var zero T
		return zero
	default:
		c.check(rel, size)
		at := c.pos + rel
		c.pos = v.Level() + v.BlockLength()
		return prim.Get[T](c.buf[at:at+size], engine)
	}
}

// CursorSetLastValue writes the last fixed member of v's block with the same
// cursor snap as CursorGetLastValue.
func CursorSetLastValue[T prim.Scalar](v LevelView, c *Cursor, m Mode, rel, abs int, engine endian.EndianEngine, val T) {
	size := prim.SizeOf[T]()
	switch m {
	case ModeInit:
		c.attach(v)
		at := v.Level() + abs
		c.pos = at
		c.check(0, size)
		c.checkWritable()
		c.pos = v.Level() + v.BlockLength()
		prim.Put(c.buf[at:at+size], engine, val)
	case ModeInitDontMove, ModeDontMove:
		CursorSetValue(v, c, m, rel, abs, engine, val)
	case ModeSkip:
		fault.Reportf("skip mode on a write accessor")
	default:
		c.check(rel, size)
		c.checkWritable()
		at := c.pos + rel
		c.pos = v.Level() + v.BlockLength()
		prim.Put(c.buf[at:at+size], engine, val)
	}
}

// CursorStaticView accesses a fixed-size member view (a composite or static
// array) through c. wrap builds the member view over a range at the member's
// address; the advancing modes step past the view's own size.
func CursorStaticView[V Sized](v LevelView, c *Cursor, m Mode, rel, abs int, wrap func(Range) V) V {
	switch m {
	case ModeInit:
		c.attach(v)
		at := v.Level() + abs
		res := wrap(cursorRange(v, c, at))
		c.pos = at + res.SizeBytes()
		return res
	case ModeInitDontMove:
		c.attach(v)
		at := v.Level() + abs
		c.pos = at - rel
		return wrap(cursorRange(v, c, at))
	case ModeDontMove:
		c.check(rel, 0)
		return wrap(cursorRange(v, c, c.pos+rel))
	case ModeSkip:
		c.check(rel, 0)
		res := wrap(cursorRange(v, c, c.pos+rel))
		c.pos += rel + res.SizeBytes()
		return res
	default:
		c.check(rel, 0)
		at := c.pos + rel
		res := wrap(cursorRange(v, c, at))
		c.pos = at + res.SizeBytes()
		return res
	}
}

// CursorLastStaticView accesses the last fixed member of v's block as a view
// and, in the advancing modes, snaps the cursor to the end of the block.
func CursorLastStaticView[V Sized](v LevelView, c *Cursor, m Mode, rel, abs int, wrap func(Range) V) V {
	switch m {
	case ModeInit:
		c.attach(v)
		res := wrap(cursorRange(v, c, v.Level()+abs))
		c.pos = v.Level() + v.BlockLength()
		return res
	case ModeInitDontMove, ModeDontMove:
		return CursorStaticView(v, c, m, rel, abs, wrap)
	default:
		c.check(rel, 0)
		res := wrap(cursorRange(v, c, c.pos+rel))
		c.pos = v.Level() + v.BlockLength()
		return res
	}
}

// CursorFirstGroup accesses v's first group member, the one straight after
// the fixed block. Every mode positions the cursor at the end of the block
// first; the advancing modes then step past the group header, and ModeSkip
// steps past the whole group.
func CursorFirstGroup[G GroupView](v LevelView, c *Cursor, m Mode, wrap func(Range) G) G {
	c.attach(v)
	c.pos = v.Level() + v.BlockLength()
	res := wrap(cursorRange(v, c, c.pos))
	switch m {
	case ModeDontMove, ModeInitDontMove:
	case ModeSkip:
		c.pos += res.SizeBytes()
	default:
		c.pos += res.HeaderSize()
	}
	return res
}

// CursorGroup accesses a group member that follows another group or data
// member. In the cursor-addressed modes the group starts exactly at c;
// the init modes fall back to direct, the stateless accessor that walks
// from the previous member.
func CursorGroup[G GroupView](v LevelView, c *Cursor, m Mode, wrap func(Range) G, direct func() G) G {
	switch m {
	case ModeInit:
		c.attach(v)
		res := direct()
		c.pos = res.Addr() + res.HeaderSize()
		return res
	case ModeInitDontMove:
		c.attach(v)
		res := direct()
		c.pos = res.Addr()
		return res
	case ModeDontMove:
		c.check(0, 0)
		return wrap(cursorRange(v, c, c.pos))
	case ModeSkip:
		c.check(0, 0)
		res := wrap(cursorRange(v, c, c.pos))
		c.pos += res.SizeBytes()
		return res
	default:
		c.check(0, 0)
		res := wrap(cursorRange(v, c, c.pos))
		c.pos += res.HeaderSize()
		return res
	}
}

// CursorFirstData accesses v's first variable-length data member when no
// group precedes it. Every mode positions the cursor at the end of the
// fixed block first; the advancing modes then step past the whole member.
func CursorFirstData[D Sized](v LevelView, c *Cursor, m Mode, wrap func(Range) D) D {
	c.attach(v)
	c.pos = v.Level() + v.BlockLength()
	res := wrap(cursorRange(v, c, c.pos))
	switch m {
	case ModeDontMove, ModeInitDontMove:
	default:
		c.pos += res.SizeBytes()
	}
	return res
}

// CursorData accesses a data member that follows another group or data
// member, with the same addressing split as CursorGroup.
func CursorData[D Sized](v LevelView, c *Cursor, m Mode, wrap func(Range) D, direct func() D) D {
	switch m {
	case ModeInit:
		c.attach(v)
		res := direct()
		c.pos = res.Addr() + res.SizeBytes()
		return res
	case ModeInitDontMove:
		c.attach(v)
		res := direct()
		c.pos = res.Addr()
		return res
	case ModeDontMove:
		c.check(0, 0)
		return wrap(cursorRange(v, c, c.pos))
	default:
		c.check(0, 0)
		res := wrap(cursorRange(v, c, c.pos))
		c.pos += res.SizeBytes()
		return res
	}
}

// cursorRange builds a member range at an absolute address over the family's
// shared buffer, carrying the view's mutability.
func cursorRange(v LevelView, c *Cursor, addr int) Range {
	return Range{buf: c.buf, off: addr, ro: c.ro || !v.Writable()}
}
