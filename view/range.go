package view

import "github.com/arloliu/sbekit/fault"

// Range is a non-owning window over a caller-held byte buffer. It is the base
// of every view type: a start address (offset into the buffer) plus the
// buffer's end. Ranges are cheap to copy and never outlive or own the buffer.
//
// The zero Range holds no buffer and is unusable; any checked access through
// it is a contract violation. Construction performs no bounds checking; all
// checks happen at the point of field access.
//
// A writable Range converts to a read-only one with Const. There is no
// conversion in the other direction.
type Range struct {
	buf []byte
	off int
	ro  bool
}

// NewRange returns a writable range covering buf from its start.
func NewRange(buf []byte) Range {
	return Range{buf: buf}
}

// NewConstRange returns a read-only range covering buf from its start.
func NewConstRange(buf []byte) Range {
	return Range{buf: buf, ro: true}
}

// Valid reports whether the range holds a buffer.
func (r Range) Valid() bool {
	return r.buf != nil
}

// Addr returns the range's start address: the offset of the first byte the
// range refers to within the underlying buffer.
func (r Range) Addr() int {
	return r.off
}

// EndAddr returns the address one past the last accessible byte.
func (r Range) EndAddr() int {
	return len(r.buf)
}

// Buffer returns the underlying buffer shared by all views derived from this
// range. Callers must not write through it when the range is read-only.
func (r Range) Buffer() []byte {
	return r.buf
}

// Writable reports whether views over this range may encode.
func (r Range) Writable() bool {
	return !r.ro
}

// Const returns a read-only copy of the range. The reverse conversion does
// not exist.
func (r Range) Const() Range {
	r.ro = true
	return r
}

// At returns a copy of the range starting at the given absolute address.
// Mutability carries over.
func (r Range) At(addr int) Range {
	r.off = addr
	return r
}

// CheckSpan validates that size bytes at the given offset from the range
// start lie inside the buffer. Violations are fatal; see the fault package.
func (r Range) CheckSpan(offset, size int) {
	if r.buf == nil {
		fault.Reportf("access through a null range")
	}
	if offset < 0 || size < 0 || r.off+offset+size > len(r.buf) {
		fault.Reportf("span [%d, %d) escapes buffer of %d bytes",
			r.off+offset, r.off+offset+size, len(r.buf))
	}
}

// CheckWritable validates that the range permits encoding.
func (r Range) CheckWritable() {
	if r.ro {
		fault.Reportf("write through a read-only range")
	}
}

// bytes returns the checked span starting at offset from the range start.
func (r Range) bytes(offset, size int) []byte {
	r.CheckSpan(offset, size)
	return r.buf[r.off+offset : r.off+offset+size]
}
