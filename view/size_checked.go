package view

// CheckedSize is the result of SizeBytesChecked: whether the message's
// declared structure fits the claimed buffer length, and its exact encoded
// size when it does.
type CheckedSize struct {
	Valid bool
	Size  int
}

// SizeBytesChecked computes m's encoded size while verifying, before every
// step of the walk, that the structure the buffer declares stays inside
// size bytes. It is the validation entry point for untrusted input: a
// truncated or overclaiming message reports invalid instead of tripping an
// access fault.
//
// size is the number of trustworthy bytes from m's start and must not exceed
// m's actual buffer; the walk may read within the buffer past size, but
// never past the buffer itself.
func SizeBytesChecked(m MessageView, size int) CheckedSize {
	if m.Buffer() == nil || size < m.HeaderSize() || m.Addr()+size > m.EndAddr() {
		return CheckedSize{}
	}
	v := &checkedSizeVisitor{budget: size - m.HeaderSize(), valid: true}
	VisitWith(m, InitCursor(m), v)
	if !v.valid {
		return CheckedSize{}
	}
	return CheckedSize{Valid: true, Size: size - v.budget}
}

// checkedSizeVisitor subtracts each structural element's declared size from
// the remaining budget and aborts the walk the moment the budget would go
// negative. blockLength tracks the enclosing group's per-entry block size
// while entries are visited.
type checkedSizeVisitor struct {
	budget      int
	valid       bool
	blockLength int
}

func (v *checkedSizeVisitor) OnMessage(m MessageView, c *Cursor) {
	if !v.take(m.BlockLength()) {
		return
	}
	m.VisitChildren(v, c)
}

func (v *checkedSizeVisitor) OnGroup(g GroupView, c *Cursor) bool {
	if !v.take(g.HeaderSize()) {
		return true
	}
	outer := v.blockLength
	v.blockLength = g.BlockLength()
	g.VisitChildren(v, c)
	v.blockLength = outer
	return !v.valid
}

func (v *checkedSizeVisitor) OnEntry(e EntryView, c *Cursor) bool {
	if !v.take(v.blockLength) {
		return true
	}
	e.VisitChildren(v, c)
	return !v.valid
}

func (v *checkedSizeVisitor) OnData(d DataView) bool {
	return !v.take(d.SizeBytes())
}

func (v *checkedSizeVisitor) OnField(string, any) bool {
	// fixed fields live inside the block length already accounted for
	return false
}

// take consumes n bytes of budget, marking the walk invalid when the budget
// cannot cover them.
func (v *checkedSizeVisitor) take(n int) bool {
	if n < 0 || n > v.budget {
		v.valid = false
		return false
	}
	v.budget -= n
	return true
}
