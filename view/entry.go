package view

// Entry is the base of every generated repeating group entry view. Unlike a
// message, an entry has no header of its own: the block length that governs
// it lives in the enclosing group's dimension, so the value is captured at
// construction.
type Entry struct {
	Range
	blockLength int
}

// NewEntry wraps a range as a group entry governed by the given block
// length.
func NewEntry(r Range, blockLength int) Entry {
	return Entry{Range: r, blockLength: blockLength}
}

// Level returns the address of the entry's fixed block, which is the entry
// start itself.
func (e Entry) Level() int {
	return e.Addr()
}

// BlockLength returns the block length inherited from the enclosing group.
func (e Entry) BlockLength() int {
	return e.blockLength
}
