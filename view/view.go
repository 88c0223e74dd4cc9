package view

// Sized is implemented by every view whose encoded size can be computed from
// its own content: composites, arrays, groups and messages.
type Sized interface {
	Addr() int
	SizeBytes() int
}

// LevelView is the contract shared by views that carry a fixed-layout block:
// messages, group entries and groups themselves. Level is the address where
// the block starts (past any header) and BlockLength its encoded size.
// Cursor accessors use the pair to locate the byte that follows the block.
type LevelView interface {
	Addr() int
	EndAddr() int
	Buffer() []byte
	Writable() bool
	Level() int
	BlockLength() int
}

// MessageView is the contract of a generated top-level message view.
type MessageView interface {
	LevelView
	Header() Composite
	HeaderSize() int
	VisitChildren(vis Visitor, c *Cursor) bool
}

// EntryView is the contract of a generated repeating group entry view.
type EntryView interface {
	Addr() int
	SizeBytes() int
	VisitChildren(vis Visitor, c *Cursor) bool
}

// GroupView is the contract shared by flat and nested repeating group views.
type GroupView interface {
	Addr() int
	Header() Composite
	HeaderSize() int
	BlockLength() int
	Len() int
	SizeBytes() int
	VisitChildren(vis Visitor, c *Cursor) bool
}

// DataView is the contract of a variable-length data member view.
type DataView interface {
	Addr() int
	SizeBytes() int
}
