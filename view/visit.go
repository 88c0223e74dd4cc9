package view

// Visitor receives one callback per structural element during a traversal.
// A true return from OnGroup, OnEntry, OnField or OnData stops the walk
// early; generated VisitChildren implementations propagate it outward.
//
// Field values arrive as any because fields are heterogeneous: required and
// optional wrappers, bitsets, arrays and composites all pass through OnField.
type Visitor interface {
	OnMessage(m MessageView, c *Cursor)
	OnGroup(g GroupView, c *Cursor) bool
	OnEntry(e EntryView, c *Cursor) bool
	OnField(name string, value any) bool
	OnData(d DataView) bool
}

// Visit walks m with vis, starting a fresh cursor at m's fixed block. The
// visitor decides whether to descend by calling VisitChildren from
// OnMessage.
func Visit(m MessageView, vis Visitor) {
	VisitWith(m, InitCursor(m), vis)
}

// VisitWith is Visit with a caller-provided cursor, which must be positioned
// at m's fixed block.
func VisitWith(m MessageView, c *Cursor, vis Visitor) {
	vis.OnMessage(m, c)
}

// VisitChildren walks m's members with vis using a fresh cursor.
func VisitChildren(m MessageView, vis Visitor) bool {
	return m.VisitChildren(vis, InitCursor(m))
}

// NopVisitor implements Visitor with callbacks that do nothing and never
// stop the walk. Embed it to implement only the callbacks a visitor cares
// about.
type NopVisitor struct{}

func (NopVisitor) OnMessage(MessageView, *Cursor)  {}
func (NopVisitor) OnGroup(GroupView, *Cursor) bool { return false }
func (NopVisitor) OnEntry(EntryView, *Cursor) bool { return false }
func (NopVisitor) OnField(string, any) bool        { return false }
func (NopVisitor) OnData(DataView) bool            { return false }
