package view

// Composite is a view over a composite encoding: a fixed sequence of members
// at static offsets. Generated composite types embed it and add typed member
// accessors; the runtime layer only tracks the range and the composite's
// encoded size.
type Composite struct {
	Range
	size int
}

// NewComposite wraps a range as a composite with a known encoded size.
// The size of a composite is a schema constant; it is not read from the
// buffer and constructing the view touches no bytes.
func NewComposite(r Range, size int) Composite {
	return Composite{Range: r, size: size}
}

// SizeBytes returns the composite's encoded size.
func (c Composite) SizeBytes() int {
	return c.size
}
