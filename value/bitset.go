package value

import "github.com/arloliu/sbekit/prim"

// Bitset wraps an unsigned integer whose bits are independent boolean
// choices. Bit indexes are not validated against the declared width; callers
// must respect the schema's choice set.
type Bitset[T prim.Unsigned] struct {
	bits T
}

// NewBitset wraps the raw underlying integer.
func NewBitset[T prim.Unsigned](bits T) Bitset[T] {
	return Bitset[T]{bits: bits}
}

// Bits returns the raw underlying integer.
func (b Bitset[T]) Bits() T {
	return b.bits
}

// Ref returns a pointer to the raw underlying integer.
func (b *Bitset[T]) Ref() *T {
	return &b.bits
}

// Test reports whether choice n is set.
func (b Bitset[T]) Test(n uint8) bool {
	return b.bits&(1<<n) != 0
}

// Set sets or clears choice n and returns the updated bitset.
func (b Bitset[T]) Set(n uint8, on bool) Bitset[T] {
	if on {
		b.bits |= 1 << n
	} else {
		b.bits &^= 1 << n
	}

	return b
}

// Equal compares the raw underlying integers.
func (b Bitset[T]) Equal(other Bitset[T]) bool {
	return b.bits == other.bits
}
