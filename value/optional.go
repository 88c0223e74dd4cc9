package value

import "github.com/arloliu/sbekit/prim"

// Optional wraps a scalar plus the schema-reserved null sentinel. A stored
// value equal to the sentinel means "absent"; every other value is present.
//
// Ordering treats null as less than every present value; two nulls are equal.
// HasValue and InRange are opt-in checks, never enforced on construction.
type Optional[T prim.Scalar] struct {
	val  T
	null T
}

// NewOptional wraps v with the given null sentinel.
func NewOptional[T prim.Scalar](v, null T) Optional[T] {
	return Optional[T]{val: v, null: null}
}

// NullOptional returns an absent value carrying the given sentinel.
func NullOptional[T prim.Scalar](null T) Optional[T] {
	return Optional[T]{val: null, null: null}
}

// Value returns the wrapped scalar as stored, sentinel included.
func (o Optional[T]) Value() T {
	return o.val
}

// Ref returns a pointer to the wrapped scalar for in-place mutation.
func (o *Optional[T]) Ref() *T {
	return &o.val
}

// NullValue returns the schema's null sentinel.
func (o Optional[T]) NullValue() T {
	return o.null
}

// HasValue reports whether the stored value differs from the null sentinel.
func (o Optional[T]) HasValue() bool {
	return o.val != o.null
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.val, o.HasValue()
}

// ValueOr returns the value if present, def otherwise.
func (o Optional[T]) ValueOr(def T) T {
	if o.HasValue() {
		return o.val
	}

	return def
}

// InRange reports whether the value lies in [lim.Min, lim.Max].
func (o Optional[T]) InRange(lim Limits[T]) bool {
	return lim.Min <= o.val && o.val <= lim.Max
}

// Equal reports whether both sides are null, or both present and equal.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.HasValue() != other.HasValue() {
		return false
	}

	return !o.HasValue() || o.val == other.val
}

// Less reports whether o orders before other. Null orders before every
// present value.
func (o Optional[T]) Less(other Optional[T]) bool {
	return other.HasValue() && (!o.HasValue() || o.val < other.val)
}

// Compare returns -1, 0 or 1 ordering o against other with null-first
// semantics.
func (o Optional[T]) Compare(other Optional[T]) int {
	switch {
	case o.Less(other):
		return -1
	case other.Less(o):
		return 1
	default:
		return 0
	}
}
