// Package value provides the scalar wrapper types produced by schema-generated
// field accessors: required values with opt-in range checking, optional values
// with sentinel-based nullability, and bitsets.
//
// Wrappers are small copyable values, independent of any buffer. Range limits
// and null sentinels come from the schema, so generated code supplies them
// through Limits descriptors and optional constructors rather than the
// wrappers guessing defaults.
package value

import "github.com/arloliu/sbekit/prim"

// Limits describes the valid range and null sentinel a schema declares for a
// type. Null is meaningful only for optional fields.
type Limits[T prim.Scalar] struct {
	Min  T
	Max  T
	Null T
}

// Required wraps a scalar the schema declares as always present.
//
// InRange is opt-in: construction never validates, matching the wire contract
// that a decoded value is returned as stored.
type Required[T prim.Scalar] struct {
	val T
}

// NewRequired wraps v.
func NewRequired[T prim.Scalar](v T) Required[T] {
	return Required[T]{val: v}
}

// Value returns the wrapped scalar.
func (r Required[T]) Value() T {
	return r.val
}

// Ref returns a pointer to the wrapped scalar for in-place mutation.
func (r *Required[T]) Ref() *T {
	return &r.val
}

// InRange reports whether the value lies in [lim.Min, lim.Max].
func (r Required[T]) InRange(lim Limits[T]) bool {
	return lim.Min <= r.val && r.val <= lim.Max
}

// Equal reports whether both wrapped values are equal.
func (r Required[T]) Equal(other Required[T]) bool {
	return r.val == other.val
}

// Less reports whether r's value orders before other's.
func (r Required[T]) Less(other Required[T]) bool {
	return r.val < other.val
}

// Compare returns -1, 0 or 1 ordering r against other by wrapped value.
func (r Required[T]) Compare(other Required[T]) int {
	switch {
	case r.val < other.val:
		return -1
	case r.val > other.val:
		return 1
	default:
		return 0
	}
}
