package view

import (
	"iter"

	"github.com/arloliu/sbekit/endian"
	"github.com/arloliu/sbekit/fault"
	"github.com/arloliu/sbekit/prim"
)

// DynamicArray is a view over a variable-length data member: an unsigned
// length prefix immediately followed by that many scalar elements. The view
// keeps no decoded state; the length prefix is re-read from the buffer on
// every call, so external rewrites of the prefix are always observed.
//
// Mutating operations rewrite the prefix and move elements through the view;
// they never touch bytes past the payload they leave behind, so shrinking
// leaves stale trailing bytes in the buffer.
type DynamicArray[T prim.Scalar] struct {
	Range
	lenWidth int
	engine   endian.EndianEngine
}

// NewDynamicArray wraps a range as a length-prefixed array whose prefix is
// lenWidth bytes wide (1, 2, 4 or 8).
func NewDynamicArray[T prim.Scalar](r Range, lenWidth int, engine endian.EndianEngine) DynamicArray[T] {
	return DynamicArray[T]{Range: r, lenWidth: lenWidth, engine: engine}
}

// RawLen returns the element count exactly as encoded in the length prefix.
func (a DynamicArray[T]) RawLen() uint64 {
	return prim.GetUint(a.bytes(0, a.lenWidth), a.lenWidth, a.engine)
}

// Len returns the element count read from the length prefix.
func (a DynamicArray[T]) Len() int {
	return int(a.RawLen())
}

// MaxLen returns the largest element count the prefix can encode.
func (a DynamicArray[T]) MaxLen() uint64 {
	return prim.MaxUint(a.lenWidth)
}

// Empty reports whether the array currently holds no elements.
func (a DynamicArray[T]) Empty() bool {
	return a.RawLen() == 0
}

// SizeBytes returns the member's total encoded size: prefix plus payload.
func (a DynamicArray[T]) SizeBytes() int {
	return a.lenWidth + a.Len()*prim.SizeOf[T]()
}

// At returns the element at index i. An index at or past the current length
// is a contract violation.
func (a DynamicArray[T]) At(i int) T {
	a.checkIndex(i)
	return prim.Get[T](a.bytes(a.elemOffset(i), prim.SizeOf[T]()), a.engine)
}

// SetAt stores v at index i.
func (a DynamicArray[T]) SetAt(i int, v T) {
	a.CheckWritable()
	a.checkIndex(i)
	prim.Put(a.bytes(a.elemOffset(i), prim.SizeOf[T]()), a.engine, v)
}

// Front returns the first element. Calling it on an empty array is a
// contract violation.
func (a DynamicArray[T]) Front() T {
	a.checkNonEmpty()
	return a.At(0)
}

// Back returns the last element. Calling it on an empty array is a contract
// violation.
func (a DynamicArray[T]) Back() T {
	a.checkNonEmpty()
	return a.At(a.Len() - 1)
}

// Bytes returns the current payload as a checked byte slice over the shared
// buffer. Calling it on an empty array is a contract violation.
func (a DynamicArray[T]) Bytes() []byte {
	a.checkNonEmpty()
	return a.bytes(a.lenWidth, a.Len()*prim.SizeOf[T]())
}

// Raw reinterprets the member as a byte-typed array sharing the same prefix
// and span. It is meant for single-byte element types, where it allows raw
// mutation of the payload.
func (a DynamicArray[T]) Raw() DynamicArray[byte] {
	return NewDynamicArray[byte](a.Range, a.lenWidth, a.engine)
}

// Clear sets the length to zero. Former payload bytes are left untouched.
func (a DynamicArray[T]) Clear() {
	a.ResizeRaw(0)
}

// ResizeRaw rewrites the length prefix to count without initializing any
// element bytes. Growing exposes whatever the buffer already holds.
func (a DynamicArray[T]) ResizeRaw(count int) {
	a.CheckWritable()
	a.checkCount(count)
	a.CheckSpan(0, a.lenWidth+count*prim.SizeOf[T]())
	prim.PutUint(a.bytes(0, a.lenWidth), a.lenWidth, a.engine, uint64(count))
}

// Resize sets the length to count, zero-filling any newly exposed elements.
func (a DynamicArray[T]) Resize(count int) {
	var zero T
	a.ResizeFill(count, zero)
}

// ResizeFill sets the length to count, writing v into any newly exposed
// elements.
func (a DynamicArray[T]) ResizeFill(count int, v T) {
	old := a.Len()
	a.ResizeRaw(count)
	for i := old; i < count; i++ {
		a.SetAt(i, v)
	}
}

// PushBack appends v, growing the length by one.
func (a DynamicArray[T]) PushBack(v T) {
	n := a.Len()
	a.ResizeRaw(n + 1)
	a.SetAt(n, v)
}

// PopBack removes the last element. Calling it on an empty array is a
// contract violation.
func (a DynamicArray[T]) PopBack() {
	a.checkNonEmpty()
	a.ResizeRaw(a.Len() - 1)
}

// Erase removes the element at index i, shifting later elements down.
func (a DynamicArray[T]) Erase(i int) {
	a.EraseRange(i, i+1)
}

// EraseRange removes the elements in [first, last), shifting later elements
// down.
func (a DynamicArray[T]) EraseRange(first, last int) {
	n := a.Len()
	if first < 0 || last < first || last > n {
		fault.Reportf("erase range [%d, %d) out of range [0, %d]", first, last, n)
	}
	width := last - first
	for i := first; i+width < n; i++ {
		a.SetAt(i, a.At(i+width))
	}
	a.ResizeRaw(n - width)
}

// Insert places v at index i, shifting the element there and all later ones
// up.
func (a DynamicArray[T]) Insert(i int, v T) {
	a.shiftUp(i, 1)
	a.SetAt(i, v)
}

// InsertN places count copies of v at index i, shifting later elements up.
func (a DynamicArray[T]) InsertN(i, count int, v T) {
	a.shiftUp(i, count)
	for k := range count {
		a.SetAt(i+k, v)
	}
}

// InsertSlice places the elements of vs at index i, shifting later elements
// up.
func (a DynamicArray[T]) InsertSlice(i int, vs []T) {
	a.shiftUp(i, len(vs))
	for k, v := range vs {
		a.SetAt(i+k, v)
	}
}

// Assign replaces the whole content with count copies of v.
func (a DynamicArray[T]) Assign(count int, v T) {
	a.ResizeRaw(count)
	for i := range count {
		a.SetAt(i, v)
	}
}

// AssignSlice replaces the whole content with the elements of vs.
func (a DynamicArray[T]) AssignSlice(vs []T) {
	a.ResizeRaw(len(vs))
	for i, v := range vs {
		a.SetAt(i, v)
	}
}

// All returns an index ordered iterator over the current elements. The
// length is captured once at the start of iteration.
func (a DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := a.Len()
		for i := range n {
			if !yield(i, a.At(i)) {
				return
			}
		}
	}
}

// shiftUp opens a width element hole at index i, moving [i, n) up by width.
// Elements move highest first so overlapping spans stay intact.
func (a DynamicArray[T]) shiftUp(i, width int) {
	n := a.Len()
	if i < 0 || i > n {
		fault.Reportf("insert index %d out of range [0, %d]", i, n)
	}
	a.ResizeRaw(n + width)
	for k := n - 1; k >= i; k-- {
		a.SetAt(k+width, a.At(k))
	}
}

func (a DynamicArray[T]) elemOffset(i int) int {
	return a.lenWidth + i*prim.SizeOf[T]()
}

func (a DynamicArray[T]) checkIndex(i int) {
	if n := a.Len(); i < 0 || i >= n {
		fault.Reportf("array index %d out of range [0, %d)", i, n)
	}
}

func (a DynamicArray[T]) checkCount(count int) {
	if count < 0 || uint64(count) > a.MaxLen() {
		fault.Reportf("element count %d exceeds %d-byte length prefix", count, a.lenWidth)
	}
}

func (a DynamicArray[T]) checkNonEmpty() {
	if a.Empty() {
		fault.Reportf("element access on an empty array")
	}
}
