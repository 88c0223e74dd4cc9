package view

import (
	"iter"

	"github.com/arloliu/sbekit/endian"
	"github.com/arloliu/sbekit/fault"
	"github.com/arloliu/sbekit/prim"
)

// StaticArray is a view over a fixed-length array field: a contiguous run of
// scalar elements whose count is a schema constant. The count is not stored
// in the buffer; every element access bounds-checks against the buffer end,
// not against the count.
type StaticArray[T prim.Scalar] struct {
	Range
	count  int
	engine endian.EndianEngine
}

// NewStaticArray wraps a range as a fixed-length array of count elements.
func NewStaticArray[T prim.Scalar](r Range, count int, engine endian.EndianEngine) StaticArray[T] {
	return StaticArray[T]{Range: r, count: count, engine: engine}
}

// Len returns the schema-fixed element count.
func (a StaticArray[T]) Len() int {
	return a.count
}

// Empty reports whether the array has zero elements.
func (a StaticArray[T]) Empty() bool {
	return a.count == 0
}

// SizeBytes returns the array's encoded size.
func (a StaticArray[T]) SizeBytes() int {
	return a.count * prim.SizeOf[T]()
}

// At returns the element at index i. An out-of-range index is a contract
// violation.
func (a StaticArray[T]) At(i int) T {
	a.checkIndex(i)
	return prim.Get[T](a.bytes(i*prim.SizeOf[T](), prim.SizeOf[T]()), a.engine)
}

// SetAt stores v at index i.
func (a StaticArray[T]) SetAt(i int, v T) {
	a.CheckWritable()
	a.checkIndex(i)
	prim.Put(a.bytes(i*prim.SizeOf[T](), prim.SizeOf[T]()), a.engine, v)
}

// Front returns the first element. Calling it on an empty array is a
// contract violation.
func (a StaticArray[T]) Front() T {
	a.checkNonEmpty()
	return a.At(0)
}

// Back returns the last element. Calling it on an empty array is a contract
// violation.
func (a StaticArray[T]) Back() T {
	a.checkNonEmpty()
	return a.At(a.count - 1)
}

// Bytes returns the array's payload as a checked byte slice over the shared
// buffer.
func (a StaticArray[T]) Bytes() []byte {
	return a.bytes(0, a.SizeBytes())
}

// Raw reinterprets the array as a byte-typed array over the same span,
// allowing raw mutation of element encodings.
func (a StaticArray[T]) Raw() StaticArray[byte] {
	return NewStaticArray[byte](a.Range, a.SizeBytes(), a.engine)
}

// All returns an index ordered iterator over the elements.
func (a StaticArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range a.count {
			if !yield(i, a.At(i)) {
				return
			}
		}
	}
}

// Backward returns a reverse index ordered iterator over the elements.
func (a StaticArray[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.count - 1; i >= 0; i-- {
			if !yield(i, a.At(i)) {
				return
			}
		}
	}
}

func (a StaticArray[T]) checkIndex(i int) {
	if i < 0 || i >= a.count {
		fault.Reportf("array index %d out of range [0, %d)", i, a.count)
	}
}

func (a StaticArray[T]) checkNonEmpty() {
	if a.count == 0 {
		fault.Reportf("element access on an empty array")
	}
}
