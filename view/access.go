package view

import (
	"github.com/arloliu/sbekit/endian"
	"github.com/arloliu/sbekit/prim"
)

// Stateless accessors address members by absolute offset from a view's fixed
// block, with no cursor involved. Generated code uses them for random access
// to fixed members and to chain from one group or data member to the next.

// GetValue reads a fixed-block scalar at abs within v's block.
func GetValue[T prim.Scalar](v LevelView, abs int, engine endian.EndianEngine) T {
	r := rangeOf(v).At(v.Level() + abs)
	return prim.Get[T](r.bytes(0, prim.SizeOf[T]()), engine)
}

// SetValue writes a fixed-block scalar at abs within v's block.
func SetValue[T prim.Scalar](v LevelView, abs int, engine endian.EndianEngine, val T) {
	r := rangeOf(v).At(v.Level() + abs)
	r.CheckWritable()
	prim.Put(r.bytes(0, prim.SizeOf[T]()), engine, val)
}

// StaticViewAt builds a fixed-size member view at abs within v's block.
func StaticViewAt[V any](v LevelView, abs int, wrap func(Range) V) V {
	r := rangeOf(v)
	r.CheckSpan(v.Level()+abs-v.Addr(), 0)
	return wrap(r.At(v.Level() + abs))
}

// FirstTail returns the range where v's first group or data member starts:
// the end of the fixed block as the header or dimension records it.
func FirstTail(v LevelView) Range {
	return rangeOf(v).At(v.Level() + v.BlockLength())
}

// TailAfter returns the range where the member following prev starts. prev's
// size is computed from its content, which is what makes chained stateless
// access O(total preceding bytes).
func TailAfter[P Sized](v LevelView, prev P) Range {
	return rangeOf(v).At(prev.Addr() + prev.SizeBytes())
}

// rangeOf rebuilds v's base range, carrying its mutability.
func rangeOf(v LevelView) Range {
	return Range{buf: v.Buffer(), off: v.Addr(), ro: !v.Writable()}
}
