// Package pool provides pooled byte buffers for assembling capture records
// without per-record allocations.
package pool

import "sync"

const (
	// RecordBufferDefaultSize is the initial capacity of pooled buffers,
	// sized for typical single-message records.
	RecordBufferDefaultSize = 16 * 1024

	// RecordBufferMaxThreshold caps the capacity of buffers returned to the
	// pool; anything larger is dropped to keep the pool lean.
	RecordBufferMaxThreshold = 128 * 1024
)

// ByteBuffer is a reusable append buffer.
type ByteBuffer struct {
	B []byte
}

// Bytes returns the buffer's current content.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer, keeping its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the buffer's current length.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Write appends data, growing the buffer as needed.
func (bb *ByteBuffer) Write(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteByte appends a single byte.
func (bb *ByteBuffer) WriteByte(b byte) {
	bb.B = append(bb.B, b)
}

var recordBufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, RecordBufferDefaultSize)}
	},
}

// GetRecordBuffer returns an empty pooled buffer.
func GetRecordBuffer() *ByteBuffer {
	bb := recordBufferPool.Get().(*ByteBuffer)
	bb.Reset()
	return bb
}

// PutRecordBuffer returns a buffer to the pool, dropping oversized ones.
func PutRecordBuffer(bb *ByteBuffer) {
	if cap(bb.B) > RecordBufferMaxThreshold {
		return
	}
	recordBufferPool.Put(bb)
}
