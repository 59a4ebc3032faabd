// Package pool provides pooled byte buffers for the binary serializer.
package pool

import "sync"

const (
	// FileBufferDefaultSize covers a typical file of a handful of records.
	FileBufferDefaultSize = 64 * 1024
	// FileBufferMaxThreshold caps what gets returned to the pool; larger
	// buffers are dropped so one huge file does not pin memory.
	FileBufferMaxThreshold = 8 * 1024 * 1024
)

// ByteBuffer is a reusable byte slice wrapper.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset resets the buffer to be empty, retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// ExtendTo sets the buffer length to n, growing capacity as needed. New
// bytes are zeroed. Used to carve out a fixed-size region for indexed
// writes.
func (bb *ByteBuffer) ExtendTo(n int) {
	if cap(bb.B) < n {
		grown := make([]byte, n, n)
		copy(grown, bb.B)
		bb.B = grown

		return
	}

	old := len(bb.B)
	bb.B = bb.B[:n]
	for i := old; i < n; i++ {
		bb.B[i] = 0
	}
}

var fileBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(FileBufferDefaultSize)
	},
}

// GetFileBuffer obtains a reset ByteBuffer from the pool.
func GetFileBuffer() *ByteBuffer {
	bb, _ := fileBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutFileBuffer returns a ByteBuffer to the pool unless it grew past the
// retention threshold.
func PutFileBuffer(bb *ByteBuffer) {
	if cap(bb.B) > FileBufferMaxThreshold {
		return
	}

	fileBufferPool.Put(bb)
}
