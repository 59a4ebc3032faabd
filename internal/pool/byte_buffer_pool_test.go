package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("hello"))
	bb.MustWrite([]byte(" world"))

	require.Equal(t, []byte("hello world"), bb.Bytes())
	require.Equal(t, 11, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("data"))
	bb.Reset()

	require.Equal(t, 0, bb.Len())
}

func TestByteBuffer_ExtendTo(t *testing.T) {
	bb := NewByteBuffer(2)
	bb.MustWrite([]byte{0xFF})
	bb.ExtendTo(8)

	require.Equal(t, 8, bb.Len())
	require.Equal(t, []byte{0xFF, 0, 0, 0, 0, 0, 0, 0}, bb.Bytes())
}

func TestByteBuffer_ExtendToZeroesReusedMemory(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	bb.Reset()
	bb.ExtendTo(8)

	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, bb.Bytes())
}

func TestFileBufferPool(t *testing.T) {
	bb := GetFileBuffer()
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("payload"))
	PutFileBuffer(bb)

	again := GetFileBuffer()
	require.Equal(t, 0, again.Len())
}
