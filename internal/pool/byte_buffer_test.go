package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferBasics(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("hello"))
	require.Equal(t, 5, bb.Len())
	require.Equal(t, []byte("hello"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), 16)
}

func TestByteBufferGrow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{1, 2, 3, 4})

	bb.Grow(1024)
	require.GreaterOrEqual(t, cap(bb.B)-len(bb.B), 1024)
	require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
}

func TestByteBufferWriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(8, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("abc"))
	p.Put(bb)

	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len(), "pooled buffer must come back reset")

	// Oversized buffers are dropped, not retained.
	big := NewByteBuffer(128)
	big.MustWrite(make([]byte, 128))
	p.Put(big)

	p.Put(nil) // must not panic
}

func TestDefaultPool(t *testing.T) {
	bb := GetBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	PutBuffer(bb)
}
