package stream

import (
	"math"

	"github.com/aurorakit/aurora/endian"
	"github.com/aurorakit/aurora/internal/pool"
)

// Writer appends fixed-width integers, floats, and byte runs to a growable
// pooled buffer. It mirrors Reader's operations and additionally supports
// in-place backfill of reserved 32-bit slots, which the encoder uses for
// placeholder data words and index tables.
//
// Writer is not safe for concurrent use. Release returns the underlying
// buffer to the pool; the Writer must not be used afterwards.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates a Writer with a pooled buffer and the given endian engine.
func NewWriter(engine endian.EndianEngine) *Writer {
	return &Writer{
		buf:    pool.GetBuffer(),
		engine: engine,
	}
}

// PutUint8 appends one unsigned byte.
func (w *Writer) PutUint8(v uint8) {
	w.buf.B = append(w.buf.B, v)
}

// PutUint16 appends an unsigned 16-bit integer.
func (w *Writer) PutUint16(v uint16) {
	w.buf.B = w.engine.AppendUint16(w.buf.B, v)
}

// PutUint32 appends an unsigned 32-bit integer.
func (w *Writer) PutUint32(v uint32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
}

// PutUint64 appends an unsigned 64-bit integer.
func (w *Writer) PutUint64(v uint64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, v)
}

// PutInt8 appends a signed byte.
func (w *Writer) PutInt8(v int8) {
	w.PutUint8(uint8(v))
}

// PutInt16 appends a signed 16-bit integer.
func (w *Writer) PutInt16(v int16) {
	w.PutUint16(uint16(v))
}

// PutInt32 appends a signed 32-bit integer.
func (w *Writer) PutInt32(v int32) {
	w.PutUint32(uint32(v))
}

// PutInt64 appends a signed 64-bit integer.
func (w *Writer) PutInt64(v int64) {
	w.PutUint64(uint64(v))
}

// PutFloat32 appends a 32-bit IEEE 754 float.
func (w *Writer) PutFloat32(v float32) {
	w.PutUint32(math.Float32bits(v))
}

// PutFloat64 appends a 64-bit IEEE 754 float.
func (w *Writer) PutFloat64(v float64) {
	w.PutUint64(math.Float64bits(v))
}

// PutBytes appends raw bytes.
func (w *Writer) PutBytes(data []byte) {
	w.buf.MustWrite(data)
}

// PutString appends the raw bytes of s with no length prefix or padding.
func (w *Writer) PutString(s string) {
	w.buf.MustWrite([]byte(s))
}

// ReserveUint32 appends n zeroed 32-bit slots and returns the byte offset of
// the first one, for later backfill via SetUint32.
func (w *Writer) ReserveUint32(n int) int {
	off := len(w.buf.B)
	w.buf.Grow(4 * n)
	for i := 0; i < n; i++ {
		w.buf.B = w.engine.AppendUint32(w.buf.B, 0)
	}

	return off
}

// SetUint32 overwrites the 32-bit slot at byte offset off. The slot must have
// been written (or reserved) already.
func (w *Writer) SetUint32(off int, v uint32) {
	w.engine.PutUint32(w.buf.B[off:off+4], v)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf.B)
}

// Bytes returns the written bytes. The slice shares the underlying buffer and
// is invalidated by Release.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Release returns the underlying buffer to the pool.
func (w *Writer) Release() {
	if w.buf != nil {
		pool.PutBuffer(w.buf)
		w.buf = nil
	}
}
