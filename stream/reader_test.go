package stream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurorakit/aurora/endian"
	"github.com/aurorakit/aurora/errs"
)

func TestReaderScalars(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	var data []byte
	data = append(data, 0xFF)                             // uint8
	data = engine.AppendUint16(data, 0xBEEF)              // uint16
	data = engine.AppendUint32(data, 0xDEADBEEF)          // uint32
	data = engine.AppendUint64(data, 0x0102030405060708)  // uint64
	neg16 := int16(-2)
	neg32 := int32(-3)
	neg64 := int64(-4)
	data = append(data, 0x80)                          // int8 = -128
	data = engine.AppendUint16(data, uint16(neg16))    // int16
	data = engine.AppendUint32(data, uint32(neg32))    // int32
	data = engine.AppendUint64(data, uint64(neg64))    // int64
	data = engine.AppendUint32(data, 0x40490FDB)          // float32 ~pi
	data = engine.AppendUint64(data, 0x400921FB54442D18)  // float64 pi

	r := NewBytesReader(data, engine)

	u8, err := r.Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xFF), u8)

	u16, err := r.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), u16)

	u32, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)

	u64, err := r.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), u64)

	i8, err := r.Int8()
	require.NoError(t, err)
	require.Equal(t, int8(-128), i8)

	i16, err := r.Int16()
	require.NoError(t, err)
	require.Equal(t, int16(-2), i16)

	i32, err := r.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(-3), i32)

	i64, err := r.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(-4), i64)

	f32, err := r.Float32()
	require.NoError(t, err)
	require.InDelta(t, 3.14159274, f32, 1e-7)

	f64, err := r.Float64()
	require.NoError(t, err)
	require.InDelta(t, 3.141592653589793, f64, 1e-15)
}

func TestReaderBigEndian(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	r := NewBytesReader([]byte{0x12, 0x34, 0x56, 0x78}, engine)

	v, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), v)
}

func TestReaderBytesAndString(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	r := NewBytesReader([]byte("hello world"), engine)

	b, err := r.Bytes(5)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), b)

	require.NoError(t, r.Skip(1))

	s, err := r.String(5)
	require.NoError(t, err)
	require.Equal(t, "world", s)

	empty, err := r.Bytes(0)
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = r.Bytes(-1)
	require.ErrorIs(t, err, errs.ErrTruncatedData)
}

func TestReaderSeekTell(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	r := NewBytesReader([]byte{0, 1, 2, 3, 4, 5, 6, 7}, engine)

	require.NoError(t, r.Seek(4))
	pos, err := r.Tell()
	require.NoError(t, err)
	require.Equal(t, int64(4), pos)

	v, err := r.Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(4), v)
}

func TestReaderTruncated(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	r := NewBytesReader([]byte{1, 2}, engine)
	_, err := r.Uint32()
	require.ErrorIs(t, err, errs.ErrTruncatedData)

	r = NewBytesReader(nil, engine)
	_, err = r.Uint8()
	require.ErrorIs(t, err, errs.ErrTruncatedData)

	r = NewBytesReader([]byte("abc"), engine)
	_, err = r.Bytes(10)
	require.ErrorIs(t, err, errs.ErrTruncatedData)
}

func TestSectionReader(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	backing := []byte{0xAA, 0xBB, 1, 2, 3, 4, 0xCC}

	r := NewSectionReader(bytes.NewReader(backing), 2, 4, engine)

	// Positions are relative to the section start.
	v, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x04030201), v)

	// Reads past the section bound are truncation errors.
	_, err = r.Uint8()
	require.ErrorIs(t, err, errs.ErrTruncatedData)

	require.NoError(t, r.Seek(0))
	b, err := r.Bytes(4)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, b)
}
