// Package stream provides the byte-level read and write primitives used by
// the codec packages: a seekable Reader over any io.ReadSeeker and a growable
// append-only Writer with offset backfill support.
//
// Both sides work through an endian.EndianEngine, so the same code paths
// serve little- and big-endian layouts. GFF is little-endian throughout.
package stream

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/aurorakit/aurora/endian"
	"github.com/aurorakit/aurora/errs"
)

// Reader reads fixed-width integers, floats, and length-bounded byte runs
// from a seekable byte source.
//
// A read past the end of the source fails with errs.ErrTruncatedData wrapped
// with the offending position. Reader is not safe for concurrent use.
type Reader struct {
	src     io.ReadSeeker
	engine  endian.EndianEngine
	scratch [8]byte
}

// NewReader creates a Reader over src using the given endian engine.
func NewReader(src io.ReadSeeker, engine endian.EndianEngine) *Reader {
	return &Reader{src: src, engine: engine}
}

// NewBytesReader creates a Reader over an in-memory byte slice.
func NewBytesReader(data []byte, engine endian.EndianEngine) *Reader {
	return NewReader(bytes.NewReader(data), engine)
}

// NewSectionReader creates a Reader over the size bytes of src starting at
// offset. All positions observed through Seek and Tell are relative to
// offset, and reads beyond the bound fail with errs.ErrTruncatedData.
func NewSectionReader(src io.ReaderAt, offset, size int64, engine endian.EndianEngine) *Reader {
	return NewReader(io.NewSectionReader(src, offset, size), engine)
}

// fill reads exactly n bytes into the scratch buffer.
func (r *Reader) fill(n int) ([]byte, error) {
	buf := r.scratch[:n]
	if _, err := io.ReadFull(r.src, buf); err != nil {
		return nil, r.wrapRead(err, n)
	}

	return buf, nil
}

func (r *Reader) wrapRead(err error, n int) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		pos, _ := r.src.Seek(0, io.SeekCurrent)
		return fmt.Errorf("%w: need %d bytes at offset %d", errs.ErrTruncatedData, n, pos)
	}

	return err
}

// Uint8 reads one unsigned byte.
func (r *Reader) Uint8() (uint8, error) {
	buf, err := r.fill(1)
	if err != nil {
		return 0, err
	}

	return buf[0], nil
}

// Uint16 reads an unsigned 16-bit integer.
func (r *Reader) Uint16() (uint16, error) {
	buf, err := r.fill(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(buf), nil
}

// Uint32 reads an unsigned 32-bit integer.
func (r *Reader) Uint32() (uint32, error) {
	buf, err := r.fill(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(buf), nil
}

// Uint64 reads an unsigned 64-bit integer.
func (r *Reader) Uint64() (uint64, error) {
	buf, err := r.fill(8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(buf), nil
}

// Int8 reads a signed byte.
func (r *Reader) Int8() (int8, error) {
	v, err := r.Uint8()
	return int8(v), err
}

// Int16 reads a signed 16-bit integer.
func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err
}

// Int32 reads a signed 32-bit integer.
func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

// Int64 reads a signed 64-bit integer.
func (r *Reader) Int64() (int64, error) {
	v, err := r.Uint64()
	return int64(v), err
}

// Float32 reads a 32-bit IEEE 754 float.
func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	return math.Float32frombits(v), err
}

// Float64 reads a 64-bit IEEE 754 float.
func (r *Reader) Float64() (float64, error) {
	v, err := r.Uint64()
	return math.Float64frombits(v), err
}

// Bytes reads exactly n bytes into a fresh slice.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", errs.ErrTruncatedData, n)
	}
	if n == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r.src, buf); err != nil {
		return nil, r.wrapRead(err, n)
	}

	return buf, nil
}

// String reads exactly n bytes and returns them as a string. No trimming or
// charset validation is performed; fixed-width NUL-padded fields are the
// caller's business.
func (r *Reader) String(n int) (string, error) {
	buf, err := r.Bytes(n)
	if err != nil {
		return "", err
	}

	return string(buf), nil
}

// Seek moves the read position to pos bytes from the start of the source.
func (r *Reader) Seek(pos int64) error {
	if _, err := r.src.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek to offset %d: %v", errs.ErrTruncatedData, pos, err)
	}

	return nil
}

// Tell returns the current read position.
func (r *Reader) Tell() (int64, error) {
	return r.src.Seek(0, io.SeekCurrent)
}

// Skip advances the read position by n bytes.
func (r *Reader) Skip(n int64) error {
	if _, err := r.src.Seek(n, io.SeekCurrent); err != nil {
		return fmt.Errorf("%w: skip %d bytes: %v", errs.ErrTruncatedData, n, err)
	}

	return nil
}
