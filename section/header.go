// Package section defines the fixed-size wire records of the GFF binary
// layout: the 56-byte file header, the 12-byte struct and field table
// entries, and the 16-byte NUL-padded label entries.
//
// Everything here is a dumb byte-level view; graph resolution between the
// tables belongs to the gff package.
package section

import (
	"github.com/aurorakit/aurora/endian"
	"github.com/aurorakit/aurora/errs"
	"github.com/aurorakit/aurora/format"
)

// Header is the fixed 56-byte header at the start of every GFF file. The six
// offset/length pairs locate the struct table, field table, label table,
// field-data blob, field-indices table, and list-indices table, in file
// order after the header.
type Header struct {
	// Content is the 4-byte content tag, e.g. "ARE " or "DLG ".
	Content format.ContentType // byte offset 0-3
	// Version is the 4-byte version tag, always "V3.2".
	Version string // byte offset 4-7

	StructOffset       uint32 // byte offset 8-11
	StructCount        uint32 // byte offset 12-15
	FieldOffset        uint32 // byte offset 16-19
	FieldCount         uint32 // byte offset 20-23
	LabelOffset        uint32 // byte offset 24-27
	LabelCount         uint32 // byte offset 28-31
	FieldDataOffset    uint32 // byte offset 32-35
	FieldDataLength    uint32 // byte offset 36-39
	FieldIndicesOffset uint32 // byte offset 40-43
	FieldIndicesLength uint32 // byte offset 44-47
	ListIndicesOffset  uint32 // byte offset 48-51
	ListIndicesLength  uint32 // byte offset 52-55
}

// Parse fills the header from a byte slice.
//
// Only the size is validated here; content tag and version checks belong to
// the decoder, which knows the recognized content set.
func (h *Header) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Content = format.ContentType(data[0:4])
	h.Version = string(data[4:8])
	h.StructOffset = engine.Uint32(data[8:12])
	h.StructCount = engine.Uint32(data[12:16])
	h.FieldOffset = engine.Uint32(data[16:20])
	h.FieldCount = engine.Uint32(data[20:24])
	h.LabelOffset = engine.Uint32(data[24:28])
	h.LabelCount = engine.Uint32(data[28:32])
	h.FieldDataOffset = engine.Uint32(data[32:36])
	h.FieldDataLength = engine.Uint32(data[36:40])
	h.FieldIndicesOffset = engine.Uint32(data[40:44])
	h.FieldIndicesLength = engine.Uint32(data[44:48])
	h.ListIndicesOffset = engine.Uint32(data[48:52])
	h.ListIndicesLength = engine.Uint32(data[52:56])

	return nil
}

// Bytes serializes the header into a fresh 56-byte slice.
func (h *Header) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, HeaderSize)

	copy(b[0:4], h.Content)
	copy(b[4:8], h.Version)
	engine.PutUint32(b[8:12], h.StructOffset)
	engine.PutUint32(b[12:16], h.StructCount)
	engine.PutUint32(b[16:20], h.FieldOffset)
	engine.PutUint32(b[20:24], h.FieldCount)
	engine.PutUint32(b[24:28], h.LabelOffset)
	engine.PutUint32(b[28:32], h.LabelCount)
	engine.PutUint32(b[32:36], h.FieldDataOffset)
	engine.PutUint32(b[36:40], h.FieldDataLength)
	engine.PutUint32(b[40:44], h.FieldIndicesOffset)
	engine.PutUint32(b[44:48], h.FieldIndicesLength)
	engine.PutUint32(b[48:52], h.ListIndicesOffset)
	engine.PutUint32(b[52:56], h.ListIndicesLength)

	return b
}

// ParseHeader parses a Header from a byte slice.
func ParseHeader(data []byte, engine endian.EndianEngine) (Header, error) {
	h := Header{}
	if err := h.Parse(data, engine); err != nil {
		return Header{}, err
	}

	return h, nil
}
