package section

import (
	"strings"

	"github.com/aurorakit/aurora/endian"
	"github.com/aurorakit/aurora/errs"
	"github.com/aurorakit/aurora/format"
)

// StructEntry is one 12-byte record in the struct table.
//
// The Data word is overloaded by FieldCount:
//   - FieldCount == 0: Data is the NoFields sentinel (0xFFFFFFFF)
//   - FieldCount == 1: Data is that field's index in the field table
//   - FieldCount > 1:  Data is a byte offset into the field-indices table
//     holding FieldCount consecutive field indices
type StructEntry struct {
	// ID is the caller-defined struct subtype tag, -1 by default.
	ID int32 // byte offset 0-3
	// Data is the field reference word, interpreted per FieldCount.
	Data uint32 // byte offset 4-7
	// FieldCount is the number of fields in the struct.
	FieldCount uint32 // byte offset 8-11
}

// Parse fills the entry from a 12-byte slice.
func (e *StructEntry) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < StructEntrySize {
		return errs.ErrTruncatedData
	}

	e.ID = int32(engine.Uint32(data[0:4]))
	e.Data = engine.Uint32(data[4:8])
	e.FieldCount = engine.Uint32(data[8:12])

	return nil
}

// Bytes serializes the entry into a fresh 12-byte slice.
func (e *StructEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [StructEntrySize]byte
	engine.PutUint32(b[0:4], uint32(e.ID))
	engine.PutUint32(b[4:8], e.Data)
	engine.PutUint32(b[8:12], e.FieldCount)

	return b[:]
}

// FieldEntry is one 12-byte record in the field table.
//
// The Data word holds the value for simple scalar types, a field-data byte
// offset for complex types, a struct index for Struct fields, and a
// list-indices byte offset for List fields.
type FieldEntry struct {
	// Type is the field's wire type id.
	Type format.FieldType // byte offset 0-3
	// LabelIndex is the field's index into the label table.
	LabelIndex uint32 // byte offset 4-7
	// Data is the value word, interpreted per Type.
	Data uint32 // byte offset 8-11
}

// Parse fills the entry from a 12-byte slice. The type id is not validated
// here; the decoder rejects unknown ids so it can report the field's label.
func (e *FieldEntry) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < FieldEntrySize {
		return errs.ErrTruncatedData
	}

	e.Type = format.FieldType(engine.Uint32(data[0:4]))
	e.LabelIndex = engine.Uint32(data[4:8])
	e.Data = engine.Uint32(data[8:12])

	return nil
}

// Bytes serializes the entry into a fresh 12-byte slice.
func (e *FieldEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [FieldEntrySize]byte
	engine.PutUint32(b[0:4], uint32(e.Type))
	engine.PutUint32(b[4:8], e.LabelIndex)
	engine.PutUint32(b[8:12], e.Data)

	return b[:]
}

// PadLabel serializes a label into a fixed 16-byte NUL-padded slice.
// Labels longer than 16 bytes are rejected.
func PadLabel(label string) ([]byte, error) {
	if len(label) > LabelSize {
		return nil, errs.ErrLabelTooLong
	}

	b := make([]byte, LabelSize)
	copy(b, label)

	return b, nil
}

// TrimLabel recovers the label text from a fixed 16-byte entry, cutting at
// the first NUL.
func TrimLabel(data []byte) string {
	s := string(data)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}

	return s
}
