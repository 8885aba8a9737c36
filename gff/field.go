package gff

import (
	"bytes"
	"math"

	"github.com/aurorakit/aurora/format"
)

// Field is one labeled, statically-typed value inside a Struct. The type is
// fixed when the field is created (through the Struct setters or the
// decoder) and never changes; replacing a label through a setter installs a
// new Field rather than retyping the old one.
//
// Integer variants share one 64-bit holder, floats another, and so on; the
// typed getters return (zero, false) on a type mismatch, so callers never
// see another variant's storage.
type Field struct {
	label string
	typ   format.FieldType

	num  uint64 // all integer variants, raw low bits
	flt  float64
	str  string // String and ResRef
	bin  []byte
	vec  Vector4 // Vector3 leaves W zero
	loc  LocalizedString
	sub  *Struct
	list []*Struct
}

// Label returns the field's label.
func (f *Field) Label() string {
	return f.label
}

// Type returns the field's type, fixed at creation.
func (f *Field) Type() format.FieldType {
	return f.typ
}

// UInt8 returns the value of a UInt8 field.
func (f *Field) UInt8() (uint8, bool) {
	if f.typ != format.FieldUInt8 {
		return 0, false
	}

	return uint8(f.num), true
}

// Int8 returns the value of an Int8 field.
func (f *Field) Int8() (int8, bool) {
	if f.typ != format.FieldInt8 {
		return 0, false
	}

	return int8(f.num), true
}

// UInt16 returns the value of a UInt16 field.
func (f *Field) UInt16() (uint16, bool) {
	if f.typ != format.FieldUInt16 {
		return 0, false
	}

	return uint16(f.num), true
}

// Int16 returns the value of an Int16 field.
func (f *Field) Int16() (int16, bool) {
	if f.typ != format.FieldInt16 {
		return 0, false
	}

	return int16(f.num), true
}

// UInt32 returns the value of a UInt32 field.
func (f *Field) UInt32() (uint32, bool) {
	if f.typ != format.FieldUInt32 {
		return 0, false
	}

	return uint32(f.num), true
}

// Int32 returns the value of an Int32 field.
func (f *Field) Int32() (int32, bool) {
	if f.typ != format.FieldInt32 {
		return 0, false
	}

	return int32(f.num), true
}

// UInt64 returns the value of a UInt64 field.
func (f *Field) UInt64() (uint64, bool) {
	if f.typ != format.FieldUInt64 {
		return 0, false
	}

	return f.num, true
}

// Int64 returns the value of an Int64 field.
func (f *Field) Int64() (int64, bool) {
	if f.typ != format.FieldInt64 {
		return 0, false
	}

	return int64(f.num), true
}

// Single returns the value of a Single (32-bit float) field.
func (f *Field) Single() (float32, bool) {
	if f.typ != format.FieldSingle {
		return 0, false
	}

	return float32(f.flt), true
}

// Double returns the value of a Double (64-bit float) field.
func (f *Field) Double() (float64, bool) {
	if f.typ != format.FieldDouble {
		return 0, false
	}

	return f.flt, true
}

// String returns the value of a String field.
func (f *Field) String() (string, bool) {
	if f.typ != format.FieldString {
		return "", false
	}

	return f.str, true
}

// ResRef returns the value of a ResRef field.
func (f *Field) ResRef() (string, bool) {
	if f.typ != format.FieldResRef {
		return "", false
	}

	return f.str, true
}

// LocalizedString returns the value of a LocalizedString field.
func (f *Field) LocalizedString() (LocalizedString, bool) {
	if f.typ != format.FieldLocalizedString {
		return LocalizedString{}, false
	}

	return f.loc, true
}

// Binary returns the value of a Binary field. The slice is the field's own
// storage; callers that mutate it mutate the field.
func (f *Field) Binary() ([]byte, bool) {
	if f.typ != format.FieldBinary {
		return nil, false
	}

	return f.bin, true
}

// Struct returns the child of a Struct field.
func (f *Field) Struct() (*Struct, bool) {
	if f.typ != format.FieldStruct {
		return nil, false
	}

	return f.sub, true
}

// List returns the elements of a List field. The slice is the field's own
// storage.
func (f *Field) List() ([]*Struct, bool) {
	if f.typ != format.FieldList {
		return nil, false
	}

	return f.list, true
}

// Vector3 returns the value of a Vector3 field.
func (f *Field) Vector3() (Vector3, bool) {
	if f.typ != format.FieldVector3 {
		return Vector3{}, false
	}

	return Vector3{X: f.vec.X, Y: f.vec.Y, Z: f.vec.Z}, true
}

// Vector4 returns the value of a Vector4 field.
func (f *Field) Vector4() (Vector4, bool) {
	if f.typ != format.FieldVector4 {
		return Vector4{}, false
	}

	return f.vec, true
}

// Equal reports whether two fields have the same label, type, and value.
// Struct and List values compare deeply and order-sensitively; floats
// compare bitwise, so NaN payloads round-trip as equal.
func (f *Field) Equal(other *Field) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.label != other.label || f.typ != other.typ {
		return false
	}

	switch f.typ {
	case format.FieldUInt8, format.FieldInt8, format.FieldUInt16, format.FieldInt16,
		format.FieldUInt32, format.FieldInt32, format.FieldUInt64, format.FieldInt64:
		return f.num == other.num
	case format.FieldSingle, format.FieldDouble:
		return math.Float64bits(f.flt) == math.Float64bits(other.flt)
	case format.FieldString, format.FieldResRef:
		return f.str == other.str
	case format.FieldLocalizedString:
		return f.loc.Equal(other.loc)
	case format.FieldBinary:
		return bytes.Equal(f.bin, other.bin)
	case format.FieldStruct:
		return f.sub.Equal(other.sub)
	case format.FieldList:
		if len(f.list) != len(other.list) {
			return false
		}
		for i, elem := range f.list {
			if !elem.Equal(other.list[i]) {
				return false
			}
		}

		return true
	case format.FieldVector3, format.FieldVector4:
		return f.vec == other.vec
	default:
		return false
	}
}
