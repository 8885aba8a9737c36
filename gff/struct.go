package gff

import (
	"fmt"

	"github.com/aurorakit/aurora/errs"
	"github.com/aurorakit/aurora/format"
	"github.com/aurorakit/aurora/section"
)

// DefaultStructID is the struct id of structs that carry no caller-defined
// subtype tag. The codec treats ids as opaque; they matter mostly for
// heterogeneous list elements.
const DefaultStructID int32 = -1

// Struct is a GFF node: an ordered label-to-Field map plus an opaque int32
// id. Labels are unique within one struct and at most 16 bytes; setting an
// existing label replaces its field in place, preserving insertion order.
//
// Struct is not safe for concurrent mutation.
type Struct struct {
	id     int32
	fields []*Field
	index  map[string]int
}

// NewStruct creates an empty struct with the given id. Use DefaultStructID
// when the caller has no subtype tag to record.
func NewStruct(id int32) *Struct {
	return &Struct{
		id:    id,
		index: make(map[string]int),
	}
}

// ID returns the struct's caller-defined id.
func (s *Struct) ID() int32 {
	return s.id
}

// SetID sets the struct's caller-defined id.
func (s *Struct) SetID(id int32) {
	s.id = id
}

// Len returns the number of fields.
func (s *Struct) Len() int {
	return len(s.fields)
}

// FieldAt returns the field at position i in insertion order, or nil if i is
// out of range.
func (s *Struct) FieldAt(i int) *Field {
	if i < 0 || i >= len(s.fields) {
		return nil
	}

	return s.fields[i]
}

// Field returns the field with the given label.
func (s *Struct) Field(label string) (*Field, bool) {
	i, ok := s.index[label]
	if !ok {
		return nil, false
	}

	return s.fields[i], true
}

// Has reports whether a field with the given label exists.
func (s *Struct) Has(label string) bool {
	_, ok := s.index[label]
	return ok
}

// Labels returns the field labels in insertion order.
func (s *Struct) Labels() []string {
	labels := make([]string, len(s.fields))
	for i, f := range s.fields {
		labels[i] = f.label
	}

	return labels
}

// Remove deletes the field with the given label, preserving the order of the
// remaining fields. It reports whether a field was removed.
func (s *Struct) Remove(label string) bool {
	i, ok := s.index[label]
	if !ok {
		return false
	}

	s.fields = append(s.fields[:i], s.fields[i+1:]...)
	delete(s.index, label)
	for j := i; j < len(s.fields); j++ {
		s.index[s.fields[j].label] = j
	}

	return true
}

// put installs a field, replacing an existing one with the same label in
// place or appending a new one. The label must already be validated.
func (s *Struct) put(f *Field) {
	if i, ok := s.index[f.label]; ok {
		s.fields[i] = f
		return
	}

	s.index[f.label] = len(s.fields)
	s.fields = append(s.fields, f)
}

func checkLabel(label string) error {
	if len(label) > section.LabelSize {
		return fmt.Errorf("%w: %q is %d bytes", errs.ErrLabelTooLong, label, len(label))
	}

	return nil
}

// SetUInt8 sets a UInt8 field.
func (s *Struct) SetUInt8(label string, value uint8) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldUInt8, num: uint64(value)})

	return nil
}

// SetInt8 sets an Int8 field.
func (s *Struct) SetInt8(label string, value int8) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldInt8, num: uint64(uint8(value))})

	return nil
}

// SetUInt16 sets a UInt16 field.
func (s *Struct) SetUInt16(label string, value uint16) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldUInt16, num: uint64(value)})

	return nil
}

// SetInt16 sets an Int16 field.
func (s *Struct) SetInt16(label string, value int16) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldInt16, num: uint64(uint16(value))})

	return nil
}

// SetUInt32 sets a UInt32 field.
func (s *Struct) SetUInt32(label string, value uint32) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldUInt32, num: uint64(value)})

	return nil
}

// SetInt32 sets an Int32 field.
func (s *Struct) SetInt32(label string, value int32) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldInt32, num: uint64(uint32(value))})

	return nil
}

// SetUInt64 sets a UInt64 field.
func (s *Struct) SetUInt64(label string, value uint64) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldUInt64, num: value})

	return nil
}

// SetInt64 sets an Int64 field.
func (s *Struct) SetInt64(label string, value int64) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldInt64, num: uint64(value)})

	return nil
}

// SetSingle sets a Single (32-bit float) field.
func (s *Struct) SetSingle(label string, value float32) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldSingle, flt: float64(value)})

	return nil
}

// SetDouble sets a Double (64-bit float) field.
func (s *Struct) SetDouble(label string, value float64) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldDouble, flt: value})

	return nil
}

// SetString sets a String field.
func (s *Struct) SetString(label string, value string) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldString, str: value})

	return nil
}

// SetResRef sets a ResRef field. ResRefs are bounded at 16 bytes; longer
// values are rejected rather than truncated.
func (s *Struct) SetResRef(label string, value string) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	if len(value) > section.LabelSize {
		return fmt.Errorf("%w: %q is %d bytes", errs.ErrResRefTooLong, value, len(value))
	}
	s.put(&Field{label: label, typ: format.FieldResRef, str: value})

	return nil
}

// SetLocalizedString sets a LocalizedString field. The substring slice is
// not copied; the field takes ownership.
func (s *Struct) SetLocalizedString(label string, value LocalizedString) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldLocalizedString, loc: value})

	return nil
}

// SetBinary sets a Binary field. The byte slice is not copied; the field
// takes ownership.
func (s *Struct) SetBinary(label string, value []byte) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldBinary, bin: value})

	return nil
}

// SetStruct sets a nested Struct field. The child must be non-nil; the field
// takes ownership of it.
func (s *Struct) SetStruct(label string, child *Struct) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	if child == nil {
		return fmt.Errorf("struct field %q: child must not be nil", label)
	}
	s.put(&Field{label: label, typ: format.FieldStruct, sub: child})

	return nil
}

// SetList sets a List field. Elements must be non-nil; the field takes
// ownership of the slice.
func (s *Struct) SetList(label string, elems []*Struct) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	for i, elem := range elems {
		if elem == nil {
			return fmt.Errorf("list field %q: element %d must not be nil", label, i)
		}
	}
	s.put(&Field{label: label, typ: format.FieldList, list: elems})

	return nil
}

// SetVector3 sets a Vector3 field.
func (s *Struct) SetVector3(label string, value Vector3) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{
		label: label,
		typ:   format.FieldVector3,
		vec:   Vector4{X: value.X, Y: value.Y, Z: value.Z},
	})

	return nil
}

// SetVector4 sets a Vector4 field.
func (s *Struct) SetVector4(label string, value Vector4) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.put(&Field{label: label, typ: format.FieldVector4, vec: value})

	return nil
}

// UInt8 returns the value of the UInt8 field with the given label.
func (s *Struct) UInt8(label string) (uint8, bool) {
	f, ok := s.Field(label)
	if !ok {
		return 0, false
	}

	return f.UInt8()
}

// Int8 returns the value of the Int8 field with the given label.
func (s *Struct) Int8(label string) (int8, bool) {
	f, ok := s.Field(label)
	if !ok {
		return 0, false
	}

	return f.Int8()
}

// UInt16 returns the value of the UInt16 field with the given label.
func (s *Struct) UInt16(label string) (uint16, bool) {
	f, ok := s.Field(label)
	if !ok {
		return 0, false
	}

	return f.UInt16()
}

// Int16 returns the value of the Int16 field with the given label.
func (s *Struct) Int16(label string) (int16, bool) {
	f, ok := s.Field(label)
	if !ok {
		return 0, false
	}

	return f.Int16()
}

// UInt32 returns the value of the UInt32 field with the given label.
func (s *Struct) UInt32(label string) (uint32, bool) {
	f, ok := s.Field(label)
	if !ok {
		return 0, false
	}

	return f.UInt32()
}

// Int32 returns the value of the Int32 field with the given label.
func (s *Struct) Int32(label string) (int32, bool) {
	f, ok := s.Field(label)
	if !ok {
		return 0, false
	}

	return f.Int32()
}

// UInt64 returns the value of the UInt64 field with the given label.
func (s *Struct) UInt64(label string) (uint64, bool) {
	f, ok := s.Field(label)
	if !ok {
		return 0, false
	}

	return f.UInt64()
}

// Int64 returns the value of the Int64 field with the given label.
func (s *Struct) Int64(label string) (int64, bool) {
	f, ok := s.Field(label)
	if !ok {
		return 0, false
	}

	return f.Int64()
}

// Single returns the value of the Single field with the given label.
func (s *Struct) Single(label string) (float32, bool) {
	f, ok := s.Field(label)
	if !ok {
		return 0, false
	}

	return f.Single()
}

// Double returns the value of the Double field with the given label.
func (s *Struct) Double(label string) (float64, bool) {
	f, ok := s.Field(label)
	if !ok {
		return 0, false
	}

	return f.Double()
}

// String returns the value of the String field with the given label.
func (s *Struct) String(label string) (string, bool) {
	f, ok := s.Field(label)
	if !ok {
		return "", false
	}

	return f.String()
}

// ResRef returns the value of the ResRef field with the given label.
func (s *Struct) ResRef(label string) (string, bool) {
	f, ok := s.Field(label)
	if !ok {
		return "", false
	}

	return f.ResRef()
}

// LocalizedString returns the value of the LocalizedString field with the
// given label.
func (s *Struct) LocalizedString(label string) (LocalizedString, bool) {
	f, ok := s.Field(label)
	if !ok {
		return LocalizedString{}, false
	}

	return f.LocalizedString()
}

// Binary returns the value of the Binary field with the given label.
func (s *Struct) Binary(label string) ([]byte, bool) {
	f, ok := s.Field(label)
	if !ok {
		return nil, false
	}

	return f.Binary()
}

// Struct returns the child of the Struct field with the given label.
func (s *Struct) Struct(label string) (*Struct, bool) {
	f, ok := s.Field(label)
	if !ok {
		return nil, false
	}

	return f.Struct()
}

// List returns the elements of the List field with the given label.
func (s *Struct) List(label string) ([]*Struct, bool) {
	f, ok := s.Field(label)
	if !ok {
		return nil, false
	}

	return f.List()
}

// Vector3 returns the value of the Vector3 field with the given label.
func (s *Struct) Vector3(label string) (Vector3, bool) {
	f, ok := s.Field(label)
	if !ok {
		return Vector3{}, false
	}

	return f.Vector3()
}

// Vector4 returns the value of the Vector4 field with the given label.
func (s *Struct) Vector4(label string) (Vector4, bool) {
	f, ok := s.Field(label)
	if !ok {
		return Vector4{}, false
	}

	return f.Vector4()
}

// Equal reports whether two structs have the same id and the same fields in
// the same insertion order, compared deeply.
func (s *Struct) Equal(other *Struct) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.id != other.id || len(s.fields) != len(other.fields) {
		return false
	}
	for i, f := range s.fields {
		if !f.Equal(other.fields[i]) {
			return false
		}
	}

	return true
}
