package gff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurorakit/aurora/errs"
	"github.com/aurorakit/aurora/format"
)

func TestStructInsertionOrder(t *testing.T) {
	s := NewStruct(DefaultStructID)
	require.NoError(t, s.SetUInt8("Zulu", 1))
	require.NoError(t, s.SetUInt8("Alpha", 2))
	require.NoError(t, s.SetUInt8("Mike", 3))

	require.Equal(t, []string{"Zulu", "Alpha", "Mike"}, s.Labels())
	require.Equal(t, 3, s.Len())
	require.Equal(t, "Zulu", s.FieldAt(0).Label())
	require.Nil(t, s.FieldAt(3))
	require.Nil(t, s.FieldAt(-1))
}

func TestStructReplacePreservesOrder(t *testing.T) {
	s := NewStruct(DefaultStructID)
	require.NoError(t, s.SetUInt8("A", 1))
	require.NoError(t, s.SetUInt8("B", 2))
	require.NoError(t, s.SetUInt8("C", 3))

	// Replacing B keeps it in the middle, even across a type change.
	require.NoError(t, s.SetString("B", "two"))
	require.Equal(t, []string{"A", "B", "C"}, s.Labels())
	require.Equal(t, 3, s.Len())

	v, ok := s.String("B")
	require.True(t, ok)
	require.Equal(t, "two", v)

	_, ok = s.UInt8("B")
	require.False(t, ok, "old variant must be gone after replacement")
}

func TestStructRemove(t *testing.T) {
	s := NewStruct(DefaultStructID)
	require.NoError(t, s.SetUInt8("A", 1))
	require.NoError(t, s.SetUInt8("B", 2))
	require.NoError(t, s.SetUInt8("C", 3))

	require.True(t, s.Remove("B"))
	require.False(t, s.Remove("B"))
	require.Equal(t, []string{"A", "C"}, s.Labels())

	// Index map must stay consistent after the shift.
	v, ok := s.UInt8("C")
	require.True(t, ok)
	require.Equal(t, uint8(3), v)
}

func TestStructLabelValidation(t *testing.T) {
	s := NewStruct(DefaultStructID)
	require.ErrorIs(t, s.SetUInt8("ThisLabelIsTooLongFor16", 1), errs.ErrLabelTooLong)
	require.NoError(t, s.SetUInt8("Exactly16Bytes__", 1))
}

func TestStructResRefValidation(t *testing.T) {
	s := NewStruct(DefaultStructID)
	require.NoError(t, s.SetResRef("Res", "nw_it_mring021"))
	require.NoError(t, s.SetResRef("Max", "sixteen_chars_ok"))
	require.ErrorIs(t, s.SetResRef("Bad", "seventeen_chars__"), errs.ErrResRefTooLong)
}

func TestStructNilChildren(t *testing.T) {
	s := NewStruct(DefaultStructID)
	require.Error(t, s.SetStruct("Child", nil))
	require.Error(t, s.SetList("Kids", []*Struct{NewStruct(0), nil}))
	require.NoError(t, s.SetList("Empty", nil))
}

func TestTypedGetterMismatch(t *testing.T) {
	s := NewStruct(DefaultStructID)
	require.NoError(t, s.SetUInt8("A", 5))

	_, ok := s.Int8("A")
	require.False(t, ok)
	_, ok = s.String("A")
	require.False(t, ok)
	_, ok = s.UInt8("Missing")
	require.False(t, ok)

	f, ok := s.Field("A")
	require.True(t, ok)
	require.Equal(t, format.FieldUInt8, f.Type())
}

func TestStructEqual(t *testing.T) {
	build := func() *Struct {
		s := NewStruct(7)
		_ = s.SetUInt8("A", 1)
		_ = s.SetString("B", "x")
		child := NewStruct(1)
		_ = child.SetInt32("N", -5)
		_ = s.SetStruct("C", child)
		return s
	}

	a, b := build(), build()
	require.True(t, a.Equal(b))

	b.SetID(8)
	require.False(t, a.Equal(b))

	b = build()
	_ = b.SetString("B", "y")
	require.False(t, a.Equal(b))

	// Field order matters for equality.
	c := NewStruct(7)
	_ = c.SetString("B", "x")
	_ = c.SetUInt8("A", 1)
	child := NewStruct(1)
	_ = child.SetInt32("N", -5)
	_ = c.SetStruct("C", child)
	require.False(t, a.Equal(c))

	require.True(t, (*Struct)(nil).Equal(nil))
	require.False(t, a.Equal(nil))
}

func TestLocalizedStringEqual(t *testing.T) {
	a := LocalizedString{StringRef: 42, Substrings: []Substring{{ID: 0, Text: "hi"}}}
	b := LocalizedString{StringRef: 42, Substrings: []Substring{{ID: 0, Text: "hi"}}}
	require.True(t, a.Equal(b))

	b.Substrings[0].ID = 1
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(LocalizedString{StringRef: 42}))
	require.True(t, LocalizedString{StringRef: NoStringRef}.Equal(LocalizedString{StringRef: -1}))
}

func TestDocumentEqual(t *testing.T) {
	a := NewDocument(format.ContentARE)
	b := NewDocument(format.ContentARE)
	require.True(t, a.Equal(b))

	b.Content = format.ContentDLG
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))
	require.True(t, (*Document)(nil).Equal(nil))
}
