package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldTypeWireIDs(t *testing.T) {
	// The numeric assignment is part of the on-disk format and must not drift.
	expected := map[FieldType]uint32{
		FieldUInt8:           0,
		FieldInt8:            1,
		FieldUInt16:          2,
		FieldInt16:           3,
		FieldUInt32:          4,
		FieldInt32:           5,
		FieldUInt64:          6,
		FieldInt64:           7,
		FieldSingle:          8,
		FieldDouble:          9,
		FieldString:          10,
		FieldResRef:          11,
		FieldLocalizedString: 12,
		FieldBinary:          13,
		FieldStruct:          14,
		FieldList:            15,
		FieldVector4:         16,
		FieldVector3:         17,
	}
	for typ, id := range expected {
		require.Equal(t, id, uint32(typ), "type %s", typ)
	}
}

func TestFieldTypeIsComplex(t *testing.T) {
	complexTypes := []FieldType{
		FieldUInt64, FieldInt64, FieldDouble, FieldString, FieldResRef,
		FieldLocalizedString, FieldBinary, FieldVector3, FieldVector4,
	}
	simpleTypes := []FieldType{
		FieldUInt8, FieldInt8, FieldUInt16, FieldInt16,
		FieldUInt32, FieldInt32, FieldSingle,
	}

	for _, typ := range complexTypes {
		require.True(t, typ.IsComplex(), "type %s", typ)
	}
	for _, typ := range simpleTypes {
		require.False(t, typ.IsComplex(), "type %s", typ)
	}
	// Struct and List are neither packed scalars nor field-data payloads.
	require.False(t, FieldStruct.IsComplex())
	require.False(t, FieldList.IsComplex())
}

func TestFieldTypeIsValid(t *testing.T) {
	require.True(t, FieldUInt8.IsValid())
	require.True(t, FieldVector3.IsValid())
	require.False(t, FieldType(18).IsValid())
	require.False(t, FieldType(255).IsValid())
}

func TestFieldTypeString(t *testing.T) {
	require.Equal(t, "LocalizedString", FieldLocalizedString.String())
	require.Equal(t, "Vector3", FieldVector3.String())
	require.Equal(t, "Unknown", FieldType(42).String())
}

func TestContentType(t *testing.T) {
	require.True(t, ContentARE.IsWellFormed())
	require.True(t, ContentType("XXXX").IsWellFormed())
	require.False(t, ContentType("GFF").IsWellFormed())
	require.False(t, ContentType("GFF \x00").IsWellFormed())
	require.False(t, ContentType("G\x00F ").IsWellFormed())

	require.Equal(t, "DLG", ContentDLG.String())
	require.Contains(t, KnownContentTypes(), ContentBIC)
	require.Len(t, KnownContentTypes(), 22)
}
