// Package format defines the wire-level type enumerations of the GFF binary
// format: the field type ids stored in field table entries and the 4-byte
// content tags stored at the start of every file.
//
// The numeric field type assignment matches the Aurora engine's published
// table exactly; it must never be reordered or renumbered, since the ids are
// written to and read from disk.
package format

import "strings"

// FieldType identifies the value variant of a single GFF field.
//
// The underlying value is the u32 type id written to the field table.
type FieldType uint32

const (
	FieldUInt8           FieldType = 0  // unsigned 8-bit integer (BYTE)
	FieldInt8            FieldType = 1  // signed 8-bit integer (CHAR)
	FieldUInt16          FieldType = 2  // unsigned 16-bit integer (WORD)
	FieldInt16           FieldType = 3  // signed 16-bit integer (SHORT)
	FieldUInt32          FieldType = 4  // unsigned 32-bit integer (DWORD)
	FieldInt32           FieldType = 5  // signed 32-bit integer (INT)
	FieldUInt64          FieldType = 6  // unsigned 64-bit integer (DWORD64)
	FieldInt64           FieldType = 7  // signed 64-bit integer (INT64)
	FieldSingle          FieldType = 8  // 32-bit IEEE 754 float (FLOAT)
	FieldDouble          FieldType = 9  // 64-bit IEEE 754 float (DOUBLE)
	FieldString          FieldType = 10 // length-prefixed string (CExoString)
	FieldResRef          FieldType = 11 // resource reference, at most 16 bytes
	FieldLocalizedString FieldType = 12 // stringref plus localized substrings (CExoLocString)
	FieldBinary          FieldType = 13 // opaque byte blob (VOID)
	FieldStruct          FieldType = 14 // nested struct
	FieldList            FieldType = 15 // ordered list of structs
	FieldVector4         FieldType = 16 // four 32-bit floats (orientation quaternion)
	FieldVector3         FieldType = 17 // three 32-bit floats (position)
)

// IsValid reports whether t is one of the known field type ids.
func (t FieldType) IsValid() bool {
	return t <= FieldVector3
}

// IsComplex reports whether values of this type live in the field-data blob,
// addressed by a byte offset in the field entry's data word. Simple scalar
// types pack their value directly into the data word instead.
func (t FieldType) IsComplex() bool {
	switch t {
	case FieldUInt64, FieldInt64, FieldDouble, FieldString, FieldResRef,
		FieldLocalizedString, FieldBinary, FieldVector3, FieldVector4:
		return true
	default:
		return false
	}
}

func (t FieldType) String() string {
	switch t {
	case FieldUInt8:
		return "UInt8"
	case FieldInt8:
		return "Int8"
	case FieldUInt16:
		return "UInt16"
	case FieldInt16:
		return "Int16"
	case FieldUInt32:
		return "UInt32"
	case FieldInt32:
		return "Int32"
	case FieldUInt64:
		return "UInt64"
	case FieldInt64:
		return "Int64"
	case FieldSingle:
		return "Single"
	case FieldDouble:
		return "Double"
	case FieldString:
		return "String"
	case FieldResRef:
		return "ResRef"
	case FieldLocalizedString:
		return "LocalizedString"
	case FieldBinary:
		return "Binary"
	case FieldStruct:
		return "Struct"
	case FieldList:
		return "List"
	case FieldVector4:
		return "Vector4"
	case FieldVector3:
		return "Vector3"
	default:
		return "Unknown"
	}
}

// ContentType is the 4-character ASCII tag identifying what kind of game
// resource a GFF file carries (e.g. an area, a dialog, a creature template).
// The codec treats it as opaque beyond recognizing it; field semantics per
// content type are the caller's business.
type ContentType string

const (
	ContentGFF ContentType = "GFF " // generic
	ContentIFO ContentType = "IFO " // module info
	ContentARE ContentType = "ARE " // area
	ContentGIT ContentType = "GIT " // area instances
	ContentUTC ContentType = "UTC " // creature template
	ContentUTD ContentType = "UTD " // door template
	ContentUTE ContentType = "UTE " // encounter template
	ContentUTI ContentType = "UTI " // item template
	ContentUTP ContentType = "UTP " // placeable template
	ContentUTS ContentType = "UTS " // sound template
	ContentUTM ContentType = "UTM " // merchant template
	ContentUTT ContentType = "UTT " // trigger template
	ContentUTW ContentType = "UTW " // waypoint template
	ContentDLG ContentType = "DLG " // dialog
	ContentJRL ContentType = "JRL " // journal
	ContentFAC ContentType = "FAC " // faction
	ContentITP ContentType = "ITP " // palette
	ContentBIC ContentType = "BIC " // character file
	ContentGUI ContentType = "GUI " // GUI layout
	ContentPTH ContentType = "PTH " // path
	ContentNFO ContentType = "NFO " // save info
	ContentRES ContentType = "RES " // generic resource
)

// KnownContentTypes returns the content tags the decoder recognizes by
// default. Callers with tool-defined tags can extend the set through the
// decoder's WithContentTypes option.
func KnownContentTypes() []ContentType {
	return []ContentType{
		ContentGFF, ContentIFO, ContentARE, ContentGIT, ContentUTC,
		ContentUTD, ContentUTE, ContentUTI, ContentUTP, ContentUTS,
		ContentUTM, ContentUTT, ContentUTW, ContentDLG, ContentJRL,
		ContentFAC, ContentITP, ContentBIC, ContentGUI, ContentPTH,
		ContentNFO, ContentRES,
	}
}

// IsWellFormed reports whether the tag is exactly 4 printable ASCII bytes.
// It does not check membership in the known set.
func (c ContentType) IsWellFormed() bool {
	if len(c) != 4 {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] < 0x20 || c[i] > 0x7E {
			return false
		}
	}

	return true
}

func (c ContentType) String() string {
	return strings.TrimRight(string(c), " ")
}
