package section

const (
	// HeaderSize is the fixed header size in bytes: 4-byte content tag,
	// 4-byte version tag, then twelve uint32 offset/count words.
	HeaderSize = 56

	// StructEntrySize is the size of one struct table entry in bytes.
	StructEntrySize = 12

	// FieldEntrySize is the size of one field table entry in bytes.
	FieldEntrySize = 12

	// LabelSize is the size of one label table entry: 16 bytes, NUL-padded.
	LabelSize = 16

	// Version is the only supported GFF version tag.
	Version = "V3.2"

	// NoFields is the struct entry data-word sentinel for a struct with zero
	// fields.
	NoFields uint32 = 0xFFFFFFFF
)
