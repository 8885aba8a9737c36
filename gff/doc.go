// Package gff implements the in-memory tree model and the binary reader and
// writer for the BioWare Aurora engine's Generic File Format (GFF V3.2),
// the container behind most structured game resources: areas, dialogs,
// templates, module metadata.
//
// # Data model
//
// A Document is a 4-character content tag plus a root Struct. A Struct is an
// ordered label-to-Field map with a caller-defined int32 id (-1 by default).
// A Field is one labeled, statically-typed value; its type is fixed at
// creation. Lists are ordered, possibly heterogeneous sequences of Structs.
//
// Documents are built either by a Decoder from bytes or programmatically
// through the Struct accessor API:
//
//	doc := gff.NewDocument(format.ContentUTC)
//	doc.Root.SetString("FirstName", "Deekin")
//	doc.Root.SetUInt8("Level", 12)
//
//	inv := gff.NewStruct(0)
//	_ = inv.SetResRef("EquippedRes", "nw_it_mring021")
//	doc.Root.SetList("ItemList", []*gff.Struct{inv})
//
//	data, err := gff.NewEncoder().Encode(doc)
//
// and read back with:
//
//	decoder, err := gff.NewBytesDecoder(data)
//	if err != nil {
//	    return err
//	}
//	doc, err := decoder.Decode()
//
// # Wire format
//
// The binary layout is a 56-byte header followed by six sections: a struct
// table, a field table, a deduplicated 16-byte label table, a field-data
// blob for variable and 64-bit payloads, a field-indices table, and a
// list-indices table. The section package defines the fixed records; this
// package resolves the index indirections between them.
//
// Encoding is deterministic: structs are visited in pre-order and labels are
// assigned ids in first-seen order, so two structurally equal documents
// always serialize to identical bytes.
//
// # Concurrency
//
// Decoder and Encoder invocations own their scratch state for the duration
// of one call. Distinct decoder/encoder instances are safe to use
// concurrently; a single Document is not internally synchronized and callers
// must serialize mutation against an in-progress encode.
package gff
