// Package aurora provides binary codecs for BioWare Aurora-engine
// game-resource formats.
//
// The core of the library is the GFF (Generic File Format) codec: a
// recursive, offset-indexed, typed-tree binary container used by most
// structured game data, including areas (ARE/GIT), dialogs (DLG), creature
// and item templates (UTC/UTI/...), and module metadata (IFO).
//
// # Basic Usage
//
// Decoding a resource:
//
//	doc, err := aurora.DecodeGFF(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, _ := doc.Root.String("Name")
//
// Building and encoding a resource:
//
//	doc := gff.NewDocument(format.ContentUTI)
//	_ = doc.Root.SetResRef("TemplateResRef", "it_sword001")
//	_ = doc.Root.SetUInt32("Cost", 350)
//
//	data, err := aurora.EncodeGFF(doc)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the gff
// package, covering the common cases. For decoder options (nesting limits,
// tool-defined content tags) and the full tree API, use the gff package
// directly.
package aurora

import (
	"io"

	"github.com/aurorakit/aurora/gff"
	"github.com/aurorakit/aurora/internal/hash"
)

// DecodeGFF decodes one GFF resource from an in-memory byte slice.
//
// The resource must start at byte 0. The whole tree is materialized eagerly,
// so the returned Document is freely editable and independent of data.
func DecodeGFF(data []byte) (*gff.Document, error) {
	decoder, err := gff.NewBytesDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}

// DecodeGFFFrom decodes one GFF resource from a seekable source starting at
// byte 0, typically an opened file.
func DecodeGFFFrom(src io.ReadSeeker) (*gff.Document, error) {
	decoder, err := gff.NewDecoder(src)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}

// DecodeGFFAt decodes one GFF resource occupying the size bytes of src
// starting at offset, for resources embedded inside a larger container file
// (an ERF or RIM archive, a save bundle).
func DecodeGFFAt(src io.ReaderAt, offset, size int64) (*gff.Document, error) {
	decoder, err := gff.NewDecoderAt(src, offset, size)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}

// EncodeGFF serializes a document to GFF V3.2 bytes.
//
// Encoding is deterministic: structurally equal documents produce identical
// bytes, so encoded output is safe to fingerprint or diff.
func EncodeGFF(doc *gff.Document) ([]byte, error) {
	return gff.NewEncoder().Encode(doc)
}

// ResourceID converts a resource name to a stable 64-bit hash identifier
// (xxHash64), for callers keying caches or indexes by resource name rather
// than carrying strings around.
//
// The hash is deterministic across processes and platforms:
//
//	id := aurora.ResourceID("m13aa_area")
func ResourceID(name string) uint64 {
	return hash.ID(name)
}
