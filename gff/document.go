package gff

import "github.com/aurorakit/aurora/format"

// Document is one decoded GFF resource: a content tag identifying what kind
// of resource it is, plus the root struct holding the tree.
type Document struct {
	// Content is the 4-character content tag, e.g. format.ContentARE.
	Content format.ContentType
	// Root is the tree's root struct. The decoder always materializes the
	// whole reachable graph, so the tree is freely editable in memory.
	Root *Struct
}

// NewDocument creates an empty document with the given content tag and a
// root struct with the default id.
func NewDocument(content format.ContentType) *Document {
	return &Document{
		Content: content,
		Root:    NewStruct(DefaultStructID),
	}
}

// Equal reports whether two documents have the same content tag and
// structurally equal trees.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}

	return d.Content == other.Content && d.Root.Equal(other.Root)
}
