// Package errs defines the sentinel error values shared across the aurora
// codec packages.
//
// All errors are plain sentinel values created with errors.New. Call sites
// attach context with fmt.Errorf("%w: ...", err, ...) so callers can match
// the underlying condition with errors.Is while still seeing the offending
// offset, index, or type id in the message.
package errs

import "errors"

var (
	// ErrInvalidContentType indicates the 4-byte content tag at the start of
	// the file is not a recognized GFF content type.
	ErrInvalidContentType = errors.New("invalid content type")

	// ErrInvalidVersion indicates the 4-byte version tag is not "V3.2".
	ErrInvalidVersion = errors.New("invalid file version")

	// ErrInvalidHeaderSize indicates the source ended before the fixed
	// 56-byte header could be read.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrTruncatedData indicates a seek or read past the end of the source,
	// or a table index pointing outside its table.
	ErrTruncatedData = errors.New("truncated data")

	// ErrUnknownFieldType indicates a field entry carries a type id outside
	// the known set. The payload size of an unknown type cannot be inferred,
	// so decoding cannot continue past it.
	ErrUnknownFieldType = errors.New("unknown field type")

	// ErrNestingTooDeep indicates the struct graph nests deeper than the
	// decoder's recursion limit, which on a well-formed file means a
	// corrupted struct-index cycle.
	ErrNestingTooDeep = errors.New("struct nesting too deep")

	// ErrLabelTooLong indicates a field label longer than 16 bytes.
	ErrLabelTooLong = errors.New("label exceeds 16 bytes")

	// ErrResRefTooLong indicates a ResRef value longer than 16 bytes.
	ErrResRefTooLong = errors.New("resref exceeds 16 bytes")
)
