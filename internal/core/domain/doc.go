// Package domain defines the core business entities for doccat.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A catalogued document with its metadata
//   - Metadata: Author, word count, language and tags of a document
//   - DocumentType: The closed set of supported document formats
//   - ProcessingStatus: The outcome of one processor run
//   - ProcessingResult: One document/processor pair of a batch run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
