package driving

import (
	"context"

	"github.com/custodia-labs/doccat/internal/core/domain"
)

// CatalogService queries and processes the documents held in memory.
// Every returned document is a snapshot; changing it does not change the catalog.
type CatalogService interface {
	// AddDocument stores a copy of doc at the end of the catalog.
	AddDocument(doc domain.Document)

	// Documents returns all documents in insertion order.
	Documents() []domain.Document

	// DocumentCount returns the number of documents.
	DocumentCount() int

	// Get returns the first document with the given ID.
	Get(id string) (*domain.Document, error)

	// FindByAuthor returns documents whose author matches, ignoring case.
	FindByAuthor(author string) []domain.Document

	// FindByType returns documents of the given type.
	FindByType(docType domain.DocumentType) []domain.Document

	// FindByTag returns documents carrying the tag. Matching is case-sensitive.
	FindByTag(tag string) []domain.Document

	// Search returns documents whose title or content contains term, ignoring case.
	Search(term string) []domain.Document

	// ProcessorNames returns the registered processor names in order.
	ProcessorNames() []string

	// ProcessAllDocuments runs every processor against every document.
	// Results are ordered document-major, processor-minor.
	ProcessAllDocuments(ctx context.Context) []domain.ProcessingResult
}
