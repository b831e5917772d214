package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/doccat/internal/core/domain"
	"github.com/custodia-labs/doccat/internal/core/ports/driven"
	"github.com/custodia-labs/doccat/internal/core/ports/driving"
	"github.com/custodia-labs/doccat/internal/logger"
)

// Ensure DocumentManager implements the interface.
var _ driving.CatalogService = (*DocumentManager)(nil)

// DocumentManager owns the catalogued documents and the registered processors.
// Both collections keep insertion order and every lookup is a linear scan.
// The zero value is an empty manager ready for use.
//
// A DocumentManager is not safe for concurrent use.
type DocumentManager struct {
	documents  []domain.Document
	processors []driven.DocumentProcessor
}

// NewDocumentManager creates an empty document manager.
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{}
}

// AddProcessor appends a processor. Duplicates are allowed.
func (m *DocumentManager) AddProcessor(p driven.DocumentProcessor) {
	m.processors = append(m.processors, p)
}

// AddDocument stores a copy of doc at the end of the catalog.
func (m *DocumentManager) AddDocument(doc domain.Document) {
	m.documents = append(m.documents, doc.Clone())
}

// LoadFrom adds every document produced by source.
// Returns the number of documents added.
func (m *DocumentManager) LoadFrom(ctx context.Context, source driven.DocumentSource) (int, error) {
	docs, err := source.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load documents: %w", err)
	}
	for i := range docs {
		m.AddDocument(docs[i])
	}
	logger.Debug("Loaded %d documents, catalog now holds %d", len(docs), len(m.documents))
	return len(docs), nil
}

// Documents returns all documents in insertion order.
func (m *DocumentManager) Documents() []domain.Document {
	return m.filter(func(*domain.Document) bool { return true })
}

// DocumentCount returns the number of documents.
func (m *DocumentManager) DocumentCount() int {
	return len(m.documents)
}

// ProcessorCount returns the number of registered processors.
func (m *DocumentManager) ProcessorCount() int {
	return len(m.processors)
}

// ProcessorNames returns the registered processor names in order.
func (m *DocumentManager) ProcessorNames() []string {
	names := make([]string, 0, len(m.processors))
	for _, p := range m.processors {
		names = append(names, p.Name())
	}
	return names
}

// Get returns the first document with the given ID.
func (m *DocumentManager) Get(id string) (*domain.Document, error) {
	for i := range m.documents {
		if m.documents[i].ID == id {
			doc := m.documents[i].Clone()
			return &doc, nil
		}
	}
	return nil, fmt.Errorf("document %q: %w", id, domain.ErrNotFound)
}

// FindByAuthor returns documents whose author equals author, ignoring case.
func (m *DocumentManager) FindByAuthor(author string) []domain.Document {
	return m.filter(func(doc *domain.Document) bool {
		return strings.EqualFold(doc.Metadata.Author, author)
	})
}

// FindByType returns documents of the given type.
func (m *DocumentManager) FindByType(docType domain.DocumentType) []domain.Document {
	return m.filter(func(doc *domain.Document) bool {
		return doc.Type == docType
	})
}

// FindByTag returns documents carrying tag. Unlike FindByAuthor, matching is case-sensitive.
func (m *DocumentManager) FindByTag(tag string) []domain.Document {
	return m.filter(func(doc *domain.Document) bool {
		return doc.HasTag(tag)
	})
}

// Search returns documents whose title or content contains term, ignoring case.
func (m *DocumentManager) Search(term string) []domain.Document {
	return m.filter(func(doc *domain.Document) bool {
		return doc.Contains(term)
	})
}

// ProcessAllDocuments runs every processor against every document.
// The outer loop walks documents and the inner loop walks processors, both in
// insertion order, so the result holds DocumentCount()*ProcessorCount() entries.
// A failure never stops the run; it is recorded and the next pair proceeds.
func (m *DocumentManager) ProcessAllDocuments(ctx context.Context) []domain.ProcessingResult {
	logger.Section("Processing")
	logger.Debug("Documents: %d, processors: %d", len(m.documents), len(m.processors))

	results := make([]domain.ProcessingResult, 0, len(m.documents)*len(m.processors))

	for i := range m.documents {
		doc := &m.documents[i]
		for _, p := range m.processors {
			results = append(results, runProcessor(ctx, p, doc))
		}
	}

	return results
}

// runProcessor invokes p on doc and folds the outcome into a result.
func runProcessor(ctx context.Context, p driven.DocumentProcessor, doc *domain.Document) domain.ProcessingResult {
	result := domain.ProcessingResult{
		DocumentID:    doc.ID,
		DocumentTitle: doc.Title,
		Processor:     p.Name(),
	}

	status, err := p.Process(ctx, doc)
	if err != nil {
		logger.Warn("%s rejected document %s: %v", result.Processor, doc.ID, err)
		result.Status = domain.StatusFailed(err.Error())
		result.Err = err
		return result
	}

	result.Status = status
	return result
}

// filter returns snapshots of the documents matching keep, in insertion order.
func (m *DocumentManager) filter(keep func(*domain.Document) bool) []domain.Document {
	var result []domain.Document
	for i := range m.documents {
		if keep(&m.documents[i]) {
			result = append(result, m.documents[i].Clone())
		}
	}
	return result
}
