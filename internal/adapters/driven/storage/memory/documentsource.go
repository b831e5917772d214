package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/doccat/internal/core/domain"
	"github.com/custodia-labs/doccat/internal/core/ports/driven"
)

// Ensure DocumentSource implements the interface.
var _ driven.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is an in-memory implementation of driven.DocumentSource.
// Load hands out copies, so callers never share tag slices with the source.
type DocumentSource struct {
	mu        sync.RWMutex
	documents []domain.Document
}

// NewDocumentSource creates a source holding docs in order.
func NewDocumentSource(docs ...domain.Document) *DocumentSource {
	s := &DocumentSource{}
	for i := range docs {
		s.Add(docs[i])
	}
	return s
}

// Add appends a copy of doc.
func (s *DocumentSource) Add(doc domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, doc.Clone())
}

// Len returns the number of documents held.
func (s *DocumentSource) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// Load returns copies of every document in insertion order.
func (s *DocumentSource) Load(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]domain.Document, len(s.documents))
	for i := range s.documents {
		docs[i] = s.documents[i].Clone()
	}
	return docs, nil
}
