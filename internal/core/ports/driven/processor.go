package driven

import (
	"context"

	"github.com/custodia-labs/doccat/internal/core/domain"
)

// DocumentProcessor inspects a document and reports a processing outcome.
// Processors are registered with the document manager and run in order.
type DocumentProcessor interface {
	// Name returns a stable, human-readable identifier.
	// Uniqueness is not enforced.
	Name() string

	// Process runs the processor against doc.
	// Implementations must not mutate the document.
	// A rejected document is reported through the error, never by panicking.
	Process(ctx context.Context, doc *domain.Document) (domain.ProcessingStatus, error)
}
