package driven

import (
	"context"

	"github.com/custodia-labs/doccat/internal/core/domain"
)

// DocumentSource supplies documents whose content has already been read.
// The catalog never reads files or talks to the network itself.
type DocumentSource interface {
	// Load returns every document the source describes, in source order.
	Load(ctx context.Context) ([]domain.Document, error)
}
