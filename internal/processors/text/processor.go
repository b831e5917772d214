// Package text provides the plain text document processor.
package text

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/doccat/internal/core/domain"
	"github.com/custodia-labs/doccat/internal/core/ports/driven"
	"github.com/custodia-labs/doccat/internal/logger"
	"github.com/custodia-labs/doccat/internal/processors/delay"
)

// Ensure Processor implements the interface.
var _ driven.DocumentProcessor = (*Processor)(nil)

// Name is the identifier reported by the processor.
const Name = "TextProcessor"

// DefaultDelay is the simulated cost of processing one document.
const DefaultDelay = 100 * time.Millisecond

// Processor accepts any document with non-empty content.
type Processor struct {
	delay time.Duration
	sleep delay.Func
}

// Option configures the text processor.
type Option func(*Processor)

// WithDelay sets the simulated processing cost. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(p *Processor) {
		if d >= 0 {
			p.delay = d
		}
	}
}

// WithSleep replaces the function that waits out the simulated cost.
func WithSleep(fn delay.Func) Option {
	return func(p *Processor) {
		if fn != nil {
			p.sleep = fn
		}
	}
}

// New creates a new text processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		delay: DefaultDelay,
		sleep: delay.Sleep,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Delay returns the configured simulated cost.
func (p *Processor) Delay() time.Duration {
	return p.delay
}

// Process rejects documents with empty content and completes all others.
func (p *Processor) Process(ctx context.Context, doc *domain.Document) (domain.ProcessingStatus, error) {
	if doc == nil {
		return domain.ProcessingStatus{}, domain.ErrInvalidInput
	}

	logger.Info("Processing text document: %s", doc.Title)

	if doc.Content == "" {
		return domain.ProcessingStatus{}, domain.ErrEmptyContent
	}

	if err := p.sleep(ctx, p.delay); err != nil {
		return domain.ProcessingStatus{}, fmt.Errorf("text processing interrupted: %w", err)
	}

	return domain.StatusCompleted, nil
}
