// Package html provides the HTML document processor.
package html

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/doccat/internal/core/domain"
	"github.com/custodia-labs/doccat/internal/core/ports/driven"
	"github.com/custodia-labs/doccat/internal/logger"
	"github.com/custodia-labs/doccat/internal/processors/delay"
)

// Ensure Processor implements the interface.
var _ driven.DocumentProcessor = (*Processor)(nil)

// Name is the identifier reported by the processor.
const Name = "HtmlProcessor"

// DefaultDelay is the simulated cost of processing one document.
const DefaultDelay = 200 * time.Millisecond

// Markers, at least one of which must appear verbatim in the content.
const (
	htmlMarker    = "<html>"
	doctypeMarker = "<!DOCTYPE"
)

// Processor accepts documents that look like HTML pages.
// The check is a literal, case-sensitive substring test; no parsing happens.
type Processor struct {
	delay time.Duration
	sleep delay.Func
}

// Option configures the HTML processor.
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

// New creates a new HTML processor with the given options.
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

// Process completes documents containing an <html> tag or a doctype declaration.
func (p *Processor) Process(ctx context.Context, doc *domain.Document) (domain.ProcessingStatus, error) {
	if doc == nil {
		return domain.ProcessingStatus{}, domain.ErrInvalidInput
	}

	logger.Info("Processing HTML document: %s", doc.Title)

	if !looksLikeHTML(doc.Content) {
		return domain.ProcessingStatus{}, domain.ErrInvalidHTML
	}

	if err := p.sleep(ctx, p.delay); err != nil {
		return domain.ProcessingStatus{}, fmt.Errorf("html processing interrupted: %w", err)
	}

	return domain.StatusCompleted, nil
}

func looksLikeHTML(content string) bool {
	return strings.Contains(content, htmlMarker) || strings.Contains(content, doctypeMarker)
}
