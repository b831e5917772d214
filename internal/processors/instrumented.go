package processors

import (
	"context"
	"time"

	"github.com/custodia-labs/doccat/internal/core/domain"
	"github.com/custodia-labs/doccat/internal/core/ports/driven"
	"github.com/custodia-labs/doccat/internal/logger"
	"github.com/custodia-labs/doccat/internal/metrics"
)

// Ensure Instrumented implements the interface.
var _ driven.DocumentProcessor = (*Instrumented)(nil)

// Instrumented wraps a DocumentProcessor with metrics and logging.
// It reports the inner processor's name and never alters its outcome.
type Instrumented struct {
	inner driven.DocumentProcessor
}

// Instrument wraps inner with observability.
func Instrument(inner driven.DocumentProcessor) *Instrumented {
	return &Instrumented{inner: inner}
}

// InstrumentAll wraps every processor in ps.
func InstrumentAll(ps []driven.DocumentProcessor) []driven.DocumentProcessor {
	wrapped := make([]driven.DocumentProcessor, 0, len(ps))
	for _, p := range ps {
		wrapped = append(wrapped, Instrument(p))
	}
	return wrapped
}

// Name returns the inner processor's name.
func (p *Instrumented) Name() string {
	return p.inner.Name()
}

// Process delegates to the inner processor and records the outcome.
func (p *Instrumented) Process(ctx context.Context, doc *domain.Document) (domain.ProcessingStatus, error) {
	name := p.inner.Name()
	start := time.Now()

	status, err := p.inner.Process(ctx, doc)

	duration := time.Since(start)
	metrics.ProcessingDuration.WithLabelValues(name).Observe(duration.Seconds())

	state := string(status.State)
	if err != nil {
		state = string(domain.StateFailed)
	}
	metrics.ProcessingTotal.WithLabelValues(name, state).Inc()

	if err != nil {
		logger.Debug("%s failed after %s: %v", name, duration, err)
		return status, err
	}

	logger.Debug("%s finished in %s with status %s", name, duration, status)
	return status, nil
}
