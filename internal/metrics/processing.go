// Package metrics declares the Prometheus collectors for document processing.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every doccat metric name.
const Namespace = "doccat"

// Processing Prometheus metrics.
var (
	ProcessingTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "processing_total",
			Help:      "Total number of document processor runs",
		},
		[]string{"processor", "state"},
	)

	ProcessingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "processing_duration_seconds",
			Help:      "Document processor run duration in seconds",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"processor"},
	)
)

var processingMetricsRegistered bool

// RegisterProcessingMetrics registers the processing metrics with the default registry.
// Must be called once from main.
func RegisterProcessingMetrics() {
	if processingMetricsRegistered {
		return
	}
	prometheus.MustRegister(ProcessingTotal)
	prometheus.MustRegister(ProcessingDuration)
	processingMetricsRegistered = true
}

// ProcessingCount is one series of the processing_total counter.
type ProcessingCount struct {
	Processor string
	State     string
	Value     float64
}

// ProcessingCounts reads the processing_total series from g, ordered by labels.
func ProcessingCounts(g prometheus.Gatherer) ([]ProcessingCount, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	name := prometheus.BuildFQName(Namespace, "", "processing_total")

	var counts []ProcessingCount
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			c := ProcessingCount{Value: m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "processor":
					c.Processor = lp.GetValue()
				case "state":
					c.State = lp.GetValue()
				}
			}
			counts = append(counts, c)
		}
	}
	return counts, nil
}
