package cli

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/doccat/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/doccat/internal/metrics"
)

var processMetrics bool

// metricsGatherer is the source for --metrics output.
var metricsGatherer prometheus.Gatherer = prometheus.DefaultGatherer

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run every document through every processor",
	Long: `Runs each configured processor against each catalogued document.
A failure on one document never stops the others; every result is printed.`,
	Args: cobra.NoArgs,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().BoolVar(&processMetrics, "metrics", false, "print processing counters after the run")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, _ []string) error {
	if err := ensureCatalog(cmd.Context()); err != nil {
		return err
	}

	names := catalogService.ProcessorNames()
	cmd.Printf("Processing %d documents with %d processors (%s)\n\n",
		catalogService.DocumentCount(), len(names), strings.Join(names, ", "))

	results := catalogService.ProcessAllDocuments(cmd.Context())

	st := styles.ForWriter(cmd.OutOrStderr())
	var completed, failed int
	for i := range results {
		r := &results[i]
		status := st.Success.Render(r.Status.String())
		if r.Failed() {
			status = st.Error.Render(r.Status.String())
			failed++
		} else {
			completed++
		}
		cmd.Printf("  %-12s %-14s %s\n", r.DocumentID, r.Processor, status)
	}

	if len(results) > 0 {
		cmd.Println()
	}
	cmd.Printf("Summary: %d completed, %d failed (%d total)\n", completed, failed, len(results))

	if processMetrics {
		return printProcessingMetrics(cmd, st)
	}
	return nil
}

func printProcessingMetrics(cmd *cobra.Command, st *styles.Styles) error {
	counts, err := metrics.ProcessingCounts(metricsGatherer)
	if err != nil {
		return fmt.Errorf("failed to read metrics: %w", err)
	}

	cmd.Println()
	cmd.Println(st.Title.Render("Metrics:"))
	if len(counts) == 0 {
		cmd.Println(st.Muted.Render("  (no samples)"))
		return nil
	}
	for _, c := range counts {
		cmd.Printf("  %s_processing_total{processor=%q,state=%q} %g\n",
			metrics.Namespace, c.Processor, c.State, c.Value)
	}
	return nil
}
