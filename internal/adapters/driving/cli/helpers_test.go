package cli

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/doccat/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/doccat/internal/core/domain"
	"github.com/custodia-labs/doccat/internal/core/ports/driven"
	"github.com/custodia-labs/doccat/internal/core/ports/driving"
	"github.com/custodia-labs/doccat/internal/core/services"
	"github.com/custodia-labs/doccat/internal/metrics"
	"github.com/custodia-labs/doccat/internal/processors"
	"github.com/custodia-labs/doccat/internal/processors/delay"
	"github.com/custodia-labs/doccat/internal/processors/html"
	"github.com/custodia-labs/doccat/internal/processors/text"
)

// testDocuments returns the catalog used by command tests.
// Processing it with text and HTML yields 3 completed and 3 failed results.
func testDocuments() []domain.Document {
	guide := domain.NewDocument("doc-1", "Getting Started", "Hello world from the catalog", domain.DocumentTypeText, "Alice")
	guide.AddTag("guide")
	guide.AddTag("intro")

	home := domain.NewDocument("doc-2", "Home Page", "<html><body>Welcome</body></html>", domain.DocumentTypeHTML, "Bob")
	home.AddTag("web")

	draft := domain.NewDocument("doc-3", "Empty Note", "", domain.DocumentTypeText, "alice")
	draft.AddTag("draft")

	return []domain.Document{guide, home, draft}
}

// setupTestServices installs an in-memory catalog and config store.
// The returned function restores the previous services and flag values.
func setupTestServices() func() {
	oldCatalog := catalogService
	oldConfig := configStore

	metrics.RegisterProcessingMetrics()

	manager := services.NewDocumentManager()
	procs := processors.InstrumentAll([]driven.DocumentProcessor{
		text.New(text.WithSleep(delay.None)),
		html.New(html.WithSleep(delay.None)),
	})
	for _, p := range procs {
		manager.AddProcessor(p)
	}
	if _, err := manager.LoadFrom(context.Background(), memory.NewDocumentSource(testDocuments()...)); err != nil {
		panic(err)
	}

	catalogService = manager
	configStore = memory.NewConfigStore()

	return func() {
		catalogService = oldCatalog
		configStore = oldConfig
		resetFlags(rootCmd)
	}
}

// emptyCatalog returns a catalog with no documents or processors.
func emptyCatalog() driving.CatalogService {
	return services.NewDocumentManager()
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so tests do not leak
// values into each other through the package-level commands.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
