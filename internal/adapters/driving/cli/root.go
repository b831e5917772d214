// Package cli implements the doccat command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doccat/internal/adapters/driven/catalog"
	"github.com/custodia-labs/doccat/internal/adapters/driven/config/file"
	"github.com/custodia-labs/doccat/internal/core/ports/driven"
	"github.com/custodia-labs/doccat/internal/core/ports/driving"
	"github.com/custodia-labs/doccat/internal/core/services"
	"github.com/custodia-labs/doccat/internal/logger"
	"github.com/custodia-labs/doccat/internal/processors"
)

// catalogPathKey is the config key naming the default catalog file.
const catalogPathKey = "catalog.path"

// version is set at build time via -ldflags.
var version = "dev"

// Services wired lazily on first use. Tests replace them directly.
var (
	catalogService driving.CatalogService
	configStore    driven.ConfigStore
)

// Global flags.
var (
	verbose     bool
	configDir   string
	catalogPath string
)

var errNoCatalog = errors.New("no catalog configured: pass --catalog or set " + catalogPathKey)

var rootCmd = &cobra.Command{
	Use:   "doccat",
	Short: "Catalogue and process documents",
	Long: `doccat loads a catalogue of documents into memory, answers queries
by author, type, tag or text, and runs every document through the
configured processors.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/"+file.DefaultDirName+")")
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "catalog file (default from "+catalogPathKey+")")
}

// Execute runs the root command with output on stdout.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// ensureConfig opens the file config store unless one is already set.
func ensureConfig() error {
	if configStore != nil {
		return nil
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	configStore = store
	return nil
}

// ensureCatalog loads the catalog and builds the configured processors
// unless a catalog service is already set.
func ensureCatalog(ctx context.Context) error {
	if catalogService != nil {
		return nil
	}
	if err := ensureConfig(); err != nil {
		return err
	}

	path := catalogPath
	if path == "" {
		path = configStore.GetString(catalogPathKey)
	}
	if path == "" {
		return errNoCatalog
	}

	registry := processors.NewRegistry()
	processors.RegisterDefaults(registry)

	procs, err := processors.FromConfig(registry, configStore)
	if err != nil {
		return fmt.Errorf("failed to build processors: %w", err)
	}

	manager := services.NewDocumentManager()
	for _, p := range processors.InstrumentAll(procs) {
		manager.AddProcessor(p)
	}

	if _, err := manager.LoadFrom(ctx, catalog.NewFileSource(path)); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	catalogService = manager
	return nil
}
