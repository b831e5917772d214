// Command doccat loads a document catalog and runs it through processors.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/doccat/internal/adapters/driving/cli"
	"github.com/custodia-labs/doccat/internal/logger"
	"github.com/custodia-labs/doccat/internal/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	metrics.RegisterProcessingMetrics()

	err := cli.Execute(ctx)
	stop()
	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}
