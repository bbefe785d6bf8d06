// Package wire provides dependency injection for the rcgen application.
// Services are assembled per invocation from the loaded configuration; there
// is no process-global state to share between commands.
package wire

import (
	"os"

	"go.uber.org/zap"

	"github.com/example/rcgen/internal/adapters/excel"
	"github.com/example/rcgen/internal/adapters/filesystem"
	"github.com/example/rcgen/internal/adapters/persistence"
	"github.com/example/rcgen/internal/app"
	"github.com/example/rcgen/internal/config"
	"github.com/example/rcgen/internal/models"
	"github.com/example/rcgen/internal/ports/primary"
	"github.com/example/rcgen/internal/ports/secondary"
)

// OrdersSource describes how the orders ledger is read: the "Comenzi" sheet
// carries a totals row above the header, keyed by internal order id.
func OrdersSource(cfg *config.Config) secondary.DatasetSource {
	return secondary.DatasetSource{
		Path:      cfg.OrdersPath,
		Sheet:     "Comenzi",
		SkipRows:  1,
		KeyColumn: models.ColInternalOrder,
	}
}

// RoutingSource describes how the routing ledger is read: first sheet, header
// on the first row, keyed by part.
func RoutingSource(cfg *config.Config) secondary.DatasetSource {
	return secondary.DatasetSource{
		Path:      cfg.RoutingPath,
		KeyColumn: models.ColRoutingPart,
	}
}

// Pipeline assembles the pipeline service with its real adapters: excelize
// dataset reader and renderers, filesystem folder resolver, JSONL run log in
// the working directory.
func Pipeline(cfg *config.Config, logger *zap.Logger) primary.PipelineService {
	if logger == nil {
		logger = zap.NewNop()
	}

	runDir, err := os.Getwd()
	if err != nil {
		runDir = "."
	}

	reader := excel.NewReader()
	folders := filesystem.NewOutputFolderResolver(cfg.OutputRoot, logger)
	renderer := excel.NewRenderer(cfg.Company)
	runlog := persistence.NewFileRunLog(runDir)

	return app.NewPipelineService(
		OrdersSource(cfg),
		RoutingSource(cfg),
		reader,
		folders,
		renderer,
		runlog,
		cfg.DefaultClient,
		logger,
	)
}

// RunLog returns the run log adapter alone, for commands that only read
// history and never touch the datasets.
func RunLog() secondary.RunLog {
	runDir, err := os.Getwd()
	if err != nil {
		runDir = "."
	}
	return persistence.NewFileRunLog(runDir)
}
