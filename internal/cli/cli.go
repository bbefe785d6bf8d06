// Package cli contains the cobra commands of rcgen. Commands translate flags
// and prompts into primary-port calls; all pipeline behavior lives behind the
// service in internal/app.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/example/rcgen/internal/config"
)

// Verbose is bound to the root --verbose flag by cmd/rcgen.
var Verbose bool

// Logger builds the process logger. Production JSON output on stderr; the
// --verbose flag lowers the level to debug.
func Logger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// Dataset path flags shared by the commands that read the ledgers. Flag
// values override the stored configuration for one invocation.
var (
	flagOrdersPath  string
	flagRoutingPath string
	flagOutputRoot  string
)

func addDatasetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagOrdersPath, "orders", "", "Orders ledger path (overrides config)")
	cmd.Flags().StringVar(&flagRoutingPath, "routing", "", "Routing ledger path (overrides config)")
	cmd.Flags().StringVar(&flagOutputRoot, "out", "", "Output root folder (overrides config)")
}

// loadConfig loads the stored configuration, falling back to defaults when no
// config file exists yet, and applies any dataset flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	dir, err := config.Dir()
	if err == nil {
		if loaded, err := config.Load(dir); err == nil {
			cfg = loaded
		}
	}

	if flagOrdersPath != "" {
		cfg.OrdersPath = flagOrdersPath
	}
	if flagRoutingPath != "" {
		cfg.RoutingPath = flagRoutingPath
	}
	if flagOutputRoot != "" {
		cfg.OutputRoot = flagOutputRoot
	}

	if cfg.OrdersPath == "" || cfg.RoutingPath == "" {
		return nil, fmt.Errorf("dataset paths not configured: run 'rcgen init' or pass --orders/--routing")
	}
	return cfg, nil
}
