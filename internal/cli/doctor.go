package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/rcgen/internal/adapters/excel"
	"github.com/example/rcgen/internal/config"
	"github.com/example/rcgen/internal/wire"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, ledgers and output folder",
	Long: "Verify that the configuration resolves, both ledgers open with\n" +
		"their expected key columns, and the output root is writable.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		failures := 0
		check := func(name string, err error) {
			if err != nil {
				failures++
				fmt.Printf("%s %s: %v\n", color.RedString("FAIL"), name, err)
				return
			}
			fmt.Printf("%s   %s\n", color.GreenString("OK"), name)
		}

		var cfgErr error
		if dir, err := config.Dir(); err != nil {
			cfgErr = err
		} else if _, err := os.Stat(config.Path(dir)); err != nil {
			cfgErr = fmt.Errorf("no config file (run 'rcgen init')")
		}
		check("config file", cfgErr)

		cfg, err := loadConfig()
		if err != nil {
			check("dataset paths", err)
			return fmt.Errorf("%d check(s) failed", failures)
		}
		check("dataset paths", nil)

		reader := excel.NewReader()
		if _, err := reader.ListKeys(ctx, wire.OrdersSource(cfg)); err != nil {
			check("orders ledger", err)
		} else {
			check("orders ledger", nil)
		}
		if _, err := reader.ListKeys(ctx, wire.RoutingSource(cfg)); err != nil {
			check("routing ledger", err)
		} else {
			check("routing ledger", nil)
		}

		check("output root", probeOutputRoot(cfg.OutputRoot))

		if failures > 0 {
			return fmt.Errorf("%d check(s) failed", failures)
		}
		fmt.Println("All checks passed")
		return nil
	},
}

// probeOutputRoot verifies the output root can be created and written to. The
// probe file is removed afterwards.
func probeOutputRoot(root string) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("cannot create %s: %w", root, err)
	}
	probe := filepath.Join(root, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("cannot write in %s: %w", root, err)
	}
	return os.Remove(probe)
}

func init() {
	addDatasetFlags(doctorCmd)
}

// DoctorCmd returns the doctor command
func DoctorCmd() *cobra.Command {
	return doctorCmd
}
