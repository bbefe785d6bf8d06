package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/rcgen/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: "Write config.json with default values into the per-user config\n" +
		"directory. Edit it afterwards to point at the shared ledgers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.Dir()
		if err != nil {
			return err
		}

		path := config.Path(dir)
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}

		cfg := config.Default()
		if flagOrdersPath != "" {
			cfg.OrdersPath = flagOrdersPath
		}
		if flagRoutingPath != "" {
			cfg.RoutingPath = flagRoutingPath
		}
		if flagOutputRoot != "" {
			cfg.OutputRoot = flagOutputRoot
		}

		if err := config.Save(dir, cfg); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Printf("✓ Wrote %s\n", path)
		if cfg.OrdersPath == "" || cfg.RoutingPath == "" {
			fmt.Println("Set orders_path and routing_path before generating documents")
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config")
	addDatasetFlags(initCmd)
}

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return initCmd
}
