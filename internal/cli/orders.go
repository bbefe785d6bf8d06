package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/rcgen/internal/wire"
)

var ordersSearch string

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List internal order ids present in the orders ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := Logger()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		orders, err := wire.Pipeline(cfg, logger).ListOrders(ctx)
		if err != nil {
			return fmt.Errorf("failed to list orders: %w", err)
		}

		needle := strings.ToUpper(strings.TrimSpace(ordersSearch))
		shown := 0
		for _, id := range orders {
			if needle != "" && !strings.Contains(strings.ToUpper(id), needle) {
				continue
			}
			fmt.Println(id)
			shown++
		}

		if shown == 0 {
			fmt.Println("No orders found")
		}
		return nil
	},
}

func init() {
	ordersCmd.Flags().StringVarP(&ordersSearch, "search", "s", "", "Only show ids containing this text")
	addDatasetFlags(ordersCmd)
}

// OrdersCmd returns the orders command
func OrdersCmd() *cobra.Command {
	return ordersCmd
}
