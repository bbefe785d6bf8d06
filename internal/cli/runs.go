package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/rcgen/internal/ports/secondary"
	"github.com/example/rcgen/internal/wire"
)

var runsCount int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent run history from the run log",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		records, err := wire.RunLog().Tail(ctx, runsCount)
		if err != nil {
			return fmt.Errorf("failed to read run log: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No runs recorded yet")
			return nil
		}

		for _, r := range records {
			status := color.GreenString("%-5s", r.Status)
			if r.Status != secondary.RunStatusOK {
				status = color.RedString("%-5s", r.Status)
			}
			fmt.Printf("%s %-20s %-12s %s\n", status, r.StartedAt, r.Order, r.Message)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVarP(&runsCount, "count", "n", 10, "Number of runs to show")
}

// RunsCmd returns the runs command
func RunsCmd() *cobra.Command {
	return runsCmd
}
