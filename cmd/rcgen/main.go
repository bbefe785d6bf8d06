package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/rcgen/internal/cli"
	"github.com/example/rcgen/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "rcgen",
		Short:   "rcgen - route card and certificate generator",
		Version: version.String(),
		Long: `rcgen generates manufacturing route cards and certificates of conformity
from the shared orders and routing ledgers, one output folder per order.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.OrdersCmd())
	rootCmd.AddCommand(cli.RunsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
