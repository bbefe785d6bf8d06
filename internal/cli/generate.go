package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/rcgen/internal/ports/primary"
	"github.com/example/rcgen/internal/wire"
)

var (
	generateOrder     string
	generateBatch     string
	generateType      string
	generateNoPrompt  bool
	generateClientLot string
	generateLot       string
	generateCert      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate route cards or certificates of conformity",
	Long: "Look orders up in the orders and routing ledgers and write the\n" +
		"requested document into each order's output folder. Batch runs\n" +
		"continue past failing orders; every run is recorded in the run log.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		docType := primary.DocumentType(strings.ToUpper(strings.TrimSpace(generateType)))
		if !docType.Valid() {
			return fmt.Errorf("invalid --type %q: must be RC or COC", generateType)
		}

		orders, err := collectOrders()
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			return fmt.Errorf("no orders given: pass --order or --batch")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := Logger()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		opts := primary.GenerateOptions{Overrides: collectOverrides(docType, len(orders))}

		service := wire.Pipeline(cfg, logger)
		results := service.ProcessBatch(ctx, orders, docType, opts)

		failed := 0
		for _, r := range results {
			if r.OK() {
				fmt.Printf("%s  %-12s %s\n", color.GreenString("OK"), r.Order, r.Message)
			} else {
				failed++
				fmt.Printf("%s %-12s %s\n", color.RedString("ERR"), r.Order, r.Message)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d orders failed", failed, len(results))
		}
		fmt.Printf("Processed %d order(s)\n", len(results))
		return nil
	},
}

// collectOrders merges --order and the newline-delimited --batch file into
// one id list. Blank lines and lines starting with # are skipped.
func collectOrders() ([]string, error) {
	var orders []string
	if strings.TrimSpace(generateOrder) != "" {
		orders = append(orders, generateOrder)
	}
	if generateBatch == "" {
		return orders, nil
	}

	data, err := os.ReadFile(generateBatch)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		orders = append(orders, line)
	}
	return orders, nil
}

// collectOverrides assembles certificate field overrides from flags, prompting
// interactively for the client lot when generating certificates without
// --no-prompt. The prompt runs once and its answer applies to the whole
// batch; the lot number prompt only makes sense for a single order.
func collectOverrides(docType primary.DocumentType, orderCount int) primary.COCOverrides {
	var overrides primary.COCOverrides
	if docType != primary.DocumentCOC {
		return overrides
	}

	if generateCert != "" {
		overrides.CertificateNo = &generateCert
	}
	if generateLot != "" {
		overrides.LotNo = &generateLot
	}
	if generateClientLot != "" {
		overrides.ClientLotNo = &generateClientLot
	}

	if generateNoPrompt {
		return overrides
	}

	reader := bufio.NewReader(os.Stdin)
	if overrides.ClientLotNo == nil {
		if answer := prompt(reader, "Client lot number (leave empty to skip): "); answer != "" {
			overrides.ClientLotNo = &answer
		}
	}
	if overrides.LotNo == nil && orderCount == 1 {
		if answer := prompt(reader, "Lot number (leave empty for default): "); answer != "" {
			overrides.LotNo = &answer
		}
	}
	return overrides
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(line)
}

func init() {
	generateCmd.Flags().StringVar(&generateOrder, "order", "", "Internal order id to process")
	generateCmd.Flags().StringVar(&generateBatch, "batch", "", "File of order ids, one per line")
	generateCmd.Flags().StringVarP(&generateType, "type", "t", "RC", "Document type: RC or COC")
	generateCmd.Flags().BoolVar(&generateNoPrompt, "no-prompt", false, "Never prompt; use flag values and computed defaults")
	generateCmd.Flags().StringVar(&generateClientLot, "client-lot", "", "Client lot number for the certificate")
	generateCmd.Flags().StringVar(&generateLot, "lot", "", "Lot number override for the certificate")
	generateCmd.Flags().StringVar(&generateCert, "cert", "", "Certificate number override")
	addDatasetFlags(generateCmd)
}

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	return generateCmd
}
