// =============================================================================
// Invoice CLI - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which builds a PDF invoice. It
// orchestrates the whole pipeline.
//
// COMMAND USAGE:
//   invoice generate [flags]
//
// FLAGS:
//   --hours        : Number of hours worked (single line item)
//   --rate         : Hourly rate (default from config)
//   --description  : Description for the line item (default from config)
//   --date         : Invoice date in YYYY-MM-DD format (default: today)
//   --csv          : Tabular line-item file (.csv or .xlsx); excludes --hours
//   --output       : Output PDF filename (derived from config if not given)
//
// PIPELINE:
//   1. Load the configuration file
//   2. Resolve line items from the selected source
//   3. Derive the invoice number and compute the total
//   4. Lay out the PDF and write it to the output path
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KevinFink/simple-invoice-creator/internal/config"
	"github.com/KevinFink/simple-invoice-creator/internal/csvparser"
	"github.com/KevinFink/simple-invoice-creator/internal/invoice"
	"github.com/KevinFink/simple-invoice-creator/internal/pdfwriter"
	"github.com/KevinFink/simple-invoice-creator/internal/xlsxparser"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// genHours is the --hours flag (single line-item source).
var genHours string

// genRate is the --rate flag; falls back to the config default.
var genRate string

// genDescription is the --description flag; falls back to the config default.
var genDescription string

// genDate is the --date flag (YYYY-MM-DD).
var genDate string

// genTable is the --csv flag (tabular line-item source).
var genTable string

// genOutput is the --output flag; derived from the config when empty.
var genOutput string

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a PDF invoice",
	Long: `The generate command builds a PDF invoice from the configuration file and a
line-item source.

Line items come from exactly one of two sources:
  - A single item given on the command line with --hours. The rate and
    description fall back to the [invoice] defaults in the configuration.
  - A tabular file given with --csv, carrying hours, description, and rate
    columns. Both .csv and .xlsx files are accepted.

The invoice number is derived from the configured prefix and the invoice
date. When --output is omitted, the file name is derived as
{filename_prefix}_{YYYYMMDD}.pdf. An existing file at the output path is
overwritten.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the generate command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genHours, "hours", "", "Number of hours worked")
	generateCmd.Flags().StringVar(&genRate, "rate", "", "Hourly rate (default from config)")
	generateCmd.Flags().StringVar(&genDescription, "description", "", "Description for the line item")
	generateCmd.Flags().StringVar(
		&genDate,
		"date",
		time.Now().Format("2006-01-02"),
		"Invoice date in YYYY-MM-DD format",
	)
	generateCmd.Flags().StringVar(&genTable, "csv", "", "Line-item file with hours, description, rate columns (.csv or .xlsx)")
	generateCmd.Flags().StringVar(&genOutput, "output", "", "Output PDF filename (auto-generated if not specified)")
}

// =============================================================================
// MAIN GENERATION FUNCTION
// =============================================================================

// runGenerate orchestrates the invoice generation pipeline.
func runGenerate() error {
	// Load the configuration.
	logger.Debug("loading configuration", zap.String("path", cfgFile))
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Parse the invoice date.
	date, err := invoice.ParseDate(genDate)
	if err != nil {
		return err
	}

	// Resolve line items from the selected source.
	items, err := invoice.Resolve(
		invoice.Options{
			TablePath:   genTable,
			Hours:       genHours,
			Rate:        genRate,
			Description: genDescription,
		},
		invoice.Defaults{
			Description: cfg.Invoice.DefaultDescription,
			Rate:        cfg.Invoice.DefaultRate,
		},
		parseTable,
	)
	if err != nil {
		return err
	}
	logger.Debug("resolved line items", zap.Int("count", len(items)))

	// Build the invoice and resolve the output path.
	inv := invoice.New(date, cfg.Invoice.NumberPrefix, items)

	outputPath := genOutput
	if outputPath == "" {
		outputPath = pdfwriter.OutputName(cfg.Invoice.FilenamePrefix, date)
	}

	// Lay out and write the PDF.
	logger.Debug("writing invoice",
		zap.String("number", inv.Number),
		zap.String("total", invoice.FormatCurrency(inv.Total())),
		zap.String("output", outputPath),
	)
	if err := pdfwriter.New(cfg).Write(inv, outputPath); err != nil {
		return err
	}

	fmt.Printf("Invoice created: %s\n", outputPath)
	return nil
}

// parseTable dispatches the tabular source to the right parser based on the
// file extension.
func parseTable(path string) ([]invoice.LineItem, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return xlsxparser.Parse(path)
	}
	return csvparser.Parse(path)
}
