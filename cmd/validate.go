// =============================================================================
// Invoice CLI - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which loads the configuration
// file, checks that all required fields are present, and prints a short
// summary without generating anything.
//
// COMMAND USAGE:
//   invoice validate
//   invoice validate --config ./other.toml
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KevinFink/simple-invoice-creator/internal/config"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file without generating an invoice",
	Long: `The validate command loads the configuration file, applies defaults, and
checks that every field the invoice layout needs is present. It reports all
missing fields at once and writes nothing.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		fmt.Printf("Configuration OK: %s\n", cfgFile)
		fmt.Printf("  Sender:          %s\n", cfg.Sender.Name)
		fmt.Printf("  Client:          %s (%s)\n", cfg.Client.Name, cfg.Client.Company)
		fmt.Printf("  Number prefix:   %s\n", cfg.Invoice.NumberPrefix)
		fmt.Printf("  Filename prefix: %s\n", cfg.Invoice.FilenamePrefix)
		return nil
	},
}

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
}
