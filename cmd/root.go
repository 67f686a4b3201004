// =============================================================================
// Invoice CLI - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'generate', 'store-config')
// are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (invoice)
//   ├── generateCmd (invoice generate)
//   ├── storeConfigCmd (invoice store-config)
//   ├── validateCmd (invoice validate)
//   └── versionCmd (invoice version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Initializing the logger
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// logger is the structured logger shared by all commands. It is built in the
// root PersistentPreRunE, so every RunE can rely on it being non-nil.
var logger *zap.Logger

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "invoice",

	Short: "Invoice CLI - Generate PDF invoices and manage the invoice configuration",

	Long: `Invoice CLI generates formatted PDF invoices from command-line flags or a
tabular line-item file, and can store the configuration file as a secret in
1Password.

The configuration file (config.toml) carries the sender identity, client
identity, bank details, and invoice defaults. Line items come either from a
single --hours/--rate/--description triple or from a CSV/XLSX file with
hours, description, and rate columns.

Example Usage:
  invoice generate --hours 200 --date 2025-12-02
  invoice generate --csv line_items.csv
  invoice store-config --vault Private
  invoice validate`,

	// Errors are reported once by Execute; suppress cobra's usage dump and
	// its own error print so the user sees a single clear message.
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.toml",
		"Path to the configuration file",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// initLogger builds the shared logger. Console output stays quiet unless
// --verbose is given; each invocation is tagged with a run id so log lines
// from one run can be grepped together.
func initLogger() error {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger = l.With(zap.String("run_id", uuid.New().String()))
	return nil
}
