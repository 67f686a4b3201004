// =============================================================================
// Invoice CLI - Store-Config Command
// =============================================================================
//
// This file defines the 'store-config' command, which stores the raw text of
// the configuration file as a Secure Note in 1Password via the op CLI.
//
// COMMAND USAGE:
//   invoice store-config --vault Private
//   invoice store-config --vault Private --title invoice-config --account my.1password.com
//
// BEHAVIOR:
//   An existing item with the same vault and title is updated in place;
//   otherwise a new item is created. Every failure is terminal: there are no
//   retries and no partial-failure recovery for this single-shot operation.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KevinFink/simple-invoice-creator/internal/secretstore"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// storeVault is the 1Password vault name (required).
var storeVault string

// storeTitle is the item title in the vault.
var storeTitle string

// storeAccount is the optional 1Password account.
var storeAccount string

// =============================================================================
// STORE-CONFIG COMMAND DEFINITION
// =============================================================================

// storeConfigCmd represents the 'store-config' command.
var storeConfigCmd = &cobra.Command{
	Use:   "store-config",
	Short: "Store the configuration file in 1Password",
	Long: `The store-config command reads the configuration file and stores its raw
text as a Secure Note in 1Password, using the op CLI.

If an item with the given vault and title already exists it is updated,
otherwise a new item is created. The command prints the secret reference
(op://{vault}/{title}/config) on success.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runStoreConfig()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the store-config command with the root command and sets up
// flags.
func init() {
	rootCmd.AddCommand(storeConfigCmd)

	storeConfigCmd.Flags().StringVar(&storeVault, "vault", "", "1Password vault name (required)")
	storeConfigCmd.Flags().StringVar(&storeTitle, "title", "invoice-config", "Item title in 1Password")
	storeConfigCmd.Flags().StringVar(&storeAccount, "account", "", "1Password account (e.g. 'my.1password.com')")

	storeConfigCmd.MarkFlagRequired("vault")
}

// =============================================================================
// MAIN STORE FUNCTION
// =============================================================================

// runStoreConfig reads the config file and pushes it to the secret store.
func runStoreConfig() error {
	content, err := os.ReadFile(cfgFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file not found: %s", cfgFile)
		}
		return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	logger.Debug("storing configuration",
		zap.String("vault", storeVault),
		zap.String("title", storeTitle),
	)

	client := secretstore.NewClient()
	ref, updated, err := client.StoreConfig(string(content), storeVault, storeTitle, storeAccount)
	if err != nil {
		return err
	}

	if updated {
		fmt.Printf("Config updated in 1Password: %s\n", ref)
	} else {
		fmt.Printf("Config stored in 1Password: %s\n", ref)
	}

	accountHint := ""
	if storeAccount != "" {
		accountHint = fmt.Sprintf(" --account %q", storeAccount)
	}
	fmt.Printf("\nRetrieve with: op read %q%s\n", ref, accountHint)
	return nil
}
