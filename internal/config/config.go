// =============================================================================
// Invoice CLI - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. The configuration lives in a single TOML file with four
// sections:
//
//   [sender]  - Who the invoice is from (name, address, contact info)
//   [client]  - Who the invoice is billed to
//   [bank]    - Payment details printed on the invoice
//   [invoice] - Invoice defaults (number prefix, filename prefix, default
//               description and hourly rate for single-item invoices)
//
// ARCHITECTURE:
//   The configuration is loaded once per invocation and passed explicitly to
//   the components that need it. It is never mutated after loading.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the full application configuration.
// This is loaded from the config.toml file.
type Config struct {
	// Sender identifies the party issuing the invoice.
	Sender Sender `toml:"sender"`

	// Client identifies the party being billed.
	Client Client `toml:"client"`

	// Bank holds the payment details printed on the invoice.
	Bank Bank `toml:"bank"`

	// Invoice holds invoice generation defaults.
	Invoice Invoice `toml:"invoice"`
}

// Sender identifies the party issuing the invoice.
type Sender struct {
	// Name is the sender's full name. Also used in the "checks payable to"
	// note and the page footer.
	Name string `toml:"name"`

	// Address1 is the first address line (street).
	Address1 string `toml:"address_1"`

	// Address2 is the second address line (city, state, ZIP).
	Address2 string `toml:"address_2"`

	// Email is the sender's contact email address.
	Email string `toml:"email"`

	// Phone is the sender's contact phone number.
	Phone string `toml:"phone"`
}

// Client identifies the party being billed.
type Client struct {
	// Name is the client contact's name.
	Name string `toml:"name"`

	// Company is the client's company name.
	Company string `toml:"company"`

	// Address1 is the first address line (street).
	Address1 string `toml:"address_1"`

	// Address2 is the second address line (city, state, ZIP).
	Address2 string `toml:"address_2"`
}

// Bank holds the payment details printed on the invoice.
type Bank struct {
	// Account is the bank account number.
	Account string `toml:"account"`

	// ACHRouting is the routing number for ACH transfers.
	ACHRouting string `toml:"ach_routing"`

	// WireRouting is the routing number for wire transfers.
	WireRouting string `toml:"wire_routing"`
}

// Invoice holds invoice generation defaults.
type Invoice struct {
	// NumberPrefix is prepended to the ISO invoice date to form the invoice
	// number. Example: "INV-" with date 2025-01-15 yields "INV-2025-01-15".
	// Default: "INV-"
	NumberPrefix string `toml:"number_prefix"`

	// FilenamePrefix is used when deriving the output file name:
	// {filename_prefix}_{YYYYMMDD}.pdf
	// Default: "invoice"
	FilenamePrefix string `toml:"filename_prefix"`

	// DefaultDescription is the line-item description used when --description
	// is not supplied on the command line.
	DefaultDescription string `toml:"default_description"`

	// DefaultRate is the hourly rate used when --rate is not supplied on the
	// command line. Stored as a string so the value survives as an exact
	// decimal rather than a binary float.
	DefaultRate string `toml:"default_rate"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration from a TOML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read or parsed. A missing file is
//     reported with the underlying os.ErrNotExist preserved so callers can
//     distinguish "not found" from "malformed".
func Load(configPath string) (*Config, error) {
	// Read the configuration file.
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// Parse the TOML.
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	// Apply default values.
	applyDefaults(&cfg)

	// Validate the configuration.
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Invoice.NumberPrefix == "" {
		cfg.Invoice.NumberPrefix = "INV-"
	}
	if cfg.Invoice.FilenamePrefix == "" {
		cfg.Invoice.FilenamePrefix = "invoice"
	}
}

// Validate checks that the configuration carries everything the invoice
// layout needs. It reports all missing fields at once rather than one at a
// time.
func Validate(cfg *Config) error {
	var missing []string

	required := map[string]string{
		"sender.name":       cfg.Sender.Name,
		"sender.address_1":  cfg.Sender.Address1,
		"sender.address_2":  cfg.Sender.Address2,
		"sender.email":      cfg.Sender.Email,
		"sender.phone":      cfg.Sender.Phone,
		"client.name":       cfg.Client.Name,
		"client.company":    cfg.Client.Company,
		"client.address_1":  cfg.Client.Address1,
		"client.address_2":  cfg.Client.Address2,
		"bank.account":      cfg.Bank.Account,
		"bank.ach_routing":  cfg.Bank.ACHRouting,
		"bank.wire_routing": cfg.Bank.WireRouting,
	}

	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		// Map iteration order is random; sort for a stable message.
		sort.Strings(missing)
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	return nil
}
