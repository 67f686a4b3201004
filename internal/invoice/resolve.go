// =============================================================================
// Invoice CLI - Line-Item Resolution
// =============================================================================
//
// This file turns command-line input into an ordered list of line items.
// Exactly one of two sources must be selected:
//
//   1. A tabular file (--csv): every row supplies hours, description, rate.
//   2. A single item (--hours): rate and description fall back to the
//      configuration defaults when the flags are omitted.
//
// Supplying both sources, or neither, is a UsageError.
//
// =============================================================================

package invoice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Options carries the raw line-item flags from the command line.
// Flag values are kept as strings so decimal values are parsed exactly,
// never routed through a float64.
type Options struct {
	// TablePath is the --csv flag value (a .csv or .xlsx file path).
	TablePath string

	// Hours is the --hours flag value, empty when the flag was not given.
	Hours string

	// Rate is the --rate flag value, empty when the flag was not given.
	Rate string

	// Description is the --description flag value.
	Description string
}

// Defaults carries the single-item fallbacks from the [invoice] section of
// the configuration.
type Defaults struct {
	// Description is used when --description is omitted.
	Description string

	// Rate is used when --rate is omitted.
	Rate string
}

// TableParser parses a tabular file into line items. The generate command
// supplies one that dispatches on the file extension.
type TableParser func(path string) ([]LineItem, error)

// Resolve produces the ordered line-item list for an invocation.
//
// RETURNS:
//   - The line items, in file order for a tabular source or a single item
//     for the flag source.
//   - A UsageError when no source (or both sources) was selected or a flag
//     value does not parse; whatever the parser returned for a tabular
//     source; nil otherwise.
func Resolve(opts Options, defaults Defaults, parse TableParser) ([]LineItem, error) {
	switch {
	case opts.TablePath != "" && opts.Hours != "":
		return nil, usageErrorf("supply either --hours or --csv, not both")

	case opts.TablePath != "":
		return parse(opts.TablePath)

	case opts.Hours != "":
		item, err := resolveSingle(opts, defaults)
		if err != nil {
			return nil, err
		}
		return []LineItem{item}, nil

	default:
		return nil, usageErrorf("must provide either --hours or --csv")
	}
}

// resolveSingle builds the one line item for the --hours source, applying
// configuration defaults for rate and description.
func resolveSingle(opts Options, defaults Defaults) (LineItem, error) {
	hours, err := decimal.NewFromString(opts.Hours)
	if err != nil {
		return LineItem{}, usageErrorf("invalid --hours value %q: not a number", opts.Hours)
	}

	rateStr := opts.Rate
	if rateStr == "" {
		rateStr = defaults.Rate
	}
	if rateStr == "" {
		return LineItem{}, usageErrorf("no rate supplied: set --rate or default_rate in the config")
	}
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return LineItem{}, usageErrorf("invalid rate value %q: not a number", rateStr)
	}

	description := opts.Description
	if description == "" {
		description = defaults.Description
	}

	return LineItem{
		Hours:       hours,
		Description: description,
		Rate:        rate,
	}, nil
}

// ParseDate parses the --date flag (YYYY-MM-DD).
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, &ParseError{
			Field: "--date",
			Err:   fmt.Errorf("%q is not in YYYY-MM-DD format", value),
		}
	}
	return date, nil
}
