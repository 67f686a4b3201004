// =============================================================================
// Invoice CLI - Invoice Types and Computation
// =============================================================================
//
// This package contains the invoice data model shared across the command
// layer, the tabular parsers, and the PDF writer. It owns the arithmetic:
// all money math is done with exact decimal values so that repeated
// fractional hours never accumulate binary floating-point error in the
// printed total.
//
// =============================================================================

package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// INVOICE TYPES
// =============================================================================

// LineItem represents a single billable entry on the invoice.
type LineItem struct {
	// Hours is the number of hours worked.
	Hours decimal.Decimal

	// Description is the human-readable description of the work.
	Description string

	// Rate is the hourly rate in dollars.
	Rate decimal.Decimal
}

// Amount returns hours multiplied by rate for this line item.
func (li LineItem) Amount() decimal.Decimal {
	return li.Hours.Mul(li.Rate)
}

// Invoice represents a complete invoice ready for layout.
// The invoice number and total are derived from the date and line items and
// are never set independently.
type Invoice struct {
	// Date is the invoice date.
	Date time.Time

	// Number is the invoice number, derived as number_prefix + ISO date.
	Number string

	// Items contains the line items in the order they were supplied.
	Items []LineItem
}

// New builds an Invoice from a date, a number prefix, and line items.
func New(date time.Time, numberPrefix string, items []LineItem) Invoice {
	return Invoice{
		Date:   date,
		Number: numberPrefix + date.Format("2006-01-02"),
		Items:  items,
	}
}

// Total returns the exact decimal sum of hours x rate across all line items.
// Zero line items yield a total of 0.
func (inv Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range inv.Items {
		total = total.Add(item.Amount())
	}
	return total
}

// =============================================================================
// CURRENCY FORMATTING
// =============================================================================

// FormatCurrency renders a decimal amount as a dollar string with a thousands
// separator and exactly two fractional digits.
//
// Examples:
//   1000      -> "$1,000.00"
//   0         -> "$0.00"
//   -1234.5   -> "$-1,234.50"
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")

	// Insert a comma before every group of three digits, right to left.
	var groups []string
	for len(whole) > 3 {
		groups = append([]string{whole[len(whole)-3:]}, groups...)
		whole = whole[:len(whole)-3]
	}
	groups = append([]string{whole}, groups...)

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("$%s%s.%s", sign, strings.Join(groups, ","), frac)
}

// FormatHours renders an hours value for the table, one fractional digit.
// Zero hours render as an empty cell, matching the printed invoice layout.
func FormatHours(hours decimal.Decimal) string {
	if hours.IsZero() {
		return ""
	}
	return hours.StringFixed(1)
}

// FormatRate renders a rate value for the table ("$100.00", no thousands
// separator).
func FormatRate(rate decimal.Decimal) string {
	return "$" + rate.StringFixed(2)
}
