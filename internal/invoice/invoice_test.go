package invoice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestTotalIsExactDecimal(t *testing.T) {
	t.Parallel()

	// 0.1 hours three times at rate 3 must total exactly 0.30, the classic
	// binary-float failure case (0.30000000000000004).
	item := LineItem{
		Hours:       decimal.RequireFromString("0.1"),
		Description: "fractional",
		Rate:        decimal.RequireFromString("3"),
	}
	inv := New(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "INV-", []LineItem{item, item, item})

	require.True(t, inv.Total().Equal(decimal.RequireFromString("0.3")),
		"total was %s", inv.Total())
	require.Equal(t, "$0.30", FormatCurrency(inv.Total()))
}

func TestTotalZeroItems(t *testing.T) {
	t.Parallel()

	inv := New(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "INV-", nil)
	require.Equal(t, "$0.00", FormatCurrency(inv.Total()))
}

func TestInvoiceNumberDerivation(t *testing.T) {
	t.Parallel()

	inv := New(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "INV-", nil)
	require.Equal(t, "INV-2025-01-15", inv.Number)
}

func TestSingleItemExample(t *testing.T) {
	t.Parallel()

	// 10 hours at $100/h: one row "10.0 | ... | $100.00 | $1,000.00".
	item := LineItem{
		Hours:       decimal.RequireFromString("10"),
		Description: "Consulting Services",
		Rate:        decimal.RequireFromString("100"),
	}
	inv := New(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "INV-", []LineItem{item})

	require.Equal(t, "10.0", FormatHours(item.Hours))
	require.Equal(t, "$100.00", FormatRate(item.Rate))
	require.Equal(t, "$1,000.00", FormatCurrency(item.Amount()))
	require.Equal(t, "$1,000.00", FormatCurrency(inv.Total()))
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"999.99", "$999.99"},
		{"1000", "$1,000.00"},
		{"12345.6", "$12,345.60"},
		{"1234567.89", "$1,234,567.89"},
		{"-1234.5", "$-1,234.50"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := FormatCurrency(decimal.RequireFromString(tc.in))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFormatHours(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", FormatHours(decimal.Zero), "zero hours render as a blank cell")
	require.Equal(t, "10.0", FormatHours(decimal.RequireFromString("10")))
	require.Equal(t, "2.5", FormatHours(decimal.RequireFromString("2.5")))
}
