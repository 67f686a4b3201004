package invoice

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// noParse fails the test if the tabular parser is reached.
func noParse(t *testing.T) TableParser {
	return func(path string) ([]LineItem, error) {
		t.Fatalf("table parser should not be called, got path %q", path)
		return nil, nil
	}
}

func TestResolveRequiresExactlyOneSource(t *testing.T) {
	t.Parallel()

	defaults := Defaults{Description: "Consulting", Rate: "100"}

	t.Run("neither source", func(t *testing.T) {
		_, err := Resolve(Options{}, defaults, noParse(t))
		var usageErr *UsageError
		require.ErrorAs(t, err, &usageErr)
		require.Contains(t, usageErr.Msg, "either --hours or --csv")
	})

	t.Run("both sources", func(t *testing.T) {
		opts := Options{TablePath: "items.csv", Hours: "10"}
		_, err := Resolve(opts, defaults, noParse(t))
		var usageErr *UsageError
		require.ErrorAs(t, err, &usageErr)
		require.Contains(t, usageErr.Msg, "not both")
	})
}

func TestResolveTabularSource(t *testing.T) {
	t.Parallel()

	want := []LineItem{
		{Hours: decimal.RequireFromString("1"), Description: "first", Rate: decimal.RequireFromString("10")},
		{Hours: decimal.RequireFromString("2"), Description: "second", Rate: decimal.RequireFromString("20")},
	}

	var gotPath string
	parse := func(path string) ([]LineItem, error) {
		gotPath = path
		return want, nil
	}

	items, err := Resolve(Options{TablePath: "items.csv"}, Defaults{}, parse)
	require.NoError(t, err)
	require.Equal(t, "items.csv", gotPath)
	require.Equal(t, want, items, "file order is preserved")
}

func TestResolveTabularParserErrorPassesThrough(t *testing.T) {
	t.Parallel()

	parseErr := &ParseError{File: "items.csv", Row: 2, Field: "hours", Err: errors.New("bad")}
	parse := func(path string) ([]LineItem, error) { return nil, parseErr }

	_, err := Resolve(Options{TablePath: "items.csv"}, Defaults{}, parse)
	require.ErrorIs(t, err, parseErr)
}

func TestResolveSingleItem(t *testing.T) {
	t.Parallel()

	defaults := Defaults{Description: "Consulting Services", Rate: "150"}

	t.Run("defaults fill rate and description", func(t *testing.T) {
		items, err := Resolve(Options{Hours: "200"}, defaults, noParse(t))
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, "Consulting Services", items[0].Description)
		require.True(t, items[0].Rate.Equal(decimal.RequireFromString("150")))
		require.True(t, items[0].Hours.Equal(decimal.RequireFromString("200")))
	})

	t.Run("flags override defaults", func(t *testing.T) {
		opts := Options{Hours: "10", Rate: "100", Description: "Code review"}
		items, err := Resolve(opts, defaults, noParse(t))
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, "Code review", items[0].Description)
		require.True(t, items[0].Rate.Equal(decimal.RequireFromString("100")))
	})

	t.Run("non-numeric hours", func(t *testing.T) {
		_, err := Resolve(Options{Hours: "ten"}, defaults, noParse(t))
		var usageErr *UsageError
		require.ErrorAs(t, err, &usageErr)
		require.Contains(t, usageErr.Msg, "--hours")
	})

	t.Run("no rate anywhere", func(t *testing.T) {
		_, err := Resolve(Options{Hours: "10"}, Defaults{}, noParse(t))
		var usageErr *UsageError
		require.ErrorAs(t, err, &usageErr)
		require.Contains(t, usageErr.Msg, "rate")
	})
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	date, err := ParseDate("2025-01-15")
	require.NoError(t, err)
	require.Equal(t, 2025, date.Year())
	require.Equal(t, "January", date.Month().String())
	require.Equal(t, 15, date.Day())

	_, err = ParseDate("01/15/2025")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "--date", parseErr.Field)
}
