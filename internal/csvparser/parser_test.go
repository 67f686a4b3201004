package csvparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/KevinFink/simple-invoice-creator/internal/invoice"
)

// writeCSV writes content to a temp file and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseHappyPath(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "hours,description,rate\n10,Consulting Services,150\n2.5,Code review,175\n")

	items, err := Parse(path)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.True(t, items[0].Hours.Equal(decimal.RequireFromString("10")))
	require.Equal(t, "Consulting Services", items[0].Description)
	require.True(t, items[0].Rate.Equal(decimal.RequireFromString("150")))

	require.True(t, items[1].Hours.Equal(decimal.RequireFromString("2.5")))
	require.Equal(t, "Code review", items[1].Description)
	require.True(t, items[1].Rate.Equal(decimal.RequireFromString("175")))
}

func TestParseHeaderIsFlexible(t *testing.T) {
	t.Parallel()

	// Different case and column order than the canonical header.
	path := writeCSV(t, "Rate, Description ,HOURS\n150,Consulting,10\n")

	items, err := Parse(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.True(t, items[0].Hours.Equal(decimal.RequireFromString("10")))
	require.Equal(t, "Consulting", items[0].Description)
	require.True(t, items[0].Rate.Equal(decimal.RequireFromString("150")))
}

func TestParseMissingColumn(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "hours,description\n10,Consulting\n")

	_, err := Parse(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), `missing required column "rate"`)
}

func TestParseBadRowIdentifiesRowAndField(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		content   string
		wantRow   int
		wantField string
	}{
		{
			name:      "non-numeric hours",
			content:   "hours,description,rate\n10,ok,150\nten,bad,150\n",
			wantRow:   2,
			wantField: "hours",
		},
		{
			name:      "non-numeric rate",
			content:   "hours,description,rate\n10,bad,lots\n",
			wantRow:   1,
			wantField: "rate",
		},
		{
			name:      "missing rate cell",
			content:   "hours,description,rate\n10,short row\n",
			wantRow:   1,
			wantField: "rate",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(writeCSV(t, tc.content))
			var parseErr *invoice.ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, tc.wantRow, parseErr.Row)
			require.Equal(t, tc.wantField, parseErr.Field)
		})
	}
}

func TestParseSkipsBlankRows(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "hours,description,rate\n10,Consulting,150\n,,\n2,More,150\n")

	items, err := Parse(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestParseEmptyFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(writeCSV(t, ""))
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty")
}

func TestParseMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLargerTableKeepsAllRows(t *testing.T) {
	t.Parallel()

	content := "hours,description,rate\n"
	for i := 0; i < 10; i++ {
		content += "1,row,100\n"
	}

	items, err := Parse(writeCSV(t, content))
	require.NoError(t, err)
	require.Len(t, items, 10)
}
