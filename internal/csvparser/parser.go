// =============================================================================
// Invoice CLI - CSV Line-Item Parser
// =============================================================================
//
// This module parses CSV line-item files. The expected format is a header
// row naming the columns followed by one data row per line item:
//
//   hours,description,rate
//   10,Consulting Services,150
//   2.5,Code review,175
//
// Header matching is case-insensitive and columns may appear in any order.
// Hours and rate are parsed as exact decimals; a missing or non-numeric
// value fails with an error identifying the file, row, and field.
//
// =============================================================================

package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KevinFink/simple-invoice-creator/internal/invoice"
)

// Required header columns.
const (
	columnHours       = "hours"
	columnDescription = "description"
	columnRate        = "rate"
)

// Parse reads a CSV file and returns its line items in file order.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//
// RETURNS:
//   - The parsed line items.
//   - An error if the file cannot be read, the header is missing a required
//     column, or any row carries a malformed value.
func Parse(filePath string) ([]invoice.LineItem, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Allow variable field counts so short rows are reported per-field
	// rather than rejected wholesale by the reader.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, errors.New("CSV file is empty")
	}

	columns, err := mapHeader(allRows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	return parseRows(filePath, allRows[1:], columns)
}

// mapHeader maps each required column name to its position in the header row.
func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int)
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{columnHours, columnDescription, columnRate} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	return columns, nil
}

// parseRows converts data rows into line items. Row numbers in errors are
// 1-indexed over data rows, matching what a user sees below the header.
func parseRows(filePath string, rows [][]string, columns map[string]int) ([]invoice.LineItem, error) {
	items := make([]invoice.LineItem, 0, len(rows))

	for i, row := range rows {
		// Skip entirely blank rows.
		if isRowEmpty(row) {
			continue
		}

		rowNum := i + 1

		hours, err := cellDecimal(row, columns[columnHours])
		if err != nil {
			return nil, &invoice.ParseError{File: filePath, Row: rowNum, Field: columnHours, Err: err}
		}

		rate, err := cellDecimal(row, columns[columnRate])
		if err != nil {
			return nil, &invoice.ParseError{File: filePath, Row: rowNum, Field: columnRate, Err: err}
		}

		items = append(items, invoice.LineItem{
			Hours:       hours,
			Description: cell(row, columns[columnDescription]),
			Rate:        rate,
		})
	}

	return items, nil
}

// cell returns the trimmed value at the given column, empty when the row is
// too short.
func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// cellDecimal parses the value at the given column as an exact decimal.
func cellDecimal(row []string, index int) (decimal.Decimal, error) {
	value := cell(row, index)
	if value == "" {
		return decimal.Decimal{}, errors.New("value is missing")
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%q is not a number", value)
	}
	return d, nil
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
