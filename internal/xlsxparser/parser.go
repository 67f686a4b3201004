// =============================================================================
// Invoice CLI - XLSX Line-Item Parser
// =============================================================================
//
// This module parses XLSX line-item files. The contract matches the CSV
// parser: the first sheet carries a header row with hours, description, and
// rate columns (case-insensitive, any order) followed by one data row per
// line item. Only the first sheet is read.
//
// =============================================================================

package xlsxparser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/KevinFink/simple-invoice-creator/internal/invoice"
)

// Parse reads an XLSX file and returns its line items in sheet order.
//
// PARAMETERS:
//   - filePath: The path to the XLSX file.
//
// RETURNS:
//   - The parsed line items.
//   - An error if the file cannot be opened, the header is missing a
//     required column, or any row carries a malformed value.
func Parse(filePath string) ([]invoice.LineItem, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	if len(rows) == 0 {
		return nil, errors.New("sheet is empty")
	}

	columns, err := mapHeader(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	items := make([]invoice.LineItem, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}

		rowNum := i + 1

		hours, err := cellDecimal(row, columns["hours"])
		if err != nil {
			return nil, &invoice.ParseError{File: filePath, Row: rowNum, Field: "hours", Err: err}
		}

		rate, err := cellDecimal(row, columns["rate"])
		if err != nil {
			return nil, &invoice.ParseError{File: filePath, Row: rowNum, Field: "rate", Err: err}
		}

		items = append(items, invoice.LineItem{
			Hours:       hours,
			Description: cell(row, columns["description"]),
			Rate:        rate,
		})
	}

	return items, nil
}

// mapHeader maps each required column name to its position in the header row.
func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int)
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{"hours", "description", "rate"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	return columns, nil
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

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

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
