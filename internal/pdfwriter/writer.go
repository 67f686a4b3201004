// =============================================================================
// Invoice CLI - PDF Writer Module
// =============================================================================
//
// This module lays out the invoice document and writes it to disk. The page
// is US Letter with 0.75in side margins and 0.5in top/bottom margins, and
// the sections appear in a fixed order:
//
//   1. Header: sender block on the left, "INVOICE" title plus the date and
//      invoice number on the right
//   2. "Bill To:" label, a horizontal rule, and the client block
//   3. Line-item table (Hours | Description | Rate | Amount), padded with
//      blank rows up to a minimum height, followed by a boxed total row
//   4. Bank details block, centered
//   5. Payment note and thank-you line
//   6. Footer restating the sender's contact info
//
// There is no decision logic here beyond the padding-row count; everything
// else is fixed formatting.
//
// =============================================================================

package pdfwriter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/KevinFink/simple-invoice-creator/internal/config"
	"github.com/KevinFink/simple-invoice-creator/internal/invoice"
)

// =============================================================================
// LAYOUT CONSTANTS
// =============================================================================

const (
	marginSide   = 0.75 // inches
	marginTopBot = 0.5
	contentWidth = 8.5 - 2*marginSide

	lineHeight  = 0.19 // 10pt text with comfortable leading
	tableRowH   = 0.25
	titleHeight = 0.45

	// Column widths for the line-item table.
	colHours  = 0.8
	colDesc   = 4.0
	colRate   = 1.0
	colAmount = 1.2

	// The table is padded with blank rows so that the header row plus item
	// rows always fill at least this many rows. The total row is extra.
	minTableRows = 8
)

// =============================================================================
// WRITER
// =============================================================================

// Writer assembles invoice PDFs from a loaded configuration.
type Writer struct {
	cfg *config.Config
}

// New creates a Writer for the given configuration.
func New(cfg *config.Config) *Writer {
	return &Writer{cfg: cfg}
}

// Write lays out the invoice and writes it to outputPath.
// An existing file at that path is overwritten.
func (w *Writer) Write(inv invoice.Invoice, outputPath string) error {
	pdf := w.build(inv)
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// Render lays out the invoice and streams the PDF to out.
func (w *Writer) Render(inv invoice.Invoice, out io.Writer) error {
	pdf := w.build(inv)
	if err := pdf.Output(out); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// build assembles the document sections in order.
func (w *Writer) build(inv invoice.Invoice) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "in", "Letter", "")
	pdf.SetMargins(marginSide, marginTopBot, marginSide)
	pdf.SetAutoPageBreak(true, marginTopBot)
	pdf.AddPage()

	w.writeHeader(pdf, inv)
	w.writeBillTo(pdf)
	w.writeItemsTable(pdf, inv)
	w.writeBankDetails(pdf)
	w.writeClosing(pdf)
	w.writeFooter(pdf)

	return pdf
}

// =============================================================================
// SECTIONS
// =============================================================================

// writeHeader renders the sender block on the left and the INVOICE title,
// date, and invoice number on the right.
func (w *Writer) writeHeader(pdf *gofpdf.Fpdf, inv invoice.Invoice) {
	sender := w.cfg.Sender
	topY := pdf.GetY()

	// Sender block, left column.
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	senderBlock := strings.Join([]string{
		sender.Name,
		sender.Address1,
		sender.Address2,
		sender.Email,
		sender.Phone,
	}, "\n")
	pdf.MultiCell(contentWidth/2, lineHeight, senderBlock, "", "L", false)
	leftBottom := pdf.GetY()

	// Title, right column.
	pdf.SetXY(marginSide+contentWidth/2, topY)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(contentWidth/2, titleHeight, "INVOICE", "", 2, "R", false, 0, "")

	// Date and invoice number, right-aligned with bold labels.
	pdf.SetTextColor(0, 0, 0)
	w.writeMetaLine(pdf, "Date:", formatDate(inv.Date))
	w.writeMetaLine(pdf, "Invoice #:", inv.Number)
	rightBottom := pdf.GetY()

	if leftBottom > rightBottom {
		pdf.SetY(leftBottom)
	}
	pdf.Ln(0.3)
}

// writeMetaLine renders a right-aligned "label value" pair with the label in
// bold.
func (w *Writer) writeMetaLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	labelWidth := pdf.GetStringWidth(label + " ")
	pdf.SetFont("Helvetica", "", 10)
	valueWidth := pdf.GetStringWidth(value)

	pdf.SetX(marginSide + contentWidth - labelWidth - valueWidth)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelWidth, lineHeight, label+" ", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(valueWidth, lineHeight, value, "", 1, "L", false, 0, "")
}

// writeBillTo renders the "Bill To:" label, a horizontal rule, and the
// client block.
func (w *Writer) writeBillTo(pdf *gofpdf.Fpdf) {
	client := w.cfg.Client

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentWidth, lineHeight, "Bill To:", "", 1, "L", false, 0, "")

	y := pdf.GetY() + 0.02
	pdf.SetLineWidth(0.01)
	pdf.Line(marginSide, y, marginSide+contentWidth, y)
	pdf.Ln(0.08)

	pdf.SetFont("Helvetica", "", 10)
	clientBlock := strings.Join([]string{
		client.Name,
		client.Company,
		client.Address1,
		client.Address2,
	}, "\n")
	pdf.MultiCell(contentWidth/2, lineHeight, clientBlock, "", "L", false)
	pdf.Ln(0.25)
}

// writeItemsTable renders the line-item table, pads it to the minimum row
// count, and appends the boxed total row.
func (w *Writer) writeItemsTable(pdf *gofpdf.Fpdf, inv invoice.Invoice) {
	// Header row.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colHours, tableRowH, "Hours", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colDesc, tableRowH, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colRate, tableRowH, "Rate", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colAmount, tableRowH, "Amount", "1", 1, "R", false, 0, "")

	// Item rows.
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(colHours, tableRowH, invoice.FormatHours(item.Hours), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colDesc, tableRowH, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colRate, tableRowH, invoice.FormatRate(item.Rate), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colAmount, tableRowH, invoice.FormatCurrency(item.Amount()), "1", 1, "R", false, 0, "")
	}

	// Padding rows.
	for i := 0; i < PaddingRows(len(inv.Items)); i++ {
		pdf.CellFormat(colHours, tableRowH, "", "1", 0, "L", false, 0, "")
		pdf.CellFormat(colDesc, tableRowH, "", "1", 0, "L", false, 0, "")
		pdf.CellFormat(colRate, tableRowH, "", "1", 0, "L", false, 0, "")
		pdf.CellFormat(colAmount, tableRowH, "", "1", 1, "R", false, 0, "")
	}

	// Total row: only the label and amount cells carry a border.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colHours, tableRowH, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(colDesc, tableRowH, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(colRate, tableRowH, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colAmount, tableRowH, invoice.FormatCurrency(inv.Total()), "1", 1, "R", false, 0, "")

	pdf.Ln(0.3)
}

// writeBankDetails renders the centered payment details block.
func (w *Writer) writeBankDetails(pdf *gofpdf.Fpdf) {
	bank := w.cfg.Bank

	pdf.SetFont("Helvetica", "", 10)
	bankBlock := strings.Join([]string{
		"Account Number: " + bank.Account,
		"ACH Routing Number: " + bank.ACHRouting,
		"Wire Routing Number: " + bank.WireRouting,
	}, "\n")
	pdf.MultiCell(contentWidth, lineHeight, bankBlock, "", "C", false)
	pdf.Ln(0.2)
}

// writeClosing renders the payment note and the thank-you line.
func (w *Writer) writeClosing(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(128, 128, 128)
	note := "Make all checks payable to " + w.cfg.Sender.Name
	pdf.CellFormat(contentWidth, lineHeight, note, "", 1, "C", false, 0, "")
	pdf.Ln(0.15)

	pdf.SetFont("Helvetica", "BI", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(contentWidth, lineHeight, "Thank you for your business!", "", 1, "C", false, 0, "")
	pdf.Ln(0.3)
}

// writeFooter renders the contact-info footer line.
func (w *Writer) writeFooter(pdf *gofpdf.Fpdf) {
	sender := w.cfg.Sender

	pdf.SetFont("Helvetica", "", 8)
	footer := fmt.Sprintf("%s %s, %s Phone %s %s",
		sender.Name, sender.Address1, sender.Address2, sender.Phone, sender.Email)
	pdf.CellFormat(contentWidth, lineHeight, footer, "", 1, "C", false, 0, "")
}

// =============================================================================
// NAMING AND PADDING HELPERS
// =============================================================================

// PaddingRows returns how many blank rows are needed so that the header row
// plus itemCount item rows fill at least minTableRows rows. Tables already
// at or past the minimum get no padding and simply grow.
func PaddingRows(itemCount int) int {
	padding := minTableRows - 1 - itemCount
	if padding < 0 {
		return 0
	}
	return padding
}

// OutputName derives the default output file name from the configured
// filename prefix and the invoice date: {prefix}_{YYYYMMDD}.pdf.
func OutputName(filenamePrefix string, date time.Time) string {
	return fmt.Sprintf("%s_%s.pdf", filenamePrefix, date.Format("20060102"))
}

// formatDate renders the invoice date as it appears in the header,
// e.g. "January 2, 2025".
func formatDate(date time.Time) string {
	return date.Format("January 2, 2006")
}
