package splitreceipt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

// ---------------------------------------------------------------------------
// PDF Generation
// ---------------------------------------------------------------------------

const (
	fontFamily = "Helvetica"

	// US Letter with 0.75 inch margins, all units in points.
	pageMargin = 54
	lineHeight = 14
)

// inches converts inches to points.
func inches(v float64) float64 {
	return v * 72
}

type rgb struct{ r, g, b int }

// Palette of the upstream report template.
var (
	colorTitle     = rgb{31, 41, 55}
	colorHeading   = rgb{55, 65, 81}
	colorBody      = rgb{75, 85, 99}
	colorMuted     = rgb{107, 114, 128}
	colorFooter    = rgb{156, 163, 175}
	colorWhite     = rgb{255, 255, 255}
	colorGrayFill  = rgb{243, 244, 246}
	colorGrayGrid  = rgb{229, 231, 235}
	colorAmberFill = rgb{254, 243, 199}
	colorAmberGrid = rgb{251, 191, 36}
)

// Static boilerplate. Fixed text, not derived from input.
const (
	purposeText = "Purpose: This document certifies that a single receipt was split " +
		"into two separate expense entries for proper tax categorization as " +
		"required by CRA guidelines."

	complianceText = "CRA Compliance: This split was performed to ensure proper " +
		"categorization of expenses according to Canada Revenue Agency (CRA) " +
		"guidelines. Each receipt maintains its connection to the original " +
		"transaction while allowing for accurate tax treatment based on the " +
		"nature of each expense. Both receipts reference the same source " +
		"document for audit purposes."

	generatedByText = "This document was automatically generated by the Receipt Management System."
)

// Generate renders the split documentation PDF at outputPath and returns the
// path it was given. The document layout is fixed; everything variable comes
// from the two receipt records and their item lists. The embedded generation
// timestamp is the wall clock at render time, so repeated runs differ in that
// line.
//
// The only side effect is the file written at outputPath. Filesystem and
// rendering errors are returned as-is, without retries or cleanup.
func Generate(original, split ReceiptRecord, originalItems, splitItems []LineItem, outputPath string) (string, error) {
	d := newDocument()

	d.title("SPLIT RECEIPT DOCUMENTATION")
	d.body("Generated: " + formatGeneratedAt(time.Now()))
	d.spacer(0.3)

	d.centeredBody(purposeText)
	d.spacer(0.2)

	d.heading("ORIGINAL RECEIPT")
	d.infoTable([][2]string{
		{"Vendor:", original.displayVendor()},
		{"Date:", original.displayDate()},
		{"Original Total:", formatCentsCAD(original.TotalCents)},
		{"Receipt ID:", truncateID(original.ID, 8)},
	})
	if note := dateAuditNote(original.ReceiptDate); note != "" {
		d.mutedText(note)
	}
	d.spacer(0.3)

	d.heading("SPLIT INTO TWO RECEIPTS")
	d.spacer(0.15)

	// Receipt A keeps the fixed office-supplies treatment; its label does not
	// come from the receipt record.
	d.boldBody("Receipt A: Office Supplies (100% Deductible)")
	d.spacer(0.1)
	if len(originalItems) > 0 {
		d.itemTable(originalItems, colorGrayFill, colorGrayGrid)
	}
	d.spacer(0.1)
	// The receipt's stored total is authoritative, not the sum of its items.
	d.boldBody("Receipt A Total: " + formatCentsCAD(original.TotalCents))
	d.body("Tax Treatment: 100% deductible business expense")
	d.spacer(0.25)

	category := split.displayCategory()
	deductible := deductibilityPercent(category)

	d.boldBody(fmt.Sprintf("Receipt B: %s (%d%% Deductible)", category, deductible))
	d.spacer(0.1)
	if len(splitItems) > 0 {
		d.itemTable(splitItems, colorAmberFill, colorAmberGrid)
	}
	d.spacer(0.1)
	d.boldBody("Receipt B Total: " + formatCentsCAD(split.TotalCents))
	d.body(fmt.Sprintf("Tax Treatment: %d%% deductible (%s)", deductible, category))
	d.spacer(0.3)

	d.heading("SUMMARY")
	d.summaryTable(original.TotalCents, split.TotalCents, category, deductible)
	d.spacer(0.3)

	d.mutedText(complianceText)
	d.spacer(0.4)

	d.footer(
		generatedByText,
		"Original Receipt ID: "+truncateID(original.ID, 16),
		"New Receipt ID: "+truncateID(split.ID, 16),
	)

	if err := d.pdf.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("failed to write PDF %s: %w", outputPath, err)
	}
	return outputPath, nil
}

// ---------------------------------------------------------------------------
// Layout Primitives
// ---------------------------------------------------------------------------

type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDocument() *document {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	return &document{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (d *document) contentWidth() float64 {
	width, _ := d.pdf.GetPageSize()
	return width - 2*pageMargin
}

func (d *document) setTextColor(c rgb) {
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

// spacer adds vertical whitespace, measured in inches.
func (d *document) spacer(in float64) {
	d.pdf.Ln(inches(in))
}

func (d *document) title(text string) {
	d.pdf.SetFont(fontFamily, "B", 18)
	d.setTextColor(colorTitle)
	d.pdf.CellFormat(d.contentWidth(), 22, d.tr(text), "", 1, "C", false, 0, "")
	d.pdf.Ln(16)
}

func (d *document) heading(text string) {
	d.pdf.Ln(6)
	d.pdf.SetFont(fontFamily, "B", 14)
	d.setTextColor(colorHeading)
	d.pdf.CellFormat(d.contentWidth(), 18, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.Ln(4)
}

func (d *document) body(text string) {
	d.pdf.SetFont(fontFamily, "", 10)
	d.setTextColor(colorBody)
	d.pdf.MultiCell(d.contentWidth(), lineHeight, d.tr(text), "", "L", false)
}

func (d *document) boldBody(text string) {
	d.pdf.SetFont(fontFamily, "B", 10)
	d.setTextColor(colorBody)
	d.pdf.MultiCell(d.contentWidth(), lineHeight, d.tr(text), "", "L", false)
}

func (d *document) centeredBody(text string) {
	d.pdf.SetFont(fontFamily, "", 10)
	d.setTextColor(colorBody)
	d.pdf.MultiCell(d.contentWidth(), lineHeight, d.tr(text), "", "C", false)
}

func (d *document) mutedText(text string) {
	d.pdf.SetFont(fontFamily, "", 9)
	d.setTextColor(colorMuted)
	d.pdf.MultiCell(d.contentWidth(), lineHeight-1, d.tr(text), "", "L", false)
}

func (d *document) footer(lines ...string) {
	d.pdf.SetFont(fontFamily, "", 8)
	d.setTextColor(colorFooter)
	for _, line := range lines {
		d.pdf.CellFormat(d.contentWidth(), 11, d.tr(line), "", 1, "C", false, 0, "")
	}
}

// ---------------------------------------------------------------------------
// Tables
// ---------------------------------------------------------------------------

// infoTable renders a borderless two-column key/value table.
func (d *document) infoTable(rows [][2]string) {
	labelWidth := inches(1.5)
	valueWidth := inches(4.5)

	d.setTextColor(colorTitle)
	for _, row := range rows {
		d.pdf.SetFont(fontFamily, "B", 10)
		d.pdf.CellFormat(labelWidth, 18, d.tr(row[0]), "", 0, "L", false, 0, "")
		d.pdf.SetFont(fontFamily, "", 10)
		d.pdf.CellFormat(valueWidth, 18, d.tr(row[1]), "", 1, "L", false, 0, "")
	}
}

var itemColumns = []struct {
	title string
	width float64
	align string
}{
	{"Description", 216, "L"},
	{"Qty", 54, "R"},
	{"Unit Price", 72, "R"},
	{"Total", 72, "R"},
}

// itemTable renders a four-column line-item table with a shaded header row
// and a full grid in the given colors.
func (d *document) itemTable(items []LineItem, fill, grid rgb) {
	d.pdf.SetDrawColor(grid.r, grid.g, grid.b)
	d.pdf.SetLineWidth(0.5)
	d.pdf.SetFillColor(fill.r, fill.g, fill.b)
	d.pdf.SetTextColor(0, 0, 0)

	d.pdf.SetFont(fontFamily, "B", 9)
	for i, col := range itemColumns {
		d.pdf.CellFormat(col.width, 24, d.tr(col.title), "1", lnAfter(i, len(itemColumns)), col.align, true, 0, "")
	}

	d.pdf.SetFont(fontFamily, "", 9)
	for _, item := range items {
		cells := [4]string{
			item.Description,
			strconv.Itoa(item.displayQuantity()),
			formatCents(item.UnitPriceCents),
			formatCents(item.TotalCents),
		}
		for i, col := range itemColumns {
			d.pdf.CellFormat(col.width, 24, d.tr(cells[i]), "1", lnAfter(i, len(itemColumns)), col.align, false, 0, "")
		}
	}
}

// summaryTable renders the per-receipt totals, categories, and deductibility
// percentages with a dark header row. The grand total is computed in integer
// cents from the two stored receipt totals.
func (d *document) summaryTable(originalCents, splitCents int64, category string, deductible int) {
	widths := [4]float64{144, 108, 108, 108}
	aligns := [4]string{"L", "C", "C", "C"}

	d.pdf.SetDrawColor(colorGrayGrid.r, colorGrayGrid.g, colorGrayGrid.b)
	d.pdf.SetLineWidth(0.5)

	d.pdf.SetFillColor(colorTitle.r, colorTitle.g, colorTitle.b)
	d.setTextColor(colorWhite)
	d.pdf.SetFont(fontFamily, "B", 10)
	header := [4]string{"", "Receipt A", "Receipt B", "Total"}
	for i, cell := range header {
		d.pdf.CellFormat(widths[i], 28, d.tr(cell), "1", lnAfter(i, len(header)), aligns[i], true, 0, "")
	}

	rows := [][4]string{
		{"Subtotal + Tax", formatCents(originalCents), formatCents(splitCents), formatCents(originalCents + splitCents)},
		{"Tax Category", "Office Supplies", category, "—"},
		{"Deductibility", "100%", fmt.Sprintf("%d%%", deductible), "—"},
	}

	d.pdf.SetFont(fontFamily, "", 10)
	d.pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, cell := range row {
			d.pdf.CellFormat(widths[i], 28, d.tr(cell), "1", lnAfter(i, len(row)), aligns[i], false, 0, "")
		}
	}
}

// lnAfter moves the cursor to the next line after the last cell of a row.
func lnAfter(i, n int) int {
	if i == n-1 {
		return 1
	}
	return 0
}
