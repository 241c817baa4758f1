package splitreceipt

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipts() (ReceiptRecord, ReceiptRecord) {
	original := ReceiptRecord{
		ID:          uuid.NewString(),
		Vendor:      "Staples",
		ReceiptDate: "2026-08-26",
		TotalCents:  1050,
		PurposeText: "Office restock",
	}
	split := ReceiptRecord{
		ID:                uuid.NewString(),
		Vendor:            "Staples",
		ReceiptDate:       "2026-08-26",
		TotalCents:        2575,
		PurposeText:       "Client lunch",
		SuggestedCategory: "Meals & Entertainment",
	}
	return original, split
}

func sampleItems() ([]LineItem, []LineItem) {
	originalItems := []LineItem{
		{Description: "Printer paper", Quantity: 2, UnitPriceCents: 525, TotalCents: 1050},
	}
	splitItems := []LineItem{
		{Description: "Lunch", UnitPriceCents: 2575, TotalCents: 2575},
	}
	return originalItems, splitItems
}

// extractText pulls the plain text out of a generated PDF so tests can
// assert on document content.
func extractText(t *testing.T, path string) string {
	t.Helper()

	f, r, err := pdf.Open(path)
	require.NoError(t, err)
	defer f.Close()

	reader, err := r.GetPlainText()
	require.NoError(t, err)

	text, err := io.ReadAll(reader)
	require.NoError(t, err)
	return string(text)
}

func TestGenerateWritesFile(t *testing.T) {
	original, split := sampleReceipts()
	originalItems, splitItems := sampleItems()
	out := filepath.Join(t.TempDir(), "split.pdf")

	path, err := Generate(original, split, originalItems, splitItems, out)
	require.NoError(t, err)
	assert.Equal(t, out, path, "Generate should echo the output path")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "output does not start with PDF magic bytes")
}

func TestGenerateContent(t *testing.T) {
	original, split := sampleReceipts()
	originalItems, splitItems := sampleItems()
	out := filepath.Join(t.TempDir(), "split.pdf")

	_, err := Generate(original, split, originalItems, splitItems, out)
	require.NoError(t, err)

	text := extractText(t, out)

	checks := []string{
		"SPLIT RECEIPT DOCUMENTATION",
		"ORIGINAL RECEIPT",
		"SPLIT INTO TWO RECEIPTS",
		"SUMMARY",
		"Staples",
		"2026-08-26",
		"Receipt A: Office Supplies (100% Deductible)",
		"Receipt B: Meals & Entertainment (50% Deductible)",
		"Receipt A Total: $10.50 CAD",
		"Receipt B Total: $25.75 CAD",
		"$36.25", // grand total in exact integer cents
		"Printer paper",
		"Lunch",
		"Tax Treatment: 100% deductible business expense",
		"Tax Treatment: 50% deductible (Meals & Entertainment)",
	}
	for _, want := range checks {
		assert.Contains(t, text, want)
	}

	// Both truncation lengths of the same ID appear in one document: 8 in
	// the info section, 16 in the footer.
	assert.Contains(t, text, truncateID(original.ID, 8))
	assert.Contains(t, text, truncateID(original.ID, 16))
	assert.Contains(t, text, truncateID(split.ID, 16))
}

func TestGenerateMissingOptionalFields(t *testing.T) {
	original := ReceiptRecord{ID: "", TotalCents: 0}
	split := ReceiptRecord{ID: "", TotalCents: 0}
	out := filepath.Join(t.TempDir(), "split.pdf")

	_, err := Generate(original, split, nil, nil, out)
	require.NoError(t, err)

	text := extractText(t, out)
	assert.Contains(t, text, "Unknown")
	assert.Contains(t, text, "Not specified")
	assert.Contains(t, text, "Other Expenses (100% Deductible)")
	assert.Contains(t, text, "...", "empty ID truncates to a bare ellipsis")
}

func TestGenerateEmptyItemLists(t *testing.T) {
	original, split := sampleReceipts()
	out := filepath.Join(t.TempDir(), "split.pdf")

	_, err := Generate(original, split, nil, nil, out)
	require.NoError(t, err)

	text := extractText(t, out)
	// No item tables, but totals still come from the receipt records.
	assert.NotContains(t, text, "Unit Price")
	assert.Contains(t, text, "Receipt A Total: $10.50 CAD")
	assert.Contains(t, text, "Receipt B Total: $25.75 CAD")
	assert.Contains(t, text, "$36.25")
}

func TestGenerateDateAuditNote(t *testing.T) {
	original, split := sampleReceipts()
	original.ReceiptDate = "2026-08-29" // Saturday
	out := filepath.Join(t.TempDir(), "split.pdf")

	_, err := Generate(original, split, nil, nil, out)
	require.NoError(t, err)
	assert.Contains(t, extractText(t, out), "non-business day")
}

func TestGenerateOverwrites(t *testing.T) {
	original, split := sampleReceipts()
	originalItems, splitItems := sampleItems()
	out := filepath.Join(t.TempDir(), "split.pdf")

	_, err := Generate(original, split, originalItems, splitItems, out)
	require.NoError(t, err)

	// Same inputs, same path: the file is simply overwritten and all stable
	// content is still present. Only the embedded timestamp may differ.
	_, err = Generate(original, split, originalItems, splitItems, out)
	require.NoError(t, err)

	text := extractText(t, out)
	assert.Contains(t, text, "SPLIT RECEIPT DOCUMENTATION")
	assert.Contains(t, text, "$36.25")
}

func TestGenerateBadOutputPath(t *testing.T) {
	original, split := sampleReceipts()
	out := filepath.Join(t.TempDir(), "missing", "dir", "split.pdf")

	_, err := Generate(original, split, nil, nil, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write PDF")
}

func TestGenerateDeductibilityLabels(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{"meal category", "Meals & Entertainment", "(50% Deductible)"},
		{"lowercase does not match", "meals", "Receipt B: meals (100% Deductible)"},
		{"office supplies", "Office Supplies", "(100% Deductible)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original, split := sampleReceipts()
			split.SuggestedCategory = tt.category
			out := filepath.Join(t.TempDir(), "split.pdf")

			_, err := Generate(original, split, nil, nil, out)
			require.NoError(t, err)
			assert.Contains(t, extractText(t, out), tt.want)
		})
	}
}
