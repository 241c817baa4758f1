// Package splitreceipt renders audit documentation for a receipt that was
// administratively split into two expense entries with different tax
// treatment. It produces a single fixed-layout US-Letter PDF from
// already-computed receipt data; deciding the split itself happens upstream.
package splitreceipt

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// Display defaults for optional fields.
const (
	unknownVendor   = "Unknown"
	unspecifiedDate = "Not specified"
	defaultCategory = "Other Expenses"
)

// ReceiptRecord is one receipt as stored by the upstream system, either the
// original or the split-off entry. All monetary amounts are integer cents.
type ReceiptRecord struct {
	ID          string
	Vendor      string
	ReceiptDate string
	TotalCents  int64
	PurposeText string

	// SuggestedCategory is only set on the split-off receipt. Empty means
	// "Other Expenses".
	SuggestedCategory string
}

func (r ReceiptRecord) displayVendor() string {
	if r.Vendor == "" {
		return unknownVendor
	}
	return r.Vendor
}

func (r ReceiptRecord) displayDate() string {
	if r.ReceiptDate == "" {
		return unspecifiedDate
	}
	return r.ReceiptDate
}

func (r ReceiptRecord) displayCategory() string {
	if r.SuggestedCategory == "" {
		return defaultCategory
	}
	return r.SuggestedCategory
}

// LineItem is one purchased item belonging to exactly one receipt. Item lists
// are supplied separately from the receipt record; whether they sum to the
// receipt total is the caller's contract and is not checked here.
type LineItem struct {
	Description    string
	Quantity       int // zero means the default quantity of 1
	UnitPriceCents int64
	TotalCents     int64
}

func (it LineItem) displayQuantity() int {
	if it.Quantity == 0 {
		return 1
	}
	return it.Quantity
}
