package splitreceipt

import (
	"encoding/json"
	"fmt"
	"os"
)

// ---------------------------------------------------------------------------
// Request Decoding
// ---------------------------------------------------------------------------

// The upstream system hands receipt data over as snake_case JSON. Monetary
// fields are decoded through pointers so a missing field is distinguishable
// from an explicit zero and can be rejected with a descriptive error instead
// of silently rendering a wrong amount.

type receiptWire struct {
	ID                string `json:"id"`
	Vendor            string `json:"vendor"`
	ReceiptDate       string `json:"receipt_date"`
	TotalCents        *int64 `json:"total_cents"`
	PurposeText       string `json:"purpose_text"`
	SuggestedCategory string `json:"suggested_category"`
}

type itemWire struct {
	Description    string `json:"description"`
	Quantity       *int   `json:"quantity"`
	UnitPriceCents *int64 `json:"unit_price_cents"`
	TotalCents     *int64 `json:"total_cents"`
}

type requestWire struct {
	OriginalReceipt *receiptWire `json:"original_receipt"`
	NewReceipt      *receiptWire `json:"new_receipt"`
	OriginalItems   []itemWire   `json:"original_items"`
	NewItems        []itemWire   `json:"new_items"`
}

// Request is a fully validated generation request.
type Request struct {
	Original      ReceiptRecord
	Split         ReceiptRecord
	OriginalItems []LineItem
	SplitItems    []LineItem
}

// LoadRequest reads and validates a JSON request file.
func LoadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	req, err := DecodeRequest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

// DecodeRequest parses and validates a JSON request. Required fields must be
// present; optional fields (quantity, suggested_category) fall back to their
// documented defaults. Whether item totals reconcile with the receipt totals
// is not checked.
func DecodeRequest(data []byte) (*Request, error) {
	var w requestWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	original, err := convertReceipt("original_receipt", w.OriginalReceipt)
	if err != nil {
		return nil, err
	}
	split, err := convertReceipt("new_receipt", w.NewReceipt)
	if err != nil {
		return nil, err
	}
	originalItems, err := convertItems("original_items", w.OriginalItems)
	if err != nil {
		return nil, err
	}
	splitItems, err := convertItems("new_items", w.NewItems)
	if err != nil {
		return nil, err
	}

	return &Request{
		Original:      original,
		Split:         split,
		OriginalItems: originalItems,
		SplitItems:    splitItems,
	}, nil
}

func convertReceipt(name string, w *receiptWire) (ReceiptRecord, error) {
	if w == nil {
		return ReceiptRecord{}, fmt.Errorf("%s: record is missing", name)
	}
	if w.TotalCents == nil {
		return ReceiptRecord{}, fmt.Errorf("%s: missing required field total_cents", name)
	}

	return ReceiptRecord{
		ID:                w.ID,
		Vendor:            w.Vendor,
		ReceiptDate:       w.ReceiptDate,
		TotalCents:        *w.TotalCents,
		PurposeText:       w.PurposeText,
		SuggestedCategory: w.SuggestedCategory,
	}, nil
}

func convertItems(name string, ws []itemWire) ([]LineItem, error) {
	items := make([]LineItem, 0, len(ws))
	for i, w := range ws {
		if w.UnitPriceCents == nil {
			return nil, fmt.Errorf("%s[%d] (%q): missing required field unit_price_cents", name, i, w.Description)
		}
		if w.TotalCents == nil {
			return nil, fmt.Errorf("%s[%d] (%q): missing required field total_cents", name, i, w.Description)
		}

		item := LineItem{
			Description:    w.Description,
			UnitPriceCents: *w.UnitPriceCents,
			TotalCents:     *w.TotalCents,
		}
		if w.Quantity != nil {
			item.Quantity = *w.Quantity
		}
		items = append(items, item)
	}
	return items, nil
}
