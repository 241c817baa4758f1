package splitreceipt

import (
	"fmt"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// Formatting Helpers
// ---------------------------------------------------------------------------

// generatedAtLayout formats the render timestamp, e.g.
// "August 29, 2026 at 03:05 PM".
const generatedAtLayout = "January 02, 2006 at 03:04 PM"

// formatCents renders an integer cent amount as a dollar string with exactly
// two decimal places, e.g. 1050 -> "$10.50". The amount stays in integer
// arithmetic the whole way; there is no float conversion to drift.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// formatCentsCAD is formatCents with the currency suffix used on the three
// total lines. Table cells carry the bare dollar amount.
func formatCentsCAD(cents int64) string {
	return formatCents(cents) + " CAD"
}

// truncateID keeps at most n leading characters of an ID and always appends
// an ellipsis, even when the ID is shorter than n. An empty ID yields "...".
func truncateID(id string, n int) string {
	if len(id) > n {
		id = id[:n]
	}
	return id + "..."
}

// formatGeneratedAt renders the document generation timestamp line value.
func formatGeneratedAt(t time.Time) string {
	return t.Format(generatedAtLayout)
}

// ---------------------------------------------------------------------------
// Deductibility Rule
// ---------------------------------------------------------------------------

// isMealCategory reports whether a category is treated as meal-related and
// therefore only 50% deductible. The match is a case-sensitive substring
// check: "Meals & Entertainment" matches, lowercase "meals" does not. This
// mirrors the upstream categorization rule exactly, case sensitivity
// included.
func isMealCategory(category string) bool {
	return strings.Contains(category, "Meal")
}

// deductibilityPercent returns the deductible percentage for a category.
func deductibilityPercent(category string) int {
	if isMealCategory(category) {
		return 50
	}
	return 100
}
