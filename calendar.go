package splitreceipt

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/ca"
)

// ---------------------------------------------------------------------------
// Business Calendar
// ---------------------------------------------------------------------------

// receiptDateLayout is the ISO format the upstream system stores receipt
// dates in. Dates in any other format are treated as free text.
const receiptDateLayout = "2006-01-02"

// newBusinessCalendar creates a calendar with Canadian statutory holidays.
func newBusinessCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.Name = "CRA business calendar"
	c.Description = "Canadian federal statutory holidays"
	c.AddHoliday(ca.Holidays...)
	return c
}

// dateAuditNote returns a short warning line when the receipt date falls on
// a weekend or statutory holiday, a common audit flag for expense claims.
// Returns "" for ordinary business days and for dates that are not in ISO
// format.
func dateAuditNote(dateStr string) string {
	date, err := time.Parse(receiptDateLayout, dateStr)
	if err != nil {
		return ""
	}

	if newBusinessCalendar().IsWorkday(date) {
		return ""
	}

	return fmt.Sprintf("Note: receipt is dated %s, a non-business day.",
		date.Format("Monday, January 2, 2006"))
}
