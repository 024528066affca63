package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry - One employee's attendance for one payroll period. Days is
// fractional (23.5 = 23 full days + 1 half day). DailyRate, when set,
// overrides the roster rate for that period; uploads carry per-sheet rates
// that may differ from the roster.
type Entry struct {
	ID          string
	CompanyID   string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int
	Days        decimal.Decimal
	DailyRate   *decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
