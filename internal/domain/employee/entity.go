package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee - Roster entry. DailyRate is the wage per attendance-day and the
// default rate for payroll when an attendance entry carries no override.
type Employee struct {
	ID        string
	CompanyID string
	Code      string
	Name      string
	DailyRate decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
