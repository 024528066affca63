package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

// ImportRow is one loosely-typed row from an upstream sheet extraction:
// every field may be absent or malformed. Validation happens here at the
// boundary - a missing rate is a rejected row, never a zero-pay record.
type ImportRow struct {
	EmployeeCode   *string `json:"employee_code"`
	EmployeeName   *string `json:"employee_name"`
	DailyRate      *string `json:"daily_rate"`
	AttendanceDays *string `json:"attendance_days"`
}

type ImportRequest struct {
	PeriodMonth int         `json:"period_month"`
	PeriodYear  int         `json:"period_year"`
	Rows        []ImportRow `json:"rows"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2020 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2020 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RowError identifies a rejected row by position and the uploaded code when
// one was present, so a failure can be traced back to its sheet line.
type RowError struct {
	RowIndex     int    `json:"row_index"`
	EmployeeCode string `json:"employee_code,omitempty"`
	Reason       string `json:"reason"`
}

type ImportResponse struct {
	Imported  int        `json:"imported"`
	Rejected  int        `json:"rejected"`
	RowErrors []RowError `json:"row_errors,omitempty"`
}

type EntryResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName string           `json:"employee_name"`
	EmployeeCode string           `json:"employee_code"`
	PeriodMonth  int              `json:"period_month"`
	PeriodYear   int              `json:"period_year"`
	Days         decimal.Decimal  `json:"days"`
	DailyRate    *decimal.Decimal `json:"daily_rate,omitempty"`
}
