package employee

import (
	"github.com/shopspring/decimal"

	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

// CreateEmployeeRequest carries the roster rate as a pointer: an omitted
// daily_rate is rejected, never defaulted to a zero wage.
type CreateEmployeeRequest struct {
	Code      string           `json:"code"`
	Name      string           `json:"name"`
	DailyRate *decimal.Decimal `json:"daily_rate"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	} else if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "contains invalid characters"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.DailyRate == nil {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "is required"})
	} else if r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID        string
	Name      *string          `json:"name,omitempty"`
	DailyRate *decimal.Decimal `json:"daily_rate,omitempty"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be blank"})
	}
	if r.DailyRate != nil && r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	IsActive  bool            `json:"is_active"`
}
