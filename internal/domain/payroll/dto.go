package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

// ========== SETTINGS DTOs ==========

type PayrollSettingsResponse struct {
	ID                      string          `json:"id"`
	CompanyID               string          `json:"company_id"`
	VDAAmount               decimal.Decimal `json:"vda_amount"`
	BonusPercent            decimal.Decimal `json:"bonus_percent"`
	ESIEmployeePercent      decimal.Decimal `json:"esi_employee_percent"`
	ESIEmployerPercent      decimal.Decimal `json:"esi_employer_percent"`
	PFEmployeePercent       decimal.Decimal `json:"pf_employee_percent"`
	PFEmployerPercent       decimal.Decimal `json:"pf_employer_percent"`
	ProfessionalTax         decimal.Decimal `json:"professional_tax"`
	LWFEmployeeContribution decimal.Decimal `json:"lwf_employee_contribution"`
	LWFEmployerContribution decimal.Decimal `json:"lwf_employer_contribution"`
}

type UpdatePayrollSettingsRequest struct {
	VDAAmount               *decimal.Decimal `json:"vda_amount,omitempty"`
	BonusPercent            *decimal.Decimal `json:"bonus_percent,omitempty"`
	ESIEmployeePercent      *decimal.Decimal `json:"esi_employee_percent,omitempty"`
	ESIEmployerPercent      *decimal.Decimal `json:"esi_employer_percent,omitempty"`
	PFEmployeePercent       *decimal.Decimal `json:"pf_employee_percent,omitempty"`
	PFEmployerPercent       *decimal.Decimal `json:"pf_employer_percent,omitempty"`
	ProfessionalTax         *decimal.Decimal `json:"professional_tax,omitempty"`
	LWFEmployeeContribution *decimal.Decimal `json:"lwf_employee_contribution,omitempty"`
	LWFEmployerContribution *decimal.Decimal `json:"lwf_employer_contribution,omitempty"`
}

func (r *UpdatePayrollSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	check := func(field string, v *decimal.Decimal) {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	check("vda_amount", r.VDAAmount)
	check("bonus_percent", r.BonusPercent)
	check("esi_employee_percent", r.ESIEmployeePercent)
	check("esi_employer_percent", r.ESIEmployerPercent)
	check("pf_employee_percent", r.PFEmployeePercent)
	check("pf_employer_percent", r.PFEmployerPercent)
	check("professional_tax", r.ProfessionalTax)
	check("lwf_employee_contribution", r.LWFEmployeeContribution)
	check("lwf_employer_contribution", r.LWFEmployerContribution)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== PAYROLL RECORD DTOs ==========

type GeneratePayrollRequest struct {
	PeriodMonth int      `json:"period_month"`
	PeriodYear  int      `json:"period_year"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // Empty = all active employees
}

func (r *GeneratePayrollRequest) Validate() error {
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

// RowFailure reports one employee whose pay could not be computed. Failures
// are surfaced individually so one bad row never silently drops an employee
// from a batch of hundreds.
type RowFailure struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Reason       string `json:"reason"`
}

type GeneratePayrollResponse struct {
	Records  []PayrollRecordResponse `json:"records"`
	Failures []RowFailure            `json:"failures,omitempty"`
	Skipped  int                     `json:"skipped"`
}

type SalaryBreakdownResponse struct {
	MonthlySalary   decimal.Decimal `json:"monthly_salary"`
	VDA             decimal.Decimal `json:"vda"`
	PaidLeave       decimal.Decimal `json:"paid_leave"`
	Bonus           decimal.Decimal `json:"bonus"`
	GrossEarnings   decimal.Decimal `json:"gross_earnings"`
	PFEmployee      decimal.Decimal `json:"pf_employee"`
	PFEmployer      decimal.Decimal `json:"pf_employer"`
	ESIEmployee     decimal.Decimal `json:"esi_employee"`
	ESIEmployer     decimal.Decimal `json:"esi_employer"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	LWFEmployee     decimal.Decimal `json:"lwf_employee"`
	LWFEmployer     decimal.Decimal `json:"lwf_employer"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	CTC             decimal.Decimal `json:"ctc"`
}

type PayrollRecordResponse struct {
	ID             string                  `json:"id"`
	EmployeeID     string                  `json:"employee_id"`
	EmployeeName   string                  `json:"employee_name"`
	EmployeeCode   string                  `json:"employee_code"`
	PeriodMonth    int                     `json:"period_month"`
	PeriodYear     int                     `json:"period_year"`
	PeriodLabel    string                  `json:"period_label"`
	DailyRate      decimal.Decimal         `json:"daily_rate"`
	AttendanceDays decimal.Decimal         `json:"attendance_days"`
	Breakdown      SalaryBreakdownResponse `json:"breakdown"`
	Status         string                  `json:"status"`
	PaidAt         *string                 `json:"paid_at,omitempty"`
}

type SetPaymentStatusRequest struct {
	RecordIDs []string `json:"record_ids"`
}

func (r *SetPaymentStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.RecordIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "record_ids", Message: "at least one record is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollFilter struct {
	PeriodMonth *int    `json:"period_month,omitempty"`
	PeriodYear  *int    `json:"period_year,omitempty"`
	Status      *string `json:"status,omitempty"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	Search      *string `json:"search,omitempty"`
	Page        int     `json:"page"`
	Limit       int     `json:"limit"`
	SortBy      string  `json:"sort_by"`
	SortOrder   string  `json:"sort_order"`
}

type ListPayrollRecordResponse struct {
	Data       []PayrollRecordResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}

type PayrollSummaryResponse struct {
	PeriodMonth      int             `json:"period_month"`
	PeriodYear       int             `json:"period_year"`
	TotalEmployees   int             `json:"total_employees"`
	TotalGross       decimal.Decimal `json:"total_gross"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	TotalNetSalary   decimal.Decimal `json:"total_net_salary"`
	TotalCTC         decimal.Decimal `json:"total_ctc"`
	AverageNetSalary decimal.Decimal `json:"average_net_salary"`
	PaidCount        int             `json:"paid_count"`
	UnpaidCount      int             `json:"unpaid_count"`
}
