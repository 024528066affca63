package dashboard

import "github.com/shopspring/decimal"

// ========== COMBINED DASHBOARD ==========

// OverviewResponse is the combined response for the main dashboard endpoint.
type OverviewResponse struct {
	PeriodLabel    string          `json:"period_label"`
	TotalEmployees int             `json:"total_employees"`
	TotalNetSalary decimal.Decimal `json:"total_net_salary"`
	AverageNet     decimal.Decimal `json:"average_net_salary"`
	PaidCount      int             `json:"paid_count"`
	UnpaidCount    int             `json:"unpaid_count"`
	RosterCount    int             `json:"roster_count"`
}

// ========== MONTH-OVER-MONTH COMPARISON ==========

// PeriodSnapshot is one side of a month-over-month comparison.
type PeriodSnapshot struct {
	PeriodLabel      string          `json:"period_label"`
	EmployeeCount    int             `json:"employee_count"`
	TotalNetSalary   decimal.Decimal `json:"total_net_salary"`
	AverageNetSalary decimal.Decimal `json:"average_net_salary"`
}

// ComparisonResponse reports the two most recent periods and their percent
// changes. With fewer than two periods on record the changes are all zero.
type ComparisonResponse struct {
	Current  *PeriodSnapshot `json:"current,omitempty"`
	Previous *PeriodSnapshot `json:"previous,omitempty"`

	EmployeeCountChangePercent    decimal.Decimal `json:"employee_count_change_percent"`
	TotalNetSalaryChangePercent   decimal.Decimal `json:"total_net_salary_change_percent"`
	AverageNetSalaryChangePercent decimal.Decimal `json:"average_net_salary_change_percent"`
}
