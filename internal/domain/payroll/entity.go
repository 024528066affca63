package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollSettings - Company payroll configuration.
// All percentage fields are plain percentages (12 means 12%), divided by 100
// at calculation time. VDAAmount is a flat currency amount per period, not a
// rate, despite the historical name.
type PayrollSettings struct {
	ID                      string
	CompanyID               string
	VDAAmount               decimal.Decimal
	BonusPercent            decimal.Decimal
	ESIEmployeePercent      decimal.Decimal
	ESIEmployerPercent      decimal.Decimal
	PFEmployeePercent       decimal.Decimal
	PFEmployerPercent       decimal.Decimal
	ProfessionalTax         decimal.Decimal
	LWFEmployeeContribution decimal.Decimal
	LWFEmployerContribution decimal.Decimal
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DefaultSettings returns the statutory rates used when a company has not
// configured its own.
func DefaultSettings() PayrollSettings {
	return PayrollSettings{
		VDAAmount:               decimal.RequireFromString("135.32"),
		BonusPercent:            decimal.RequireFromString("8.33"),
		ESIEmployeePercent:      decimal.RequireFromString("0.75"),
		ESIEmployerPercent:      decimal.RequireFromString("3.25"),
		PFEmployeePercent:       decimal.NewFromInt(12),
		PFEmployerPercent:       decimal.NewFromInt(13),
		ProfessionalTax:         decimal.NewFromInt(200),
		LWFEmployeeContribution: decimal.Zero,
		LWFEmployerContribution: decimal.Zero,
	}
}

// WageInput is the minimal data needed to compute one employee's pay for one
// period. AttendanceDays is fractional (23.5 = 23 full days + 1 half day) and
// is not capped to calendar days.
type WageInput struct {
	DailyRate      decimal.Decimal
	AttendanceDays decimal.Decimal
}

// SalaryBreakdown is the computed pay for one employee for one period. It is a
// derived projection: recomputed whenever attendance, rate, or settings
// change, never a source of truth.
//
// LWF contributions are carried through for visibility but are not folded
// into TotalDeductions or CTC.
type SalaryBreakdown struct {
	MonthlySalary   decimal.Decimal
	VDA             decimal.Decimal
	PaidLeave       decimal.Decimal
	Bonus           decimal.Decimal
	GrossEarnings   decimal.Decimal
	PFEmployee      decimal.Decimal
	PFEmployer      decimal.Decimal
	ESIEmployee     decimal.Decimal
	ESIEmployer     decimal.Decimal
	ProfessionalTax decimal.Decimal
	LWFEmployee     decimal.Decimal
	LWFEmployer     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	CTC             decimal.Decimal
}

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// PayrollRecord - Generated payroll result for one employee and period.
type PayrollRecord struct {
	ID             string
	EmployeeID     string
	CompanyID      string
	PeriodMonth    int
	PeriodYear     int
	DailyRate      decimal.Decimal
	AttendanceDays decimal.Decimal
	Breakdown      SalaryBreakdown
	Status         PaymentStatus
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
