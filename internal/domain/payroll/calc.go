package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

var (
	hundred       = decimal.NewFromInt(100)
	thirty        = decimal.NewFromInt(30)
	paidLeaveDays = decimal.RequireFromString("1.5")
)

// Validate rejects negative wage inputs. Negative values are never clamped:
// a negative rate or attendance figure is bad data, not zero pay.
func (w WageInput) Validate() error {
	var errs validator.ValidationErrors

	if w.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be non-negative"})
	}
	if w.AttendanceDays.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "attendance_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateRates rejects negative settings values before they reach a
// calculation.
func (s PayrollSettings) ValidateRates() error {
	var errs validator.ValidationErrors

	check := func(field string, v decimal.Decimal) {
		if v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	check("vda_amount", s.VDAAmount)
	check("bonus_percent", s.BonusPercent)
	check("esi_employee_percent", s.ESIEmployeePercent)
	check("esi_employer_percent", s.ESIEmployerPercent)
	check("pf_employee_percent", s.PFEmployeePercent)
	check("pf_employer_percent", s.PFEmployerPercent)
	check("professional_tax", s.ProfessionalTax)
	check("lwf_employee_contribution", s.LWFEmployeeContribution)
	check("lwf_employer_contribution", s.LWFEmployerContribution)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Compute derives a full salary breakdown from a wage input and settings.
//
// The derivation order is load-bearing: each step depends only on values
// computed before it. PF is computed on the monthly salary while ESI is
// computed on gross earnings; that asymmetry is intentional. No rounding is
// applied here - rounding to 2 places is a presentation concern.
//
// Pure and deterministic: safe to call concurrently for any number of
// employees.
func Compute(input WageInput, settings PayrollSettings) (SalaryBreakdown, error) {
	if err := input.Validate(); err != nil {
		return SalaryBreakdown{}, err
	}
	if err := settings.ValidateRates(); err != nil {
		return SalaryBreakdown{}, err
	}

	monthlySalary := input.DailyRate.Mul(input.AttendanceDays)

	// VDA is a flat amount per period, not scaled by attendance.
	vda := settings.VDAAmount

	// Paid leave is a fixed 1.5-day allowance on the VDA-adjusted daily rate,
	// accrued every period regardless of leave actually taken.
	rateWithVDA := input.DailyRate.Add(vda)
	paidLeave := rateWithVDA.Div(thirty).Mul(paidLeaveDays)

	bonus := rateWithVDA.Mul(settings.BonusPercent.Div(hundred))

	grossEarnings := monthlySalary.Add(vda).Add(paidLeave).Add(bonus)

	esiEmployee := grossEarnings.Mul(settings.ESIEmployeePercent.Div(hundred))
	esiEmployer := grossEarnings.Mul(settings.ESIEmployerPercent.Div(hundred))

	// PF base is the monthly salary, not gross earnings.
	pfEmployee := monthlySalary.Mul(settings.PFEmployeePercent.Div(hundred))
	pfEmployer := monthlySalary.Mul(settings.PFEmployerPercent.Div(hundred))

	professionalTax := settings.ProfessionalTax

	totalDeductions := pfEmployee.Add(esiEmployee).Add(professionalTax)
	netSalary := grossEarnings.Sub(totalDeductions)
	ctc := grossEarnings.Add(pfEmployer).Add(esiEmployer)

	return SalaryBreakdown{
		MonthlySalary:   monthlySalary,
		VDA:             vda,
		PaidLeave:       paidLeave,
		Bonus:           bonus,
		GrossEarnings:   grossEarnings,
		PFEmployee:      pfEmployee,
		PFEmployer:      pfEmployer,
		ESIEmployee:     esiEmployee,
		ESIEmployer:     esiEmployer,
		ProfessionalTax: professionalTax,
		LWFEmployee:     settings.LWFEmployeeContribution,
		LWFEmployer:     settings.LWFEmployerContribution,
		TotalDeductions: totalDeductions,
		NetSalary:       netSalary,
		CTC:             ctc,
	}, nil
}
