package payroll

import "github.com/shopspring/decimal"

// changeThreshold suppresses display noise: absolute percent changes at or
// below 0.05 are reported as exactly zero.
var changeThreshold = decimal.RequireFromString("0.05")

// PeriodTotals aggregates the net pay of every breakdown in one period.
type PeriodTotals struct {
	EmployeeCount    int
	TotalNetSalary   decimal.Decimal
	AverageNetSalary decimal.Decimal
}

// PeriodComparison reports month-over-month percent changes, rounded to one
// decimal place.
type PeriodComparison struct {
	EmployeeCountChangePercent    decimal.Decimal
	TotalNetSalaryChangePercent   decimal.Decimal
	AverageNetSalaryChangePercent decimal.Decimal
}

// Summarize totals a period's breakdowns. An empty period yields all zeros;
// the average over zero employees is zero by policy, not an error.
func Summarize(breakdowns []SalaryBreakdown) PeriodTotals {
	totals := PeriodTotals{
		TotalNetSalary:   decimal.Zero,
		AverageNetSalary: decimal.Zero,
	}
	for _, b := range breakdowns {
		totals.TotalNetSalary = totals.TotalNetSalary.Add(b.NetSalary)
	}
	totals.EmployeeCount = len(breakdowns)
	if totals.EmployeeCount > 0 {
		totals.AverageNetSalary = totals.TotalNetSalary.Div(decimal.NewFromInt(int64(totals.EmployeeCount)))
	}
	return totals
}

// ComparePeriods compares two period's breakdowns. Degrades to zero changes
// rather than failing: this is a reporting path.
func ComparePeriods(current, previous []SalaryBreakdown) PeriodComparison {
	return CompareTotals(Summarize(current), Summarize(previous))
}

// CompareTotals compares pre-aggregated period totals.
func CompareTotals(current, previous PeriodTotals) PeriodComparison {
	return PeriodComparison{
		EmployeeCountChangePercent: percentChange(
			decimal.NewFromInt(int64(current.EmployeeCount)),
			decimal.NewFromInt(int64(previous.EmployeeCount)),
		),
		TotalNetSalaryChangePercent:   percentChange(current.TotalNetSalary, previous.TotalNetSalary),
		AverageNetSalaryChangePercent: percentChange(current.AverageNetSalary, previous.AverageNetSalary),
	}
}

// percentChange computes ((current - previous) / previous) * 100. A zero
// baseline yields zero: there is no meaningful percentage from nothing.
func percentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	change := current.Sub(previous).Div(previous).Mul(hundred)
	if change.Abs().LessThanOrEqual(changeThreshold) {
		return decimal.Zero
	}
	return change.Round(1)
}
