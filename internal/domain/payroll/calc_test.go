package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Golden scenario: the observed statutory defaults applied to a 500/day
// employee with 26 days of attendance.
func TestCompute_GoldenScenario(t *testing.T) {
	t.Parallel()

	input := WageInput{DailyRate: dec("500"), AttendanceDays: dec("26")}

	breakdown, err := Compute(input, DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, "13000.00", breakdown.MonthlySalary.StringFixed(2))
	assert.Equal(t, "135.32", breakdown.VDA.StringFixed(2))
	assert.Equal(t, "31.77", breakdown.PaidLeave.StringFixed(2))
	assert.Equal(t, "52.92", breakdown.Bonus.StringFixed(2))
	assert.Equal(t, "13220.01", breakdown.GrossEarnings.StringFixed(2))
	assert.Equal(t, "1560.00", breakdown.PFEmployee.StringFixed(2))
	assert.Equal(t, "1690.00", breakdown.PFEmployer.StringFixed(2))
	assert.Equal(t, "99.15", breakdown.ESIEmployee.StringFixed(2))
	assert.Equal(t, "429.65", breakdown.ESIEmployer.StringFixed(2))
	assert.Equal(t, "200.00", breakdown.ProfessionalTax.StringFixed(2))
	assert.Equal(t, "1859.15", breakdown.TotalDeductions.StringFixed(2))
	assert.Equal(t, "11360.86", breakdown.NetSalary.StringFixed(2))
	assert.Equal(t, "15339.66", breakdown.CTC.StringFixed(2))
}

func TestCompute_Deterministic(t *testing.T) {
	t.Parallel()

	input := WageInput{DailyRate: dec("437.55"), AttendanceDays: dec("23.5")}
	settings := DefaultSettings()

	first, err := Compute(input, settings)
	require.NoError(t, err)
	second, err := Compute(input, settings)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompute_DecompositionInvariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rate string
		days string
	}{
		{"typical", "500", "26"},
		{"fractional days", "312.40", "23.5"},
		{"zero rate", "0", "26"},
		{"zero attendance", "500", "0"},
		{"high earner", "4999.99", "31"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			b, err := Compute(WageInput{DailyRate: dec(c.rate), AttendanceDays: dec(c.days)}, DefaultSettings())
			require.NoError(t, err)

			gross := b.MonthlySalary.Add(b.VDA).Add(b.PaidLeave).Add(b.Bonus)
			assert.True(t, b.GrossEarnings.Equal(gross), "gross = monthly + vda + paid leave + bonus")

			deductions := b.PFEmployee.Add(b.ESIEmployee).Add(b.ProfessionalTax)
			assert.True(t, b.TotalDeductions.Equal(deductions), "deductions = pf + esi + professional tax")

			assert.True(t, b.NetSalary.Equal(b.GrossEarnings.Sub(b.TotalDeductions)), "net = gross - deductions")
			assert.True(t, b.CTC.Equal(b.GrossEarnings.Add(b.PFEmployer).Add(b.ESIEmployer)), "ctc = gross + employer pf + employer esi")
		})
	}
}

// PF applies to monthly salary, ESI applies to gross earnings. A settings
// value of 12 means 12%, never 1200%.
func TestCompute_PercentBasesAndScale(t *testing.T) {
	t.Parallel()

	b, err := Compute(WageInput{DailyRate: dec("500"), AttendanceDays: dec("26")}, DefaultSettings())
	require.NoError(t, err)

	assert.True(t, b.PFEmployee.Equal(b.MonthlySalary.Mul(dec("0.12"))), "employee PF is 12 percent of monthly salary")
	assert.True(t, b.PFEmployer.Equal(b.MonthlySalary.Mul(dec("0.13"))), "employer PF is 13 percent of monthly salary")
	assert.True(t, b.ESIEmployee.Equal(b.GrossEarnings.Mul(dec("0.0075"))), "employee ESI is 0.75 percent of gross")
	assert.True(t, b.ESIEmployer.Equal(b.GrossEarnings.Mul(dec("0.0325"))), "employer ESI is 3.25 percent of gross")

	// Guard against the off-by-100 failure mode: PF on 13000 must be 1560,
	// not 156000.
	assert.True(t, b.PFEmployee.LessThan(b.MonthlySalary))
}

func TestCompute_MonotonicInAttendance(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	rate := dec("421.50")

	prev, err := Compute(WageInput{DailyRate: rate, AttendanceDays: decimal.Zero}, settings)
	require.NoError(t, err)

	for _, days := range []string{"0.5", "1", "10", "22.5", "26", "31"} {
		b, err := Compute(WageInput{DailyRate: rate, AttendanceDays: dec(days)}, settings)
		require.NoError(t, err)

		assert.True(t, b.MonthlySalary.GreaterThanOrEqual(prev.MonthlySalary), "monthly salary at %s days", days)
		assert.True(t, b.GrossEarnings.GreaterThanOrEqual(prev.GrossEarnings), "gross earnings at %s days", days)
		assert.True(t, b.NetSalary.GreaterThanOrEqual(prev.NetSalary), "net salary at %s days", days)
		prev = b
	}
}

// Zero attendance zeroes the base salary but not the attendance-independent
// components.
func TestCompute_ZeroAttendance(t *testing.T) {
	t.Parallel()

	b, err := Compute(WageInput{DailyRate: dec("500"), AttendanceDays: decimal.Zero}, DefaultSettings())
	require.NoError(t, err)

	assert.True(t, b.MonthlySalary.IsZero())
	assert.True(t, b.VDA.IsPositive())
	assert.True(t, b.PaidLeave.IsPositive())
	assert.True(t, b.Bonus.IsPositive())
	assert.True(t, b.ProfessionalTax.IsPositive())
}

func TestCompute_RejectsNegativeInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input WageInput
		field string
	}{
		{"negative rate", WageInput{DailyRate: dec("-1"), AttendanceDays: dec("26")}, "daily_rate"},
		{"negative days", WageInput{DailyRate: dec("500"), AttendanceDays: dec("-0.5")}, "attendance_days"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := Compute(c.input, DefaultSettings())
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, c.field, errs[0].Field)
		})
	}
}

func TestCompute_RejectsNegativeSettings(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.PFEmployeePercent = dec("-12")

	_, err := Compute(WageInput{DailyRate: dec("500"), AttendanceDays: dec("26")}, settings)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "pf_employee_percent", errs[0].Field)
}

// LWF contributions pass through to the breakdown but stay out of the totals.
func TestCompute_LWFExposedNotTotaled(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.LWFEmployeeContribution = dec("25")
	settings.LWFEmployerContribution = dec("75")

	b, err := Compute(WageInput{DailyRate: dec("500"), AttendanceDays: dec("26")}, settings)
	require.NoError(t, err)

	assert.True(t, b.LWFEmployee.Equal(dec("25")))
	assert.True(t, b.LWFEmployer.Equal(dec("75")))
	assert.True(t, b.TotalDeductions.Equal(b.PFEmployee.Add(b.ESIEmployee).Add(b.ProfessionalTax)))
	assert.True(t, b.CTC.Equal(b.GrossEarnings.Add(b.PFEmployer).Add(b.ESIEmployer)))
}
