package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagedesk/payroll-backend-go/internal/domain/dashboard"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/tenant"
)

const testCompanyID = "c-0001"

type fakeDashboardRepo struct {
	periods     []payroll.Period
	totals      map[int]payroll.PeriodTotals
	counts      map[int]dashboard.StatusCounts
	activeCount int
}

func (f *fakeDashboardRepo) ListPeriods(_ context.Context, companyID string) ([]payroll.Period, error) {
	return f.periods, nil
}

func (f *fakeDashboardRepo) GetPeriodTotals(_ context.Context, companyID string, period payroll.Period) (payroll.PeriodTotals, error) {
	return f.totals[period.Key()], nil
}

func (f *fakeDashboardRepo) GetStatusCounts(_ context.Context, companyID string, period payroll.Period) (dashboard.StatusCounts, error) {
	return f.counts[period.Key()], nil
}

func (f *fakeDashboardRepo) CountActiveEmployees(_ context.Context, companyID string) (int, error) {
	return f.activeCount, nil
}

func testContext() context.Context {
	return tenant.WithCompanyID(context.Background(), testCompanyID)
}

func mustPeriod(t *testing.T, month time.Month, year int) payroll.Period {
	t.Helper()
	p, err := payroll.NewPeriod(int(month), year)
	require.NoError(t, err)
	return p
}

func totals(count int, total string) payroll.PeriodTotals {
	sum := decimal.RequireFromString(total)
	avg := decimal.Zero
	if count > 0 {
		avg = sum.Div(decimal.NewFromInt(int64(count)))
	}
	return payroll.PeriodTotals{EmployeeCount: count, TotalNetSalary: sum, AverageNetSalary: avg}
}

func TestGetOverview(t *testing.T) {
	t.Parallel()

	feb := mustPeriod(t, time.February, 2025)
	mar := mustPeriod(t, time.March, 2025)

	repo := &fakeDashboardRepo{
		// Deliberately unordered: the service must pick March as latest.
		periods: []payroll.Period{mar, feb},
		totals: map[int]payroll.PeriodTotals{
			mar.Key(): totals(4, "48000"),
			feb.Key(): totals(3, "30000"),
		},
		counts: map[int]dashboard.StatusCounts{
			mar.Key(): {Paid: 3, Unpaid: 1},
		},
		activeCount: 5,
	}
	svc := NewDashboardService(repo)

	resp, err := svc.GetOverview(testContext())
	require.NoError(t, err)

	assert.Equal(t, "March 2025", resp.PeriodLabel)
	assert.Equal(t, 5, resp.RosterCount)
	assert.Equal(t, 4, resp.TotalEmployees)
	assert.Equal(t, "48000", resp.TotalNetSalary.String())
	assert.Equal(t, "12000", resp.AverageNet.String())
	assert.Equal(t, 3, resp.PaidCount)
	assert.Equal(t, 1, resp.UnpaidCount)
}

func TestGetOverview_NoPeriods(t *testing.T) {
	t.Parallel()

	repo := &fakeDashboardRepo{activeCount: 2}
	svc := NewDashboardService(repo)

	resp, err := svc.GetOverview(testContext())
	require.NoError(t, err)

	assert.Empty(t, resp.PeriodLabel)
	assert.Equal(t, 2, resp.RosterCount)
	assert.Equal(t, 0, resp.TotalEmployees)
}

func TestGetOverview_MissingCompany(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(&fakeDashboardRepo{})

	_, err := svc.GetOverview(context.Background())
	assert.Error(t, err)
}

func TestGetComparison(t *testing.T) {
	t.Parallel()

	jan := mustPeriod(t, time.January, 2025)
	feb := mustPeriod(t, time.February, 2025)
	mar := mustPeriod(t, time.March, 2025)

	repo := &fakeDashboardRepo{
		periods: []payroll.Period{jan, mar, feb},
		totals: map[int]payroll.PeriodTotals{
			mar.Key(): totals(4, "44000"),
			feb.Key(): totals(4, "40000"),
			jan.Key(): totals(10, "99000"),
		},
	}
	svc := NewDashboardService(repo)

	resp, err := svc.GetComparison(testContext())
	require.NoError(t, err)

	// Only the two most recent periods matter; January is ignored.
	require.NotNil(t, resp.Current)
	require.NotNil(t, resp.Previous)
	assert.Equal(t, "March 2025", resp.Current.PeriodLabel)
	assert.Equal(t, "February 2025", resp.Previous.PeriodLabel)
	assert.Equal(t, "0", resp.EmployeeCountChangePercent.String())
	assert.Equal(t, "10", resp.TotalNetSalaryChangePercent.String())
	assert.Equal(t, "10", resp.AverageNetSalaryChangePercent.String())
}

func TestGetComparison_YearBoundary(t *testing.T) {
	t.Parallel()

	dec24 := mustPeriod(t, time.December, 2024)
	jan25 := mustPeriod(t, time.January, 2025)

	repo := &fakeDashboardRepo{
		periods: []payroll.Period{dec24, jan25},
		totals: map[int]payroll.PeriodTotals{
			jan25.Key(): totals(2, "20000"),
			dec24.Key(): totals(2, "25000"),
		},
	}
	svc := NewDashboardService(repo)

	resp, err := svc.GetComparison(testContext())
	require.NoError(t, err)

	assert.Equal(t, "January 2025", resp.Current.PeriodLabel)
	assert.Equal(t, "December 2024", resp.Previous.PeriodLabel)
	assert.Equal(t, "-20", resp.TotalNetSalaryChangePercent.String())
}

func TestGetComparison_SinglePeriod(t *testing.T) {
	t.Parallel()

	mar := mustPeriod(t, time.March, 2025)
	repo := &fakeDashboardRepo{
		periods: []payroll.Period{mar},
		totals:  map[int]payroll.PeriodTotals{mar.Key(): totals(4, "44000")},
	}
	svc := NewDashboardService(repo)

	resp, err := svc.GetComparison(testContext())
	require.NoError(t, err)

	assert.Nil(t, resp.Current)
	assert.Nil(t, resp.Previous)
	assert.True(t, resp.TotalNetSalaryChangePercent.IsZero())
	assert.True(t, resp.EmployeeCountChangePercent.IsZero())
	assert.True(t, resp.AverageNetSalaryChangePercent.IsZero())
}

func TestGetComparison_ZeroBaseline(t *testing.T) {
	t.Parallel()

	feb := mustPeriod(t, time.February, 2025)
	mar := mustPeriod(t, time.March, 2025)

	repo := &fakeDashboardRepo{
		periods: []payroll.Period{feb, mar},
		totals: map[int]payroll.PeriodTotals{
			mar.Key(): totals(4, "44000"),
			feb.Key(): totals(0, "0"),
		},
	}
	svc := NewDashboardService(repo)

	resp, err := svc.GetComparison(testContext())
	require.NoError(t, err)

	// A zero previous period yields zero change, not a division error.
	assert.True(t, resp.TotalNetSalaryChangePercent.IsZero())
	assert.True(t, resp.EmployeeCountChangePercent.IsZero())
}
