package postgresql

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wagedesk/payroll-backend-go/internal/domain/dashboard"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) ListPeriods(ctx context.Context, companyID string) ([]payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT period_month, period_year
		FROM payroll_records
		WHERE company_id = $1
		ORDER BY period_year DESC, period_month DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboard periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.Period
	for rows.Next() {
		var month, year int
		if err := rows.Scan(&month, &year); err != nil {
			return nil, fmt.Errorf("failed to scan dashboard period: %w", err)
		}
		period, err := payroll.NewPeriod(month, year)
		if err != nil {
			return nil, fmt.Errorf("invalid period in payroll records: %w", err)
		}
		periods = append(periods, period)
	}

	return periods, nil
}

func (r *dashboardRepository) GetPeriodTotals(ctx context.Context, companyID string, period payroll.Period) (payroll.PeriodTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), COALESCE(SUM(net_salary), 0)
		FROM payroll_records
		WHERE company_id = $1 AND period_month = $2 AND period_year = $3
	`

	var totals payroll.PeriodTotals
	err := q.QueryRow(ctx, query, companyID, int(period.Month), period.Year).Scan(
		&totals.EmployeeCount, &totals.TotalNetSalary,
	)
	if err != nil {
		return payroll.PeriodTotals{}, fmt.Errorf("failed to get dashboard period totals: %w", err)
	}

	totals.AverageNetSalary = decimal.Zero
	if totals.EmployeeCount > 0 {
		totals.AverageNetSalary = totals.TotalNetSalary.Div(decimal.NewFromInt(int64(totals.EmployeeCount)))
	}

	return totals, nil
}

func (r *dashboardRepository) GetStatusCounts(ctx context.Context, companyID string, period payroll.Period) (dashboard.StatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'paid'),
			   COUNT(*) FILTER (WHERE status = 'unpaid')
		FROM payroll_records
		WHERE company_id = $1 AND period_month = $2 AND period_year = $3
	`

	var counts dashboard.StatusCounts
	err := q.QueryRow(ctx, query, companyID, int(period.Month), period.Year).Scan(
		&counts.Paid, &counts.Unpaid,
	)
	if err != nil {
		return dashboard.StatusCounts{}, fmt.Errorf("failed to get status counts: %w", err)
	}

	return counts, nil
}

func (r *dashboardRepository) CountActiveEmployees(ctx context.Context, companyID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE company_id = $1 AND is_active = TRUE`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return count, nil
}
