package dashboard

import (
	"context"

	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
)

// StatusCounts combines paid/unpaid record counts for a period.
type StatusCounts struct {
	Paid   int
	Unpaid int
}

// DashboardRepository defines the interface for dashboard data access.
type DashboardRepository interface {
	// ListPeriods returns every period with at least one payroll record.
	ListPeriods(ctx context.Context, companyID string) ([]payroll.Period, error)

	// GetPeriodTotals returns employee count, total net, and average net for a
	// period in a single query.
	GetPeriodTotals(ctx context.Context, companyID string, period payroll.Period) (payroll.PeriodTotals, error)

	// GetStatusCounts returns paid/unpaid record counts for a period.
	GetStatusCounts(ctx context.Context, companyID string, period payroll.Period) (StatusCounts, error)

	// CountActiveEmployees returns the active roster size.
	CountActiveEmployees(ctx context.Context, companyID string) (int, error)
}
