package dashboard

import "context"

// DashboardService defines the interface for dashboard operations.
type DashboardService interface {
	// GetOverview returns combined dashboard data for the most recent period.
	GetOverview(ctx context.Context) (*OverviewResponse, error)

	// GetComparison compares the two most recent payroll periods.
	GetComparison(ctx context.Context) (*ComparisonResponse, error)
}
