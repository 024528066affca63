package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/wagedesk/payroll-backend-go/internal/domain/dashboard"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/tenant"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// GetOverview returns combined dashboard data for the most recent payroll
// period, fanning the independent queries out in parallel.
func (s *DashboardServiceImpl) GetOverview(ctx context.Context) (*dashboard.OverviewResponse, error) {
	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	periods, err := s.ListPeriods(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := &dashboard.OverviewResponse{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.CountActiveEmployees(gCtx, companyID)
		if err != nil {
			return err
		}
		resp.RosterCount = count
		return nil
	})

	if len(periods) > 0 {
		latest := periods[0]
		for _, p := range periods[1:] {
			if latest.Before(p) {
				latest = p
			}
		}
		resp.PeriodLabel = latest.Label()

		g.Go(func() error {
			totals, err := s.GetPeriodTotals(gCtx, companyID, latest)
			if err != nil {
				return err
			}
			resp.TotalEmployees = totals.EmployeeCount
			resp.TotalNetSalary = totals.TotalNetSalary
			resp.AverageNet = totals.AverageNetSalary
			return nil
		})

		g.Go(func() error {
			counts, err := s.GetStatusCounts(gCtx, companyID, latest)
			if err != nil {
				return err
			}
			resp.PaidCount = counts.Paid
			resp.UnpaidCount = counts.Unpaid
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return resp, nil
}

// GetComparison compares the two most recent payroll periods by calendar
// order. With fewer than two periods on record every change is zero - a
// reporting path degrades, it does not fail.
func (s *DashboardServiceImpl) GetComparison(ctx context.Context) (*dashboard.ComparisonResponse, error) {
	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	periods, err := s.ListPeriods(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := &dashboard.ComparisonResponse{}

	current, previous, ok := payroll.LatestTwo(periods)
	if !ok {
		zero := payroll.CompareTotals(payroll.PeriodTotals{}, payroll.PeriodTotals{})
		resp.EmployeeCountChangePercent = zero.EmployeeCountChangePercent
		resp.TotalNetSalaryChangePercent = zero.TotalNetSalaryChangePercent
		resp.AverageNetSalaryChangePercent = zero.AverageNetSalaryChangePercent
		return resp, nil
	}

	var currentTotals, previousTotals payroll.PeriodTotals

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		currentTotals, err = s.GetPeriodTotals(gCtx, companyID, current)
		return err
	})
	g.Go(func() error {
		var err error
		previousTotals, err = s.GetPeriodTotals(gCtx, companyID, previous)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cmp := payroll.CompareTotals(currentTotals, previousTotals)

	resp.Current = &dashboard.PeriodSnapshot{
		PeriodLabel:      current.Label(),
		EmployeeCount:    currentTotals.EmployeeCount,
		TotalNetSalary:   currentTotals.TotalNetSalary,
		AverageNetSalary: currentTotals.AverageNetSalary,
	}
	resp.Previous = &dashboard.PeriodSnapshot{
		PeriodLabel:      previous.Label(),
		EmployeeCount:    previousTotals.EmployeeCount,
		TotalNetSalary:   previousTotals.TotalNetSalary,
		AverageNetSalary: previousTotals.AverageNetSalary,
	}
	resp.EmployeeCountChangePercent = cmp.EmployeeCountChangePercent
	resp.TotalNetSalaryChangePercent = cmp.TotalNetSalaryChangePercent
	resp.AverageNetSalaryChangePercent = cmp.AverageNetSalaryChangePercent

	return resp, nil
}
