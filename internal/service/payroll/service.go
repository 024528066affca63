package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wagedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/tenant"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// ========== SETTINGS ==========

func (s *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.PayrollSettingsResponse, error) {
	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	settings, err := s.payrollRepo.GetSettings(ctx, companyID)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollSettingsNotFound) {
			defaults := payroll.DefaultSettings()
			defaults.CompanyID = companyID
			return mapSettingsResponse(defaults), nil
		}
		return payroll.PayrollSettingsResponse{}, err
	}

	return mapSettingsResponse(settings), nil
}

func (s *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdatePayrollSettingsRequest) (payroll.PayrollSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	// Get current settings or use defaults
	current, err := s.payrollRepo.GetSettings(ctx, companyID)
	if err != nil && !errors.Is(err, payroll.ErrPayrollSettingsNotFound) {
		return payroll.PayrollSettingsResponse{}, err
	}
	if errors.Is(err, payroll.ErrPayrollSettingsNotFound) {
		current = payroll.DefaultSettings()
		current.CompanyID = companyID
	}

	// Apply updates
	if req.VDAAmount != nil {
		current.VDAAmount = *req.VDAAmount
	}
	if req.BonusPercent != nil {
		current.BonusPercent = *req.BonusPercent
	}
	if req.ESIEmployeePercent != nil {
		current.ESIEmployeePercent = *req.ESIEmployeePercent
	}
	if req.ESIEmployerPercent != nil {
		current.ESIEmployerPercent = *req.ESIEmployerPercent
	}
	if req.PFEmployeePercent != nil {
		current.PFEmployeePercent = *req.PFEmployeePercent
	}
	if req.PFEmployerPercent != nil {
		current.PFEmployerPercent = *req.PFEmployerPercent
	}
	if req.ProfessionalTax != nil {
		current.ProfessionalTax = *req.ProfessionalTax
	}
	if req.LWFEmployeeContribution != nil {
		current.LWFEmployeeContribution = *req.LWFEmployeeContribution
	}
	if req.LWFEmployerContribution != nil {
		current.LWFEmployerContribution = *req.LWFEmployerContribution
	}

	updated, err := s.payrollRepo.UpsertSettings(ctx, current)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	return mapSettingsResponse(updated), nil
}

// ========== PAYROLL GENERATION ==========

// Generate computes and persists one payroll record per attendance entry in
// the period. Each employee's computation is independent: a row that fails
// validation is reported in Failures and never aborts the batch or silently
// vanishes from totals. Employees already generated for the period are
// skipped.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	period, err := payroll.NewPeriod(req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	settings, err := s.payrollRepo.GetSettings(ctx, companyID)
	if err != nil {
		if !errors.Is(err, payroll.ErrPayrollSettingsNotFound) {
			return payroll.GeneratePayrollResponse{}, err
		}
		settings = payroll.DefaultSettings()
		settings.CompanyID = companyID
	}

	entries, err := s.attendanceRepo.ListByPeriod(ctx, companyID, period)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to list attendance entries: %w", err)
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}
	employeeByID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		employeeByID[emp.ID] = emp
	}

	var wanted map[string]bool
	if len(req.EmployeeIDs) > 0 {
		wanted = make(map[string]bool, len(req.EmployeeIDs))
		for _, id := range req.EmployeeIDs {
			wanted[id] = true
		}
	}

	resp := payroll.GeneratePayrollResponse{}
	for _, entry := range entries {
		if wanted != nil && !wanted[entry.EmployeeID] {
			continue
		}

		emp, ok := employeeByID[entry.EmployeeID]
		if !ok {
			resp.Failures = append(resp.Failures, payroll.RowFailure{
				EmployeeID: entry.EmployeeID,
				Reason:     "employee is not on the active roster",
			})
			continue
		}

		// Attendance entries may carry a per-period rate; the roster rate is
		// the fallback, never an implicit zero.
		rate := emp.DailyRate
		if entry.DailyRate != nil {
			rate = *entry.DailyRate
		}
		if rate.IsZero() {
			resp.Failures = append(resp.Failures, payroll.RowFailure{
				EmployeeID:   emp.ID,
				EmployeeName: emp.Name,
				Reason:       payroll.ErrEmployeeHasNoDailyRate.Error(),
			})
			continue
		}

		_, err := s.payrollRepo.GetPayrollRecordByEmployeePeriod(ctx, entry.EmployeeID, period, companyID)
		if err == nil {
			resp.Skipped++
			continue
		}
		if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to check existing payroll record: %w", err)
		}

		input := payroll.WageInput{DailyRate: rate, AttendanceDays: entry.Days}
		breakdown, err := payroll.Compute(input, settings)
		if err != nil {
			resp.Failures = append(resp.Failures, payroll.RowFailure{
				EmployeeID:   emp.ID,
				EmployeeName: emp.Name,
				Reason:       err.Error(),
			})
			continue
		}

		record := payroll.PayrollRecord{
			EmployeeID:     emp.ID,
			CompanyID:      companyID,
			PeriodMonth:    req.PeriodMonth,
			PeriodYear:     req.PeriodYear,
			DailyRate:      rate,
			AttendanceDays: entry.Days,
			Breakdown:      breakdown,
			Status:         payroll.PaymentStatusUnpaid,
		}

		created, err := s.payrollRepo.CreatePayrollRecord(ctx, record)
		if err != nil {
			if errors.Is(err, payroll.ErrPayrollRecordAlreadyExists) {
				resp.Skipped++
				continue
			}
			return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to create payroll record for employee %s: %w", emp.ID, err)
		}
		resp.Records = append(resp.Records, mapRecordResponse(created))
	}

	return resp, nil
}

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.payrollRepo.GetPayrollRecordByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollRecordResponse, error) {
	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	records, totalCount, err := s.payrollRepo.ListPayrollRecords(ctx, companyID, filter)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	return payroll.ListPayrollRecordResponse{
		Data:       mapRecordResponses(records),
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, req payroll.SetPaymentStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	return s.payrollRepo.SetPaymentStatus(ctx, req.RecordIDs, payroll.PaymentStatusPaid, companyID)
}

func (s *PayrollServiceImpl) MarkUnpaid(ctx context.Context, req payroll.SetPaymentStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	return s.payrollRepo.SetPaymentStatus(ctx, req.RecordIDs, payroll.PaymentStatusUnpaid, companyID)
}

func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	record, err := s.payrollRepo.GetPayrollRecordByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if record.Status == payroll.PaymentStatusPaid {
		return payroll.ErrCannotDeletePaidRecord
	}

	return s.payrollRepo.DeletePayrollRecord(ctx, id, companyID)
}

// ========== SUMMARY ==========

func (s *PayrollServiceImpl) GetSummary(ctx context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	period, err := payroll.NewPeriod(month, year)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	return s.payrollRepo.GetPayrollSummary(ctx, companyID, period)
}

// ========== HELPERS ==========

func mapSettingsResponse(s payroll.PayrollSettings) payroll.PayrollSettingsResponse {
	return payroll.PayrollSettingsResponse{
		ID:                      s.ID,
		CompanyID:               s.CompanyID,
		VDAAmount:               s.VDAAmount,
		BonusPercent:            s.BonusPercent,
		ESIEmployeePercent:      s.ESIEmployeePercent,
		ESIEmployerPercent:      s.ESIEmployerPercent,
		PFEmployeePercent:       s.PFEmployeePercent,
		PFEmployerPercent:       s.PFEmployerPercent,
		ProfessionalTax:         s.ProfessionalTax,
		LWFEmployeeContribution: s.LWFEmployeeContribution,
		LWFEmployerContribution: s.LWFEmployerContribution,
	}
}

func mapBreakdownResponse(b payroll.SalaryBreakdown) payroll.SalaryBreakdownResponse {
	return payroll.SalaryBreakdownResponse{
		MonthlySalary:   b.MonthlySalary,
		VDA:             b.VDA,
		PaidLeave:       b.PaidLeave,
		Bonus:           b.Bonus,
		GrossEarnings:   b.GrossEarnings,
		PFEmployee:      b.PFEmployee,
		PFEmployer:      b.PFEmployer,
		ESIEmployee:     b.ESIEmployee,
		ESIEmployer:     b.ESIEmployer,
		ProfessionalTax: b.ProfessionalTax,
		LWFEmployee:     b.LWFEmployee,
		LWFEmployer:     b.LWFEmployer,
		TotalDeductions: b.TotalDeductions,
		NetSalary:       b.NetSalary,
		CTC:             b.CTC,
	}
}

func mapRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	var paidAtStr *string
	if r.PaidAt != nil {
		str := r.PaidAt.Format(time.RFC3339)
		paidAtStr = &str
	}

	employeeName := ""
	employeeCode := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		employeeCode = *r.EmployeeCode
	}

	period := payroll.Period{Year: r.PeriodYear, Month: time.Month(r.PeriodMonth)}

	return payroll.PayrollRecordResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeName:   employeeName,
		EmployeeCode:   employeeCode,
		PeriodMonth:    r.PeriodMonth,
		PeriodYear:     r.PeriodYear,
		PeriodLabel:    period.Label(),
		DailyRate:      r.DailyRate,
		AttendanceDays: r.AttendanceDays,
		Breakdown:      mapBreakdownResponse(r.Breakdown),
		Status:         string(r.Status),
		PaidAt:         paidAtStr,
	}
}

func mapRecordResponses(records []payroll.PayrollRecord) []payroll.PayrollRecordResponse {
	result := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapRecordResponse(r))
	}
	return result
}
