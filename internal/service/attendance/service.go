package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/wagedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/tenant"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ImportRows validates loosely-typed upload rows and upserts the valid ones
// as attendance entries. Each rejected row is reported with its index and
// reason; a bad row never blocks the rest of the sheet and is never coerced
// to a zero-pay entry.
func (s *AttendanceServiceImpl) ImportRows(ctx context.Context, req attendance.ImportRequest) (attendance.ImportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportResponse{}, err
	}
	if len(req.Rows) == 0 {
		return attendance.ImportResponse{}, attendance.ErrEmptyImport
	}

	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return attendance.ImportResponse{}, err
	}

	period, err := payroll.NewPeriod(req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return attendance.ImportResponse{}, err
	}

	resp := attendance.ImportResponse{}
	var valid []attendance.Entry
	for i, row := range req.Rows {
		entry, rowErr := s.validateRow(ctx, companyID, period, i, row)
		if rowErr != nil {
			resp.Rejected++
			resp.RowErrors = append(resp.RowErrors, *rowErr)
			continue
		}
		valid = append(valid, entry)
	}

	if len(valid) > 0 {
		persisted, err := s.attendanceRepo.UpsertEntries(ctx, valid)
		if err != nil {
			return attendance.ImportResponse{}, fmt.Errorf("failed to upsert attendance entries: %w", err)
		}
		resp.Imported = len(persisted)
	}

	return resp, nil
}

// validateRow turns one upload row into an entry, or explains why it cannot.
func (s *AttendanceServiceImpl) validateRow(ctx context.Context, companyID string, period payroll.Period, index int, row attendance.ImportRow) (attendance.Entry, *attendance.RowError) {
	reject := func(code, reason string) (attendance.Entry, *attendance.RowError) {
		return attendance.Entry{}, &attendance.RowError{RowIndex: index, EmployeeCode: code, Reason: reason}
	}

	if row.EmployeeCode == nil || validator.IsEmpty(*row.EmployeeCode) {
		return reject("", "employee_code is missing")
	}
	code := *row.EmployeeCode

	if row.DailyRate == nil {
		return reject(code, "daily_rate is missing")
	}
	rate, ok := validator.ParseAmount(*row.DailyRate)
	if !ok {
		return reject(code, "daily_rate is not a number")
	}
	if rate.IsNegative() {
		return reject(code, "daily_rate must be non-negative")
	}

	if row.AttendanceDays == nil {
		return reject(code, "attendance_days is missing")
	}
	days, ok := validator.ParseAmount(*row.AttendanceDays)
	if !ok {
		return reject(code, "attendance_days is not a number")
	}
	if days.IsNegative() {
		return reject(code, "attendance_days must be non-negative")
	}

	emp, err := s.employeeRepo.GetByCode(ctx, code, companyID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return reject(code, "no employee with this code")
		}
		return reject(code, "failed to resolve employee: "+err.Error())
	}

	return attendance.Entry{
		CompanyID:   companyID,
		EmployeeID:  emp.ID,
		PeriodMonth: int(period.Month),
		PeriodYear:  period.Year,
		Days:        days,
		DailyRate:   &rate,
	}, nil
}

func (s *AttendanceServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	return s.attendanceRepo.DeleteEntry(ctx, id, companyID)
}

func (s *AttendanceServiceImpl) ListByPeriod(ctx context.Context, month, year int) ([]attendance.EntryResponse, error) {
	companyID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	period, err := payroll.NewPeriod(month, year)
	if err != nil {
		return nil, err
	}

	entries, err := s.attendanceRepo.ListByPeriod(ctx, companyID, period)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.EntryResponse, 0, len(entries))
	for _, e := range entries {
		name := ""
		empCode := ""
		if e.EmployeeName != nil {
			name = *e.EmployeeName
		}
		if e.EmployeeCode != nil {
			empCode = *e.EmployeeCode
		}
		result = append(result, attendance.EntryResponse{
			ID:           e.ID,
			EmployeeID:   e.EmployeeID,
			EmployeeName: name,
			EmployeeCode: empCode,
			PeriodMonth:  e.PeriodMonth,
			PeriodYear:   e.PeriodYear,
			Days:         e.Days,
			DailyRate:    e.DailyRate,
		})
	}
	return result, nil
}
