package payroll

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/tenant"
)

const testCompanyID = "c-0001"

// ===== FAKES =====

type fakePayrollRepo struct {
	settings *payroll.PayrollSettings
	records  []payroll.PayrollRecord
}

func (f *fakePayrollRepo) GetSettings(_ context.Context, companyID string) (payroll.PayrollSettings, error) {
	if f.settings == nil {
		return payroll.PayrollSettings{}, payroll.ErrPayrollSettingsNotFound
	}
	return *f.settings, nil
}

func (f *fakePayrollRepo) UpsertSettings(_ context.Context, settings payroll.PayrollSettings) (payroll.PayrollSettings, error) {
	if settings.ID == "" {
		settings.ID = uuid.NewString()
	}
	f.settings = &settings
	return settings, nil
}

func (f *fakePayrollRepo) CreatePayrollRecord(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	record.ID = uuid.NewString()
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakePayrollRepo) GetPayrollRecordByID(_ context.Context, id string, companyID string) (payroll.PayrollRecord, error) {
	for _, r := range f.records {
		if r.ID == id && r.CompanyID == companyID {
			return r, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) GetPayrollRecordByEmployeePeriod(_ context.Context, employeeID string, period payroll.Period, companyID string) (payroll.PayrollRecord, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.PeriodMonth == int(period.Month) && r.PeriodYear == period.Year {
			return r, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) ListPayrollRecords(_ context.Context, companyID string, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func (f *fakePayrollRepo) SetPaymentStatus(_ context.Context, ids []string, status payroll.PaymentStatus, companyID string) error {
	for i := range f.records {
		for _, id := range ids {
			if f.records[i].ID == id {
				f.records[i].Status = status
			}
		}
	}
	return nil
}

func (f *fakePayrollRepo) DeletePayrollRecord(_ context.Context, id string, companyID string) error {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) ListPeriods(_ context.Context, companyID string) ([]payroll.Period, error) {
	return nil, nil
}

func (f *fakePayrollRepo) GetPeriodTotals(_ context.Context, companyID string, period payroll.Period) (payroll.PeriodTotals, error) {
	return payroll.PeriodTotals{}, nil
}

func (f *fakePayrollRepo) GetPayrollSummary(_ context.Context, companyID string, period payroll.Period) (payroll.PayrollSummaryResponse, error) {
	return payroll.PayrollSummaryResponse{PeriodMonth: int(period.Month), PeriodYear: period.Year}, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id, companyID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, code, companyID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Code == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, companyID string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id, companyID string) error {
	return nil
}

type fakeAttendanceRepo struct {
	entries []attendance.Entry
}

func (f *fakeAttendanceRepo) UpsertEntries(_ context.Context, entries []attendance.Entry) ([]attendance.Entry, error) {
	f.entries = append(f.entries, entries...)
	return entries, nil
}

func (f *fakeAttendanceRepo) ListByPeriod(_ context.Context, companyID string, period payroll.Period) ([]attendance.Entry, error) {
	return f.entries, nil
}

func (f *fakeAttendanceRepo) DeleteEntry(_ context.Context, id string, companyID string) error {
	return nil
}

// ===== HELPERS =====

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testContext() context.Context {
	return tenant.WithCompanyID(context.Background(), testCompanyID)
}

func entry(employeeID, days string) attendance.Entry {
	return attendance.Entry{
		CompanyID:   testCompanyID,
		EmployeeID:  employeeID,
		PeriodMonth: 3,
		PeriodYear:  2025,
		Days:        dec(days),
	}
}

func roster() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", CompanyID: testCompanyID, Code: "EMP-001", Name: "Asha", DailyRate: dec("500"), IsActive: true},
		{ID: "emp-2", CompanyID: testCompanyID, Code: "EMP-002", Name: "Ravi", DailyRate: dec("400"), IsActive: true},
	}}
}

func generateRequest() payroll.GeneratePayrollRequest {
	return payroll.GeneratePayrollRequest{PeriodMonth: 3, PeriodYear: 2025}
}

// ===== SETTINGS TESTS =====

func TestGetSettings_FallsBackToDefaults(t *testing.T) {
	t.Parallel()

	svc := NewPayrollService(&fakePayrollRepo{}, roster(), &fakeAttendanceRepo{})

	resp, err := svc.GetSettings(testContext())
	require.NoError(t, err)

	assert.Equal(t, testCompanyID, resp.CompanyID)
	assert.Equal(t, "135.32", resp.VDAAmount.String())
	assert.Equal(t, "12", resp.PFEmployeePercent.String())
	assert.Equal(t, "200", resp.ProfessionalTax.String())
}

func TestUpdateSettings_PartialUpdate(t *testing.T) {
	t.Parallel()

	repo := &fakePayrollRepo{}
	svc := NewPayrollService(repo, roster(), &fakeAttendanceRepo{})

	vda := dec("150")
	resp, err := svc.UpdateSettings(testContext(), payroll.UpdatePayrollSettingsRequest{VDAAmount: &vda})
	require.NoError(t, err)

	// Only the supplied field changes; the rest keep their defaults.
	assert.Equal(t, "150", resp.VDAAmount.String())
	assert.Equal(t, "8.33", resp.BonusPercent.String())
	require.NotNil(t, repo.settings)
	assert.Equal(t, "150", repo.settings.VDAAmount.String())
}

func TestUpdateSettings_RejectsNegative(t *testing.T) {
	t.Parallel()

	svc := NewPayrollService(&fakePayrollRepo{}, roster(), &fakeAttendanceRepo{})

	bad := dec("-1")
	_, err := svc.UpdateSettings(testContext(), payroll.UpdatePayrollSettingsRequest{ProfessionalTax: &bad})
	assert.Error(t, err)
}

// ===== GENERATION TESTS =====

func TestGenerate_CreatesRecordPerEntry(t *testing.T) {
	t.Parallel()

	repo := &fakePayrollRepo{}
	attendanceRepo := &fakeAttendanceRepo{entries: []attendance.Entry{
		entry("emp-1", "26"),
		entry("emp-2", "23.5"),
	}}
	svc := NewPayrollService(repo, roster(), attendanceRepo)

	resp, err := svc.Generate(testContext(), generateRequest())
	require.NoError(t, err)

	require.Len(t, resp.Records, 2)
	assert.Empty(t, resp.Failures)
	assert.Equal(t, 0, resp.Skipped)

	first := resp.Records[0]
	assert.Equal(t, "emp-1", first.EmployeeID)
	assert.Equal(t, "March 2025", first.PeriodLabel)
	assert.Equal(t, string(payroll.PaymentStatusUnpaid), first.Status)
	// 500 x 26 with default settings.
	assert.Equal(t, "13000.00", first.Breakdown.MonthlySalary.StringFixed(2))
	assert.Equal(t, "11360.86", first.Breakdown.NetSalary.StringFixed(2))
	assert.Equal(t, "15339.66", first.Breakdown.CTC.StringFixed(2))
}

func TestGenerate_EntryRateOverridesRoster(t *testing.T) {
	t.Parallel()

	repo := &fakePayrollRepo{}
	override := dec("600")
	e := entry("emp-1", "26")
	e.DailyRate = &override
	svc := NewPayrollService(repo, roster(), &fakeAttendanceRepo{entries: []attendance.Entry{e}})

	resp, err := svc.Generate(testContext(), generateRequest())
	require.NoError(t, err)

	require.Len(t, resp.Records, 1)
	assert.Equal(t, "600", resp.Records[0].DailyRate.String())
	assert.Equal(t, "15600.00", resp.Records[0].Breakdown.MonthlySalary.StringFixed(2))
}

func TestGenerate_SkipsExistingRecords(t *testing.T) {
	t.Parallel()

	repo := &fakePayrollRepo{records: []payroll.PayrollRecord{{
		ID:          "existing",
		EmployeeID:  "emp-1",
		CompanyID:   testCompanyID,
		PeriodMonth: 3,
		PeriodYear:  2025,
	}}}
	attendanceRepo := &fakeAttendanceRepo{entries: []attendance.Entry{
		entry("emp-1", "26"),
		entry("emp-2", "22"),
	}}
	svc := NewPayrollService(repo, roster(), attendanceRepo)

	resp, err := svc.Generate(testContext(), generateRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Skipped)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "emp-2", resp.Records[0].EmployeeID)
}

func TestGenerate_ReportsUnknownEmployee(t *testing.T) {
	t.Parallel()

	attendanceRepo := &fakeAttendanceRepo{entries: []attendance.Entry{
		entry("emp-ghost", "26"),
		entry("emp-1", "26"),
	}}
	svc := NewPayrollService(&fakePayrollRepo{}, roster(), attendanceRepo)

	resp, err := svc.Generate(testContext(), generateRequest())
	require.NoError(t, err)

	// The unknown employee is reported, the valid one still gets a record.
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, "emp-ghost", resp.Failures[0].EmployeeID)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "emp-1", resp.Records[0].EmployeeID)
}

// A roster entry without a configured rate fails its row visibly instead of
// generating a zero-pay record.
func TestGenerate_ReportsMissingDailyRate(t *testing.T) {
	t.Parallel()

	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", CompanyID: testCompanyID, Code: "EMP-001", Name: "Asha", IsActive: true},
	}}
	attendanceRepo := &fakeAttendanceRepo{entries: []attendance.Entry{entry("emp-1", "26")}}
	svc := NewPayrollService(&fakePayrollRepo{}, employees, attendanceRepo)

	resp, err := svc.Generate(testContext(), generateRequest())
	require.NoError(t, err)

	assert.Empty(t, resp.Records)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, "emp-1", resp.Failures[0].EmployeeID)
	assert.Equal(t, payroll.ErrEmployeeHasNoDailyRate.Error(), resp.Failures[0].Reason)
}

func TestGenerate_FiltersByEmployeeIDs(t *testing.T) {
	t.Parallel()

	attendanceRepo := &fakeAttendanceRepo{entries: []attendance.Entry{
		entry("emp-1", "26"),
		entry("emp-2", "22"),
	}}
	svc := NewPayrollService(&fakePayrollRepo{}, roster(), attendanceRepo)

	req := generateRequest()
	req.EmployeeIDs = []string{"emp-2"}
	resp, err := svc.Generate(testContext(), req)
	require.NoError(t, err)

	require.Len(t, resp.Records, 1)
	assert.Equal(t, "emp-2", resp.Records[0].EmployeeID)
}

func TestGenerate_InvalidPeriod(t *testing.T) {
	t.Parallel()

	svc := NewPayrollService(&fakePayrollRepo{}, roster(), &fakeAttendanceRepo{})

	_, err := svc.Generate(testContext(), payroll.GeneratePayrollRequest{PeriodMonth: 0, PeriodYear: 2025})
	assert.Error(t, err)
}

// ===== STATUS AND DELETE TESTS =====

func TestMarkPaidThenDeleteIsRejected(t *testing.T) {
	t.Parallel()

	repo := &fakePayrollRepo{}
	attendanceRepo := &fakeAttendanceRepo{entries: []attendance.Entry{entry("emp-1", "26")}}
	svc := NewPayrollService(repo, roster(), attendanceRepo)

	resp, err := svc.Generate(testContext(), generateRequest())
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	recordID := resp.Records[0].ID

	err = svc.MarkPaid(testContext(), payroll.SetPaymentStatusRequest{RecordIDs: []string{recordID}})
	require.NoError(t, err)

	err = svc.DeleteRecord(testContext(), recordID)
	assert.ErrorIs(t, err, payroll.ErrCannotDeletePaidRecord)

	// Unpaid records delete fine.
	err = svc.MarkUnpaid(testContext(), payroll.SetPaymentStatusRequest{RecordIDs: []string{recordID}})
	require.NoError(t, err)
	assert.NoError(t, svc.DeleteRecord(testContext(), recordID))
}

func TestMarkPaid_RequiresRecordIDs(t *testing.T) {
	t.Parallel()

	svc := NewPayrollService(&fakePayrollRepo{}, roster(), &fakeAttendanceRepo{})

	err := svc.MarkPaid(testContext(), payroll.SetPaymentStatusRequest{})
	assert.Error(t, err)
}
