package payroll

import "context"

// PayrollRepository defines data access methods for payroll.
// All methods include companyID parameter to prevent cross-company data access.
type PayrollRepository interface {
	// Settings
	GetSettings(ctx context.Context, companyID string) (PayrollSettings, error)
	UpsertSettings(ctx context.Context, settings PayrollSettings) (PayrollSettings, error)

	// Payroll Records
	CreatePayrollRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetPayrollRecordByID(ctx context.Context, id string, companyID string) (PayrollRecord, error)
	GetPayrollRecordByEmployeePeriod(ctx context.Context, employeeID string, period Period, companyID string) (PayrollRecord, error)
	ListPayrollRecords(ctx context.Context, companyID string, filter PayrollFilter) ([]PayrollRecord, int64, error)
	SetPaymentStatus(ctx context.Context, ids []string, status PaymentStatus, companyID string) error
	DeletePayrollRecord(ctx context.Context, id string, companyID string) error

	// Aggregations
	ListPeriods(ctx context.Context, companyID string) ([]Period, error)
	GetPeriodTotals(ctx context.Context, companyID string, period Period) (PeriodTotals, error)
	GetPayrollSummary(ctx context.Context, companyID string, period Period) (PayrollSummaryResponse, error)
}

// PayrollService defines payroll operations exposed to handlers.
type PayrollService interface {
	GetSettings(ctx context.Context) (PayrollSettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdatePayrollSettingsRequest) (PayrollSettingsResponse, error)

	Generate(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListRecords(ctx context.Context, filter PayrollFilter) (ListPayrollRecordResponse, error)
	MarkPaid(ctx context.Context, req SetPaymentStatusRequest) error
	MarkUnpaid(ctx context.Context, req SetPaymentStatusRequest) error
	DeleteRecord(ctx context.Context, id string) error

	GetSummary(ctx context.Context, month, year int) (PayrollSummaryResponse, error)
}
