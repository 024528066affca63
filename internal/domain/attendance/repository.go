package attendance

import (
	"context"

	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
)

// AttendanceRepository defines data access methods for attendance entries.
// All methods include companyID parameter to prevent cross-company data access.
type AttendanceRepository interface {
	// UpsertEntries persists a batch of entries in one transaction: a sheet
	// import lands completely or not at all.
	UpsertEntries(ctx context.Context, entries []Entry) ([]Entry, error)
	ListByPeriod(ctx context.Context, companyID string, period payroll.Period) ([]Entry, error)
	DeleteEntry(ctx context.Context, id string, companyID string) error
}

// AttendanceService defines attendance operations exposed to handlers.
type AttendanceService interface {
	ImportRows(ctx context.Context, req ImportRequest) (ImportResponse, error)
	ListByPeriod(ctx context.Context, month, year int) ([]EntryResponse, error)
	DeleteEntry(ctx context.Context, id string) error
}
