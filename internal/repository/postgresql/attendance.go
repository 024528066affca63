package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wagedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) UpsertEntries(ctx context.Context, entries []attendance.Entry) ([]attendance.Entry, error) {
	persisted := make([]attendance.Entry, 0, len(entries))

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, entry := range entries {
			e, err := r.upsertEntry(txCtx, entry)
			if err != nil {
				return err
			}
			persisted = append(persisted, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return persisted, nil
}

func (r *attendanceRepository) upsertEntry(ctx context.Context, entry attendance.Entry) (attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	// Re-importing a sheet replaces the period's entry for that employee.
	query := `
		INSERT INTO attendance_entries (company_id, employee_id, period_month, period_year, days, daily_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id, employee_id, period_month, period_year) DO UPDATE SET
			days = EXCLUDED.days,
			daily_rate = EXCLUDED.daily_rate,
			updated_at = NOW()
		RETURNING id, company_id, employee_id, period_month, period_year, days, daily_rate, created_at, updated_at
	`

	var e attendance.Entry
	err := q.QueryRow(ctx, query,
		entry.CompanyID, entry.EmployeeID, entry.PeriodMonth, entry.PeriodYear, entry.Days, entry.DailyRate,
	).Scan(
		&e.ID, &e.CompanyID, &e.EmployeeID, &e.PeriodMonth, &e.PeriodYear, &e.Days, &e.DailyRate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return attendance.Entry{}, fmt.Errorf("failed to upsert attendance entry: %w", err)
	}

	return e, nil
}

func (r *attendanceRepository) ListByPeriod(ctx context.Context, companyID string, period payroll.Period) ([]attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ae.id, ae.company_id, ae.employee_id, ae.period_month, ae.period_year,
			   ae.days, ae.daily_rate, ae.created_at, ae.updated_at,
			   e.name as employee_name, e.code as employee_code
		FROM attendance_entries ae
		JOIN employees e ON ae.employee_id = e.id
		WHERE ae.company_id = $1 AND ae.period_month = $2 AND ae.period_year = $3
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, companyID, int(period.Month), period.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.Entry
	for rows.Next() {
		var e attendance.Entry
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.EmployeeID, &e.PeriodMonth, &e.PeriodYear,
			&e.Days, &e.DailyRate, &e.CreatedAt, &e.UpdatedAt,
			&e.EmployeeName, &e.EmployeeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *attendanceRepository) DeleteEntry(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_entries WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEntryNotFound
	}

	return nil
}
