package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== SETTINGS ==========

func (r *payrollRepository) GetSettings(ctx context.Context, companyID string) (payroll.PayrollSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, vda_amount, bonus_percent,
			   esi_employee_percent, esi_employer_percent,
			   pf_employee_percent, pf_employer_percent,
			   professional_tax, lwf_employee_contribution, lwf_employer_contribution,
			   created_at, updated_at
		FROM payroll_settings
		WHERE company_id = $1
	`

	var s payroll.PayrollSettings
	err := q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.VDAAmount, &s.BonusPercent,
		&s.ESIEmployeePercent, &s.ESIEmployerPercent,
		&s.PFEmployeePercent, &s.PFEmployerPercent,
		&s.ProfessionalTax, &s.LWFEmployeeContribution, &s.LWFEmployerContribution,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollSettings{}, payroll.ErrPayrollSettingsNotFound
		}
		return payroll.PayrollSettings{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}

	return s, nil
}

func (r *payrollRepository) UpsertSettings(ctx context.Context, settings payroll.PayrollSettings) (payroll.PayrollSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_settings (
			company_id, vda_amount, bonus_percent,
			esi_employee_percent, esi_employer_percent,
			pf_employee_percent, pf_employer_percent,
			professional_tax, lwf_employee_contribution, lwf_employer_contribution
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_id) DO UPDATE SET
			vda_amount = EXCLUDED.vda_amount,
			bonus_percent = EXCLUDED.bonus_percent,
			esi_employee_percent = EXCLUDED.esi_employee_percent,
			esi_employer_percent = EXCLUDED.esi_employer_percent,
			pf_employee_percent = EXCLUDED.pf_employee_percent,
			pf_employer_percent = EXCLUDED.pf_employer_percent,
			professional_tax = EXCLUDED.professional_tax,
			lwf_employee_contribution = EXCLUDED.lwf_employee_contribution,
			lwf_employer_contribution = EXCLUDED.lwf_employer_contribution,
			updated_at = NOW()
		RETURNING id, company_id, vda_amount, bonus_percent,
			esi_employee_percent, esi_employer_percent,
			pf_employee_percent, pf_employer_percent,
			professional_tax, lwf_employee_contribution, lwf_employer_contribution,
			created_at, updated_at
	`

	var s payroll.PayrollSettings
	err := q.QueryRow(ctx, query,
		settings.CompanyID, settings.VDAAmount, settings.BonusPercent,
		settings.ESIEmployeePercent, settings.ESIEmployerPercent,
		settings.PFEmployeePercent, settings.PFEmployerPercent,
		settings.ProfessionalTax, settings.LWFEmployeeContribution, settings.LWFEmployerContribution,
	).Scan(
		&s.ID, &s.CompanyID, &s.VDAAmount, &s.BonusPercent,
		&s.ESIEmployeePercent, &s.ESIEmployerPercent,
		&s.PFEmployeePercent, &s.PFEmployerPercent,
		&s.ProfessionalTax, &s.LWFEmployeeContribution, &s.LWFEmployerContribution,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollSettings{}, fmt.Errorf("failed to upsert payroll settings: %w", err)
	}

	return s, nil
}

// ========== PAYROLL RECORDS ==========

const payrollRecordColumns = `pr.id, pr.employee_id, pr.company_id, pr.period_month, pr.period_year,
	pr.daily_rate, pr.attendance_days,
	pr.monthly_salary, pr.vda, pr.paid_leave, pr.bonus, pr.gross_earnings,
	pr.pf_employee, pr.pf_employer, pr.esi_employee, pr.esi_employer,
	pr.professional_tax, pr.lwf_employee, pr.lwf_employer,
	pr.total_deductions, pr.net_salary, pr.ctc,
	pr.status, pr.paid_at, pr.created_at, pr.updated_at,
	e.name as employee_name, e.code as employee_code`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.PeriodMonth, &rec.PeriodYear,
		&rec.DailyRate, &rec.AttendanceDays,
		&rec.Breakdown.MonthlySalary, &rec.Breakdown.VDA, &rec.Breakdown.PaidLeave,
		&rec.Breakdown.Bonus, &rec.Breakdown.GrossEarnings,
		&rec.Breakdown.PFEmployee, &rec.Breakdown.PFEmployer,
		&rec.Breakdown.ESIEmployee, &rec.Breakdown.ESIEmployer,
		&rec.Breakdown.ProfessionalTax, &rec.Breakdown.LWFEmployee, &rec.Breakdown.LWFEmployer,
		&rec.Breakdown.TotalDeductions, &rec.Breakdown.NetSalary, &rec.Breakdown.CTC,
		&rec.Status, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode,
	)
	return rec, err
}

func (r *payrollRepository) CreatePayrollRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO payroll_records (
				employee_id, company_id, period_month, period_year,
				daily_rate, attendance_days,
				monthly_salary, vda, paid_leave, bonus, gross_earnings,
				pf_employee, pf_employer, esi_employee, esi_employer,
				professional_tax, lwf_employee, lwf_employer,
				total_deductions, net_salary, ctc, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
			RETURNING *
		)
		SELECT ` + payrollRecordColumns + `
		FROM inserted pr
		JOIN employees e ON pr.employee_id = e.id
	`

	b := record.Breakdown
	rec, err := scanPayrollRecord(q.QueryRow(ctx, query,
		record.EmployeeID, record.CompanyID, record.PeriodMonth, record.PeriodYear,
		record.DailyRate, record.AttendanceDays,
		b.MonthlySalary, b.VDA, b.PaidLeave, b.Bonus, b.GrossEarnings,
		b.PFEmployee, b.PFEmployer, b.ESIEmployee, b.ESIEmployer,
		b.ProfessionalTax, b.LWFEmployee, b.LWFEmployer,
		b.TotalDeductions, b.NetSalary, b.CTC, record.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_record_employee_period") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetPayrollRecordByID(ctx context.Context, id string, companyID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.id = $1 AND pr.company_id = $2
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetPayrollRecordByEmployeePeriod(ctx context.Context, employeeID string, period payroll.Period, companyID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.employee_id = $1 AND pr.period_month = $2 AND pr.period_year = $3 AND pr.company_id = $4
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, int(period.Month), period.Year, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) ListPayrollRecords(ctx context.Context, companyID string, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.company_id = $1
	`
	args := []interface{}{companyID}
	argIdx := 2

	if filter.PeriodMonth != nil {
		baseQuery += fmt.Sprintf(" AND pr.period_month = $%d", argIdx)
		args = append(args, *filter.PeriodMonth)
		argIdx++
	}
	if filter.PeriodYear != nil {
		baseQuery += fmt.Sprintf(" AND pr.period_year = $%d", argIdx)
		args = append(args, *filter.PeriodYear)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND pr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND pr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Search != nil {
		baseQuery += fmt.Sprintf(" AND (e.name ILIKE $%d OR e.code ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	// Count query
	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	// Sort
	sortColumn := "pr.created_at"
	if filter.SortBy != "" {
		allowedColumns := map[string]string{
			"created_at":    "pr.created_at",
			"period":        "pr.period_year DESC, pr.period_month",
			"employee_name": "e.name",
			"net_salary":    "pr.net_salary",
		}
		if col, ok := allowedColumns[filter.SortBy]; ok {
			sortColumn = col
		}
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	// Pagination
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, payrollRecordColumns, baseQuery, sortColumn, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, nil
}

func (r *payrollRepository) SetPaymentStatus(ctx context.Context, ids []string, status payroll.PaymentStatus, companyID string) error {
	q := GetQuerier(ctx, r.db)

	// paid_at follows the status: stamped on paid, cleared on unpaid.
	query := `
		UPDATE payroll_records
		SET status = $1,
			paid_at = CASE WHEN $1 = 'paid' THEN NOW() ELSE NULL END,
			updated_at = NOW()
		WHERE id = ANY($2) AND company_id = $3
	`

	tag, err := q.Exec(ctx, query, string(status), ids, companyID)
	if err != nil {
		return fmt.Errorf("failed to set payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}

func (r *payrollRepository) DeletePayrollRecord(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}

// ========== AGGREGATIONS ==========

func (r *payrollRepository) ListPeriods(ctx context.Context, companyID string) ([]payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT period_month, period_year
		FROM payroll_records
		WHERE company_id = $1
		ORDER BY period_year DESC, period_month DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.Period
	for rows.Next() {
		var month, year int
		if err := rows.Scan(&month, &year); err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		period, err := payroll.NewPeriod(month, year)
		if err != nil {
			return nil, fmt.Errorf("invalid period in payroll records: %w", err)
		}
		periods = append(periods, period)
	}

	return periods, nil
}

func (r *payrollRepository) GetPeriodTotals(ctx context.Context, companyID string, period payroll.Period) (payroll.PeriodTotals, error) {
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
		return payroll.PeriodTotals{}, fmt.Errorf("failed to get period totals: %w", err)
	}

	totals.AverageNetSalary = decimal.Zero
	if totals.EmployeeCount > 0 {
		totals.AverageNetSalary = totals.TotalNetSalary.Div(decimal.NewFromInt(int64(totals.EmployeeCount)))
	}

	return totals, nil
}

func (r *payrollRepository) GetPayrollSummary(ctx context.Context, companyID string, period payroll.Period) (payroll.PayrollSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(gross_earnings), 0),
			   COALESCE(SUM(total_deductions), 0),
			   COALESCE(SUM(net_salary), 0),
			   COALESCE(SUM(ctc), 0),
			   COUNT(*) FILTER (WHERE status = 'paid'),
			   COUNT(*) FILTER (WHERE status = 'unpaid')
		FROM payroll_records
		WHERE company_id = $1 AND period_month = $2 AND period_year = $3
	`

	summary := payroll.PayrollSummaryResponse{
		PeriodMonth: int(period.Month),
		PeriodYear:  period.Year,
	}
	err := q.QueryRow(ctx, query, companyID, int(period.Month), period.Year).Scan(
		&summary.TotalEmployees,
		&summary.TotalGross,
		&summary.TotalDeductions,
		&summary.TotalNetSalary,
		&summary.TotalCTC,
		&summary.PaidCount,
		&summary.UnpaidCount,
	)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	summary.AverageNetSalary = decimal.Zero
	if summary.TotalEmployees > 0 {
		summary.AverageNetSalary = summary.TotalNetSalary.Div(decimal.NewFromInt(int64(summary.TotalEmployees)))
	}

	return summary, nil
}
