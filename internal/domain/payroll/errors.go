package payroll

import "errors"

var (
	ErrPayrollSettingsNotFound    = errors.New("payroll settings not found")
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrInvalidPeriod              = errors.New("invalid payroll period")
	ErrEmployeeHasNoDailyRate     = errors.New("employee has no daily rate configured")
	ErrCannotDeletePaidRecord     = errors.New("cannot delete paid payroll record")
)
