package employee

import "context"

// EmployeeRepository defines data access methods for the roster.
// All methods include companyID parameter to prevent cross-company data access.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByCode(ctx context.Context, code string, companyID string) (Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	Update(ctx context.Context, companyID string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string, companyID string) error
}

// EmployeeService defines roster operations exposed to handlers.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
