package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, employeeID string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (Employee, error)
	UpdatePassword(ctx context.Context, employeeID, passwordHash string) error
	// Delete removes the employee; attendance, leaves and payslips cascade.
	Delete(ctx context.Context, employeeID string) error
	ExistsByID(ctx context.Context, employeeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
