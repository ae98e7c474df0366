package payroll

import "context"

type PayslipRepository interface {
	// Create returns ErrPayslipAlreadyExists when the employee already has a payslip for the month.
	Create(ctx context.Context, payslip Payslip) (Payslip, error)
	GetByID(ctx context.Context, payslipID string) (Payslip, error)
	// ListByEmployee returns payslips newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	ExistsByEmployeeMonth(ctx context.Context, employeeID, monthYear string) (bool, error)
	DeleteByEmployeeMonth(ctx context.Context, employeeID, monthYear string) error
}
