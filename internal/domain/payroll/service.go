package payroll

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/export"
)

type PayrollService interface {
	Generate(ctx context.Context, session auth.Session, req GeneratePayslipRequest) (PayslipResponse, error)
	Delete(ctx context.Context, session auth.Session, employeeID, month string, year int) error
	ListForEmployee(ctx context.Context, session auth.Session, employeeID string) ([]PayslipResponse, error)
	ListMine(ctx context.Context, session auth.Session) ([]PayslipResponse, error)
	// PDF renders a payslip for its owner or for ADMIN/HR.
	PDF(ctx context.Context, session auth.Session, payslipID string) (export.File, error)
}
