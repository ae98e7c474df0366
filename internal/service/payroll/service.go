package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/export"
)

type PayrollServiceImpl struct {
	payroll.PayslipRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewPayrollService(payslipRepository payroll.PayslipRepository, employeeRepository employee.EmployeeRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayslipRepository:  payslipRepository,
		EmployeeRepository: employeeRepository,
		now:                time.Now,
	}
}

// Generate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Generate(ctx context.Context, session auth.Session, req payroll.GeneratePayslipRequest) (payroll.PayslipResponse, error) {
	if !session.Can(user.PermissionPayslipManage) {
		return payroll.PayslipResponse{}, auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PayslipResponse{}, err
		}
		return payroll.PayslipResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	monthYear := payroll.MonthYear(req.ParsedMonth, req.Year)
	exists, err := s.PayslipRepository.ExistsByEmployeeMonth(ctx, emp.EmployeeID, monthYear)
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("failed to check existing payslip: %w", err)
	}
	if exists {
		return payroll.PayslipResponse{}, payroll.ErrPayslipAlreadyExists
	}

	basic := emp.Salary
	if req.BasicSalary != nil {
		basic = *req.BasicSalary
	}

	created, err := s.PayslipRepository.Create(ctx, payroll.Payslip{
		PayslipID:   payroll.PayslipID(emp.EmployeeID, req.ParsedMonth, req.Year),
		EmployeeID:  emp.EmployeeID,
		FullName:    emp.FullName,
		Email:       emp.Email,
		MonthYear:   monthYear,
		BasicSalary: basic,
		HRA:         req.HRA,
		Allowance:   req.Allowance,
		Deduction:   req.Deduction,
		GeneratedBy: session.Email,
		GeneratedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, payroll.ErrPayslipAlreadyExists) {
			return payroll.PayslipResponse{}, err
		}
		return payroll.PayslipResponse{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	slog.Info("Payslip generated", "payslip_id", created.PayslipID, "employee_id", created.EmployeeID, "by", session.Email)
	return payroll.NewPayslipResponse(created), nil
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, session auth.Session, employeeID, month string, year int) error {
	if !session.Can(user.PermissionPayslipManage) {
		return auth.ErrForbidden
	}
	m, ok := payroll.ParseMonth(month)
	if !ok || year < 2000 || year > 2100 {
		return payroll.ErrInvalidPeriod
	}

	if err := s.PayslipRepository.DeleteByEmployeeMonth(ctx, employeeID, payroll.MonthYear(m, year)); err != nil {
		if errors.Is(err, payroll.ErrPayslipNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete payslip: %w", err)
	}

	slog.Info("Payslip deleted", "employee_id", employeeID, "month_year", payroll.MonthYear(m, year), "by", session.Email)
	return nil
}

// ListForEmployee implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListForEmployee(ctx context.Context, session auth.Session, employeeID string) ([]payroll.PayslipResponse, error) {
	if !session.Can(user.PermissionPayslipManage) {
		return nil, auth.ErrForbidden
	}
	return s.list(ctx, employeeID)
}

// ListMine implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListMine(ctx context.Context, session auth.Session) ([]payroll.PayslipResponse, error) {
	if !session.Can(user.PermissionPayslipViewOwn) || session.EmployeeID == "" {
		return nil, auth.ErrForbidden
	}
	return s.list(ctx, session.EmployeeID)
}

func (s *PayrollServiceImpl) list(ctx context.Context, employeeID string) ([]payroll.PayslipResponse, error) {
	payslips, err := s.PayslipRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}

	responses := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		responses = append(responses, payroll.NewPayslipResponse(p))
	}
	return responses, nil
}

// PDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) PDF(ctx context.Context, session auth.Session, payslipID string) (export.File, error) {
	p, err := s.PayslipRepository.GetByID(ctx, payslipID)
	if err != nil {
		if errors.Is(err, payroll.ErrPayslipNotFound) {
			return export.File{}, err
		}
		return export.File{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	owner := session.IsEmployee() && session.EmployeeID == p.EmployeeID
	if !owner && !session.Can(user.PermissionPayslipManage) {
		return export.File{}, auth.ErrForbidden
	}

	file, err := export.Render(export.FormatPDF, p.PayslipID, payslipTable(p))
	if err != nil {
		return export.File{}, fmt.Errorf("failed to render payslip: %w", err)
	}
	return file, nil
}

func payslipTable(p payroll.Payslip) export.Table {
	return export.Table{
		Title: "Payslip " + p.MonthYear,
		Subtitle: []string{
			"Employee: " + p.FullName + " (" + p.EmployeeID + ")",
			"Email: " + p.Email,
			"Payslip ID: " + p.PayslipID,
		},
		Headers: []string{"Component", "Amount"},
		Rows: [][]string{
			{"Basic Salary", p.BasicSalary.StringFixed(2)},
			{"HRA", p.HRA.StringFixed(2)},
			{"Allowance", p.Allowance.StringFixed(2)},
			{"Total Earnings", p.TotalEarnings().StringFixed(2)},
			{"Deduction", p.Deduction.StringFixed(2)},
			{"Net Salary", p.NetSalary().StringFixed(2)},
		},
	}
}
