package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const payslipColumns = `payslip_id, employee_id, full_name, email, month_year,
	basic_salary, hra, allowance, deduction, generated_by, generated_at`

type payslipRepositoryImpl struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepositoryImpl{db: db}
}

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.PayslipID,
		&p.EmployeeID,
		&p.FullName,
		&p.Email,
		&p.MonthYear,
		&p.BasicSalary,
		&p.HRA,
		&p.Allowance,
		&p.Deduction,
		&p.GeneratedBy,
		&p.GeneratedAt,
	)
	return p, err
}

// Create implements payroll.PayslipRepository.
func (r *payslipRepositoryImpl) Create(ctx context.Context, payslip payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (payslip_id, employee_id, full_name, email, month_year,
			basic_salary, hra, allowance, deduction, generated_by, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + payslipColumns

	created, err := scanPayslip(q.QueryRow(ctx, query,
		payslip.PayslipID,
		payslip.EmployeeID,
		payslip.FullName,
		payslip.Email,
		payslip.MonthYear,
		payslip.BasicSalary,
		payslip.HRA,
		payslip.Allowance,
		payslip.Deduction,
		payslip.GeneratedBy,
		payslip.GeneratedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return payroll.Payslip{}, payroll.ErrPayslipAlreadyExists
		}
		return payroll.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}
	return created, nil
}

// GetByID implements payroll.PayslipRepository.
func (r *payslipRepositoryImpl) GetByID(ctx context.Context, payslipID string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPayslip(q.QueryRow(ctx, `SELECT `+payslipColumns+` FROM payslips WHERE payslip_id = $1`, payslipID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip %s: %w", payslipID, err)
	}
	return p, nil
}

// ListByEmployee implements payroll.PayslipRepository.
func (r *payslipRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+payslipColumns+` FROM payslips WHERE employee_id = $1 ORDER BY generated_at DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}
	return payslips, rows.Err()
}

// ExistsByEmployeeMonth implements payroll.PayslipRepository.
func (r *payslipRepositoryImpl) ExistsByEmployeeMonth(ctx context.Context, employeeID, monthYear string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payslips WHERE employee_id = $1 AND month_year = $2)`,
		employeeID, monthYear).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// DeleteByEmployeeMonth implements payroll.PayslipRepository.
func (r *payslipRepositoryImpl) DeleteByEmployeeMonth(ctx context.Context, employeeID, monthYear string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslips WHERE employee_id = $1 AND month_year = $2`, employeeID, monthYear)
	if err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}
	return nil
}
