package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// AttendanceByEmployee retrieves per-employee attendance totals for a date range
func (r *reportRepositoryImpl) AttendanceByEmployee(ctx context.Context, startDate, endDate string) ([]report.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.employee_id,
			e.full_name,
			e.department,
			COALESCE(SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END), 0) as present_count,
			COALESCE(SUM(CASE WHEN a.status = 'Absent' THEN 1 ELSE 0 END), 0) as absent_count,
			COALESCE(SUM(CASE WHEN a.status = 'Half-Day' THEN 1 ELSE 0 END), 0) as half_day_count,
			COALESCE(SUM(CASE WHEN a.status = 'Leave' THEN 1 ELSE 0 END), 0) as leave_count,
			COALESCE(SUM(a.total_minutes), 0) as total_minutes
		FROM employees e
		LEFT JOIN attendance a ON a.employee_id = e.employee_id
			AND a.date >= $1::date AND a.date <= $2::date
		GROUP BY e.employee_id, e.full_name, e.department
		ORDER BY e.employee_id ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance report: %w", err)
	}
	defer rows.Close()

	var result []report.AttendanceRow
	for rows.Next() {
		var row report.AttendanceRow
		if err := rows.Scan(
			&row.EmployeeID,
			&row.EmployeeName,
			&row.Department,
			&row.Present,
			&row.Absent,
			&row.HalfDay,
			&row.Leave,
			&row.TotalMinutes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance report row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// LeavesByEmployee retrieves per-employee leave totals for leaves overlapping a date range
func (r *reportRepositoryImpl) LeavesByEmployee(ctx context.Context, startDate, endDate string) ([]report.LeaveRow, error) {
	q := GetQuerier(ctx, r.db)

	// Approved days are clipped to the period so a leave spanning two months
	// is split between their reports.
	query := `
		SELECT
			e.employee_id,
			e.full_name,
			e.department,
			COALESCE(SUM(CASE WHEN l.status = 'PENDING' THEN 1 ELSE 0 END), 0) as pending_count,
			COALESCE(SUM(CASE WHEN l.status = 'APPROVED' THEN 1 ELSE 0 END), 0) as approved_count,
			COALESCE(SUM(CASE WHEN l.status = 'REJECTED' THEN 1 ELSE 0 END), 0) as rejected_count,
			COALESCE(SUM(CASE WHEN l.status = 'APPROVED'
				THEN LEAST(l.end_date, $2::date) - GREATEST(l.start_date, $1::date) + 1
				ELSE 0 END), 0) as approved_days
		FROM employees e
		LEFT JOIN leaves l ON l.employee_id = e.employee_id
			AND l.start_date <= $2::date AND l.end_date >= $1::date
		GROUP BY e.employee_id, e.full_name, e.department
		ORDER BY e.employee_id ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave report: %w", err)
	}
	defer rows.Close()

	var result []report.LeaveRow
	for rows.Next() {
		var row report.LeaveRow
		if err := rows.Scan(
			&row.EmployeeID,
			&row.EmployeeName,
			&row.Department,
			&row.Pending,
			&row.Approved,
			&row.Rejected,
			&row.ApprovedDays,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave report row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
