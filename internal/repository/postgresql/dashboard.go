package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

// AttendanceCountsByDate returns per-status counts per day in single query
func (r *dashboardRepositoryImpl) AttendanceCountsByDate(ctx context.Context, startDate, endDate string) ([]dashboard.DailyAttendanceCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			date::text,
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) as present_count,
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) as absent_count,
			COALESCE(SUM(CASE WHEN status = 'Half-Day' THEN 1 ELSE 0 END), 0) as half_day_count,
			COALESCE(SUM(CASE WHEN status = 'Leave' THEN 1 ELSE 0 END), 0) as leave_count
		FROM attendance
		WHERE date BETWEEN $1::date AND $2::date
		GROUP BY date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to group attendance by date: %w", err)
	}
	defer rows.Close()

	var days []dashboard.DailyAttendanceCounts
	for rows.Next() {
		var (
			date                             string
			present, absent, halfDay, onLeave int64
		)
		if err := rows.Scan(&date, &present, &absent, &halfDay, &onLeave); err != nil {
			return nil, fmt.Errorf("failed to scan daily attendance: %w", err)
		}
		days = append(days, dashboard.DailyAttendanceCounts{
			Date: date,
			Counts: map[attendance.Status]int64{
				attendance.StatusPresent: present,
				attendance.StatusAbsent:  absent,
				attendance.StatusHalfDay: halfDay,
				attendance.StatusLeave:   onLeave,
			},
		})
	}
	return days, rows.Err()
}

// CountPendingLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingLeaves(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var pending int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leaves WHERE status = $1`, leave.StatusPending).Scan(&pending); err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return pending, nil
}

// EmployeeAttendanceCounts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) EmployeeAttendanceCounts(ctx context.Context, employeeID string) (map[attendance.Status]int64, error) {
	return scanStatusCounts[attendance.Status](ctx, GetQuerier(ctx, r.db),
		`SELECT status, COUNT(*) FROM attendance WHERE employee_id = $1 GROUP BY status`, employeeID)
}

// EmployeeLeaveCounts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) EmployeeLeaveCounts(ctx context.Context, employeeID string) (map[leave.Status]int64, error) {
	return scanStatusCounts[leave.Status](ctx, GetQuerier(ctx, r.db),
		`SELECT status, COUNT(*) FROM leaves WHERE employee_id = $1 GROUP BY status`, employeeID)
}
