package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
)

// DailyAttendanceCounts holds per-status counts of one calendar day.
type DailyAttendanceCounts struct {
	Date   string // YYYY-MM-DD
	Counts map[attendance.Status]int64
}

// DashboardRepository runs the aggregate queries behind the dashboard cards.
type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)

	// AttendanceCountsByDate groups records between startDate and endDate inclusive,
	// oldest day first. Days without records are omitted.
	AttendanceCountsByDate(ctx context.Context, startDate, endDate string) ([]DailyAttendanceCounts, error)

	CountPendingLeaves(ctx context.Context) (int64, error)

	EmployeeAttendanceCounts(ctx context.Context, employeeID string) (map[attendance.Status]int64, error)
	EmployeeLeaveCounts(ctx context.Context, employeeID string) (map[leave.Status]int64, error)
}
