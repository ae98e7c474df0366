package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// Overview returns every admin card in one response, queried in parallel
	Overview(ctx context.Context, session auth.Session) (OverviewResponse, error)

	TotalEmployees(ctx context.Context, session auth.Session) (TotalEmployeesResponse, error)

	// TodayAttendance counts today's records per status in the business timezone
	TodayAttendance(ctx context.Context, session auth.Session) (attendance.SummaryResponse, error)

	PendingLeaves(ctx context.Context, session auth.Session) (PendingLeavesResponse, error)

	// MonthlyAttendance returns per-day status counts for the last 30 days
	MonthlyAttendance(ctx context.Context, session auth.Session) ([]DailyAttendanceResponse, error)

	// EmployeeSummary returns the calling employee's own attendance and leave counts
	EmployeeSummary(ctx context.Context, session auth.Session) (EmployeeSummaryResponse, error)
}
