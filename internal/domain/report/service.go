package report

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/export"
)

// ReportService defines the interface for report generation
type ReportService interface {
	// Monthly attendance totals per employee
	AttendanceReport(ctx context.Context, session auth.Session, req PeriodRequest) (AttendanceReport, error)
	ExportAttendanceReport(ctx context.Context, session auth.Session, req PeriodRequest, format export.Format) (export.File, error)

	// Monthly leave totals per employee
	LeaveReport(ctx context.Context, session auth.Session, req PeriodRequest) (LeaveReport, error)
	ExportLeaveReport(ctx context.Context, session auth.Session, req PeriodRequest, format export.Format) (export.File, error)
}
