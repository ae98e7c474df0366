package report

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/export"
)

type ReportServiceImpl struct {
	report.ReportRepository
	location *time.Location
	now      func() time.Time
}

func NewReportService(reportRepo report.ReportRepository, location *time.Location) report.ReportService {
	if location == nil {
		location = time.UTC
	}
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
		location:         location,
		now:              time.Now,
	}
}

func (s *ReportServiceImpl) period(req report.PeriodRequest) report.Period {
	start, end := req.Bounds()
	return report.Period{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: start,
		PeriodEnd:   end,
		GeneratedAt: s.now().In(s.location).Format(time.RFC3339),
	}
}

// AttendanceReport generates the monthly attendance report
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, session auth.Session, req report.PeriodRequest) (report.AttendanceReport, error) {
	if !session.Can(user.PermissionReportsView) {
		return report.AttendanceReport{}, auth.ErrForbidden
	}
	if err := req.Validate(s.now().In(s.location)); err != nil {
		return report.AttendanceReport{}, err
	}

	period := s.period(req)
	rows, err := s.ReportRepository.AttendanceByEmployee(ctx, period.PeriodStart, period.PeriodEnd)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to get attendance data: %w", err)
	}

	employees := make([]report.AttendanceReportEmployee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, report.NewAttendanceReportEmployee(row))
	}

	return report.AttendanceReport{Period: period, Employees: employees}, nil
}

// ExportAttendanceReport renders the attendance report as a file
func (s *ReportServiceImpl) ExportAttendanceReport(ctx context.Context, session auth.Session, req report.PeriodRequest, format export.Format) (export.File, error) {
	rep, err := s.AttendanceReport(ctx, session, req)
	if err != nil {
		return export.File{}, err
	}

	table := export.Table{
		Title:    "Monthly Attendance Report",
		Subtitle: periodSubtitle(rep.Period),
		Headers:  []string{"Employee ID", "Employee Name", "Department", "Present", "Absent", "Half-Day", "Leave", "Recorded Days", "Total Hours"},
	}
	for _, e := range rep.Employees {
		table.Rows = append(table.Rows, []string{
			e.EmployeeID,
			e.EmployeeName,
			orDash(e.Department),
			itoa(e.Present),
			itoa(e.Absent),
			itoa(e.HalfDay),
			itoa(e.Leave),
			itoa(e.RecordedDays),
			e.TotalHours,
		})
	}

	return render(format, fmt.Sprintf("attendance_report_%04d_%02d", rep.PeriodYear, rep.PeriodMonth), table)
}

// LeaveReport generates the monthly leave report
func (s *ReportServiceImpl) LeaveReport(ctx context.Context, session auth.Session, req report.PeriodRequest) (report.LeaveReport, error) {
	if !session.Can(user.PermissionReportsView) {
		return report.LeaveReport{}, auth.ErrForbidden
	}
	if err := req.Validate(s.now().In(s.location)); err != nil {
		return report.LeaveReport{}, err
	}

	period := s.period(req)
	rows, err := s.ReportRepository.LeavesByEmployee(ctx, period.PeriodStart, period.PeriodEnd)
	if err != nil {
		return report.LeaveReport{}, fmt.Errorf("failed to get leave data: %w", err)
	}

	employees := make([]report.LeaveReportEmployee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, report.NewLeaveReportEmployee(row))
	}

	return report.LeaveReport{Period: period, Employees: employees}, nil
}

// ExportLeaveReport renders the leave report as a file
func (s *ReportServiceImpl) ExportLeaveReport(ctx context.Context, session auth.Session, req report.PeriodRequest, format export.Format) (export.File, error) {
	rep, err := s.LeaveReport(ctx, session, req)
	if err != nil {
		return export.File{}, err
	}

	table := export.Table{
		Title:    "Monthly Leave Report",
		Subtitle: periodSubtitle(rep.Period),
		Headers:  []string{"Employee ID", "Employee Name", "Department", "Pending", "Approved", "Rejected", "Approved Days"},
	}
	for _, e := range rep.Employees {
		table.Rows = append(table.Rows, []string{
			e.EmployeeID,
			e.EmployeeName,
			orDash(e.Department),
			itoa(e.Pending),
			itoa(e.Approved),
			itoa(e.Rejected),
			itoa(e.ApprovedDays),
		})
	}

	return render(format, fmt.Sprintf("leave_report_%04d_%02d", rep.PeriodYear, rep.PeriodMonth), table)
}

func render(format export.Format, basename string, table export.Table) (export.File, error) {
	file, err := export.Render(format, basename, table)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			return export.File{}, err
		}
		return export.File{}, fmt.Errorf("failed to export report: %w", err)
	}
	return file, nil
}

func periodSubtitle(p report.Period) []string {
	return []string{
		"Period: " + p.PeriodStart + " to " + p.PeriodEnd,
		"Generated: " + p.GeneratedAt,
	}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
