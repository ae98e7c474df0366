package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/export"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportRepo struct {
	start, end string
}

func (s *stubReportRepo) AttendanceByEmployee(ctx context.Context, startDate, endDate string) ([]report.AttendanceRow, error) {
	s.start, s.end = startDate, endDate
	eng := "Engineering"
	return []report.AttendanceRow{
		{EmployeeID: "EMP001", EmployeeName: "Priya Sharma", Department: &eng, Present: 20, HalfDay: 1, Leave: 1, TotalMinutes: 9630},
		{EmployeeID: "EMP002", EmployeeName: "Ravi Kumar"},
	}, nil
}

func (s *stubReportRepo) LeavesByEmployee(ctx context.Context, startDate, endDate string) ([]report.LeaveRow, error) {
	s.start, s.end = startDate, endDate
	return []report.LeaveRow{
		{EmployeeID: "EMP001", EmployeeName: "Priya Sharma", Approved: 1, Rejected: 1, ApprovedDays: 3},
	}, nil
}

var (
	hr    = auth.Session{Email: "hr@hrms.com", Role: user.RoleHR}
	priya = auth.Session{Email: "priya@hrms.com", Role: user.RoleEmployee, EmployeeID: "EMP001"}
)

func newReportFixture() (*ReportServiceImpl, *stubReportRepo) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo, time.UTC).(*ReportServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestAttendanceReport(t *testing.T) {
	svc, repo := newReportFixture()

	rep, err := svc.AttendanceReport(context.Background(), hr, report.PeriodRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01", repo.start)
	assert.Equal(t, "2025-02-28", repo.end)
	assert.Equal(t, 2, rep.PeriodMonth)
	assert.Equal(t, 2025, rep.PeriodYear)
	require.Len(t, rep.Employees, 2)
	assert.Equal(t, int64(22), rep.Employees[0].RecordedDays)
	assert.Equal(t, "160:30", rep.Employees[0].TotalHours)
	assert.Equal(t, "00:00", rep.Employees[1].TotalHours)

	_, err = svc.AttendanceReport(context.Background(), priya, report.PeriodRequest{})
	assert.ErrorIs(t, err, auth.ErrForbidden)

	_, err = svc.AttendanceReport(context.Background(), hr, report.PeriodRequest{Month: 13, Year: 1990})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestLeaveReportLeapFebruary(t *testing.T) {
	svc, repo := newReportFixture()

	rep, err := svc.LeaveReport(context.Background(), hr, report.PeriodRequest{Month: 2, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", repo.end)
	require.Len(t, rep.Employees, 1)
	assert.Equal(t, int64(3), rep.Employees[0].ApprovedDays)
}

func TestExportReports(t *testing.T) {
	svc, _ := newReportFixture()
	ctx := context.Background()

	file, err := svc.ExportAttendanceReport(ctx, hr, report.PeriodRequest{Month: 1, Year: 2025}, export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "attendance_report_2025_01.csv", file.Filename)

	rows, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"EMP001", "Priya Sharma", "Engineering", "20", "0", "1", "1", "22", "160:30"}, rows[1])
	assert.Equal(t, "-", rows[2][2])

	file, err = svc.ExportLeaveReport(ctx, hr, report.PeriodRequest{Month: 1, Year: 2025}, export.FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "leave_report_2025_01.xlsx", file.Filename)
	assert.NotEmpty(t, file.Content)

	_, err = svc.ExportLeaveReport(ctx, hr, report.PeriodRequest{}, export.Format("doc"))
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}
