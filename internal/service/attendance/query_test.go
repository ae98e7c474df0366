package attendance

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWeek(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	for _, day := range []string{"2025-01-13", "2025-01-14", "2025-01-15"} {
		date := day
		_, err := f.svc.CheckIn(ctx, adminSession(), attendance.EventRequest{EmployeeID: "EMP001", Date: &date, Time: strPtr("09:00")})
		require.NoError(t, err)
		_, err = f.svc.CheckOut(ctx, adminSession(), attendance.EventRequest{EmployeeID: "EMP001", Date: &date, Time: strPtr("17:30")})
		require.NoError(t, err)
	}
	_, err := f.svc.Mark(ctx, adminSession(), attendance.MarkAttendanceRequest{EmployeeID: "EMP002", Date: "2025-01-15", Status: "Leave"})
	require.NoError(t, err)
}

func TestListMine_OnlyOwnRecords(t *testing.T) {
	f := newFixture(false)
	seedWeek(t, f)

	other := "EMP002"
	resp, err := f.svc.ListMine(context.Background(), employeeSession("EMP001"), attendance.AttendanceFilter{EmployeeID: &other})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, "1-3 of 3 results", resp.Showing)
	assert.Equal(t, "2025-01-15", resp.Records[0].Date)
	for _, r := range resp.Records {
		assert.Equal(t, "EMP001", r.EmployeeID)
	}

	_, err = f.svc.ListMine(context.Background(), adminSession(), attendance.AttendanceFilter{})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestList_PaginatesAndFillsUnknownNames(t *testing.T) {
	f := newFixture(false)
	seedWeek(t, f)

	resp, err := f.svc.List(context.Background(), hrSession(), attendance.AttendanceFilter{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.TotalCount)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, "4-4 of 4 results", resp.Showing)
	require.Len(t, resp.Records, 1)

	status := "Leave"
	resp, err = f.svc.List(context.Background(), adminSession(), attendance.AttendanceFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "EMP002", resp.Records[0].EmployeeID)
	assert.Equal(t, "Unknown", resp.Records[0].EmployeeName)

	_, err = f.svc.List(context.Background(), employeeSession("EMP001"), attendance.AttendanceFilter{})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestList_RejectsInvertedRange(t *testing.T) {
	f := newFixture(false)

	_, err := f.svc.List(context.Background(), adminSession(), attendance.AttendanceFilter{
		StartDate: strPtr("2025-01-15"),
		EndDate:   strPtr("2025-01-01"),
	})
	assert.Error(t, err)
}

func TestSummary_CountsByStatus(t *testing.T) {
	f := newFixture(false)
	seedWeek(t, f)

	all, err := f.svc.Summary(context.Background(), adminSession(), attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Equal(t, attendance.SummaryResponse{Present: 3, Leave: 1, Total: 4}, all)

	mine, err := f.svc.Summary(context.Background(), employeeSession("EMP002"), attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Equal(t, attendance.SummaryResponse{Leave: 1, Total: 1}, mine)
}

func TestExport_CSVMatchesStoredRecords(t *testing.T) {
	f := newFixture(false)
	seedWeek(t, f)

	file, err := f.svc.Export(context.Background(), adminSession(), attendance.AttendanceFilter{}, export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Contains(t, file.Filename, "attendance")

	rows, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, ExportHeaders, rows[0])
	assert.Equal(t, []string{"EMP001", "Priya Sharma", "2025-01-15", "Present", "09:00", "17:30", "08:30", "", "", "", ""}, rows[1])

	// Paging parameters do not apply to exports.
	file, err = f.svc.Export(context.Background(), adminSession(), attendance.AttendanceFilter{Page: 2, Limit: 500}, export.FormatCSV)
	require.NoError(t, err)
	rows, err = csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}

func TestExport_EmployeeScopeAndFormats(t *testing.T) {
	f := newFixture(false)
	seedWeek(t, f)

	file, err := f.svc.Export(context.Background(), employeeSession("EMP001"), attendance.AttendanceFilter{}, export.FormatXLSX)
	require.NoError(t, err)
	assert.Contains(t, file.Filename, "my_attendance_EMP001")

	other := "EMP002"
	_, err = f.svc.Export(context.Background(), employeeSession("EMP001"), attendance.AttendanceFilter{EmployeeID: &other}, export.FormatPDF)
	assert.ErrorIs(t, err, auth.ErrForbidden)

	_, err = f.svc.Export(context.Background(), adminSession(), attendance.AttendanceFilter{}, export.Format("docx"))
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestPreviewLocation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(true)
	session := employeeSession("EMP001")

	inside, err := f.svc.PreviewLocation(ctx, session, *at(12.9717, 77.5947))
	require.NoError(t, err)
	assert.True(t, inside.Allowed)
	assert.Equal(t, "BLR", inside.OfficeID)

	outside, err := f.svc.PreviewLocation(ctx, session, *at(12.9900, 77.5946))
	require.NoError(t, err)
	assert.False(t, outside.Allowed)
	assert.Equal(t, "BLR", outside.OfficeID)
	assert.Greater(t, outside.DistanceMeters, 300.0)

	f.settings.gf.Enabled = false
	disabled, err := f.svc.PreviewLocation(ctx, session, attendance.LocationInput{})
	require.NoError(t, err)
	assert.True(t, disabled.Allowed)
	assert.False(t, disabled.GeoFencingEnabled)
	assert.Equal(t, 0, f.records.upserts)
}
