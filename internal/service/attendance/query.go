package attendance

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/export"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/pagination"
)

// ExportHeaders are the columns of every attendance export.
var ExportHeaders = []string{
	"Employee ID",
	"Employee Name",
	"Date",
	"Status",
	"Check-In",
	"Check-Out",
	"Total Hours",
	"Check-In Office",
	"Check-In Distance (m)",
	"Check-Out Office",
	"Check-Out Distance (m)",
}

const unknownEmployeeName = "Unknown"

// ListMine implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMine(ctx context.Context, session auth.Session, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if !session.IsEmployee() {
		return attendance.ListAttendanceResponse{}, auth.ErrForbidden
	}
	filter.EmployeeID = &session.EmployeeID

	return a.list(ctx, filter)
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, session auth.Session, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if !session.Can(user.PermissionAttendanceViewAll) {
		return attendance.ListAttendanceResponse{}, auth.ErrForbidden
	}

	return a.list(ctx, filter)
}

func (a *AttendanceServiceImpl) list(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(true); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, attendance.Backend("list records", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toListResponse(r))
	}

	return attendance.ListAttendanceResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: pagination.TotalPages(filter.Limit, total),
		Showing:    pagination.Showing(filter.Page, filter.Limit, total),
		Records:    responses,
	}, nil
}

func toListResponse(r attendance.Record) attendance.RecordResponse {
	resp := attendance.NewRecordResponse(r)
	if resp.EmployeeName == "" {
		resp.EmployeeName = unknownEmployeeName
	}
	return resp
}

// Summary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Summary(ctx context.Context, session auth.Session, filter attendance.AttendanceFilter) (attendance.SummaryResponse, error) {
	if err := a.scopeFilter(session, &filter); err != nil {
		return attendance.SummaryResponse{}, err
	}
	if err := filter.Validate(false); err != nil {
		return attendance.SummaryResponse{}, err
	}

	counts, err := a.AttendanceRepository.CountByStatus(ctx, filter)
	if err != nil {
		return attendance.SummaryResponse{}, attendance.Backend("count records", err)
	}

	return attendance.NewSummaryResponse(counts), nil
}

// Export implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Export(ctx context.Context, session auth.Session, filter attendance.AttendanceFilter, format export.Format) (export.File, error) {
	if err := a.scopeFilter(session, &filter); err != nil {
		return export.File{}, err
	}
	if err := filter.Validate(false); err != nil {
		return export.File{}, err
	}

	records, _, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return export.File{}, attendance.Backend("list records", err)
	}

	basename := "attendance"
	if session.IsEmployee() {
		basename = "my_attendance_" + session.EmployeeID
	}

	file, err := export.Render(format, basename, a.exportTable(records, filter))
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			return export.File{}, err
		}
		return export.File{}, fmt.Errorf("failed to export attendance: %w", err)
	}
	return file, nil
}

// scopeFilter pins employees to their own records and rejects roles without a view permission.
func (a *AttendanceServiceImpl) scopeFilter(session auth.Session, filter *attendance.AttendanceFilter) error {
	if session.IsEmployee() {
		if filter.EmployeeID != nil && *filter.EmployeeID != session.EmployeeID {
			return auth.ErrForbidden
		}
		filter.EmployeeID = &session.EmployeeID
		return nil
	}
	if !session.Can(user.PermissionAttendanceViewAll) {
		return auth.ErrForbidden
	}
	return nil
}

// exportTable lays out records exactly as stored; totals are never recomputed here.
func (a *AttendanceServiceImpl) exportTable(records []attendance.Record, filter attendance.AttendanceFilter) export.Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		resp := toListResponse(r)
		rows = append(rows, []string{
			resp.EmployeeID,
			resp.EmployeeName,
			resp.Date,
			resp.Status,
			deref(resp.CheckInTime),
			deref(resp.CheckOutTime),
			resp.TotalHours,
			officeName(r.CheckInLocation),
			distance(r.CheckInLocation),
			officeName(r.CheckOutLocation),
			distance(r.CheckOutLocation),
		})
	}

	subtitle := []string{"Generated: " + a.localNow().Format("02 January 2006 15:04")}
	if filter.StartDate != nil || filter.EndDate != nil {
		subtitle = append(subtitle, fmt.Sprintf("Period: %s to %s", orDash(filter.StartDate), orDash(filter.EndDate)))
	}

	return export.Table{
		Title:    "Attendance Report",
		Subtitle: subtitle,
		Headers:  ExportHeaders,
		Rows:     rows,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func officeName(loc *attendance.Location) string {
	if loc == nil || loc.OfficeName == nil {
		return ""
	}
	return *loc.OfficeName
}

func distance(loc *attendance.Location) string {
	if loc == nil || loc.DistanceMeters == nil {
		return ""
	}
	return strconv.FormatFloat(*loc.DistanceMeters, 'f', 2, 64)
}

// PreviewLocation implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PreviewLocation(ctx context.Context, session auth.Session, req attendance.LocationInput) (attendance.PreviewLocationResponse, error) {
	if !session.Can(user.PermissionAttendancePreview) {
		return attendance.PreviewLocationResponse{}, auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return attendance.PreviewLocationResponse{}, err
	}

	gf, err := a.SettingRepository.GetGeoFencing(ctx)
	if err != nil {
		return attendance.PreviewLocationResponse{}, attendance.Backend("load geo-fencing setting", err)
	}
	if !gf.Enabled {
		return attendance.PreviewLocationResponse{
			GeoFencingEnabled: false,
			Allowed:           true,
			Message:           "Geo-fencing is disabled; attendance can be recorded from any location",
		}, nil
	}

	admission, err := a.admit(ctx, &req)
	if err != nil {
		var outOfRange *attendance.OutOfRangeError
		var noOffice *attendance.NoOfficeInRangeError
		switch {
		case errors.As(err, &outOfRange):
			return attendance.PreviewLocationResponse{
				GeoFencingEnabled: true,
				OfficeID:          outOfRange.OfficeID,
				OfficeName:        outOfRange.OfficeName,
				DistanceMeters:    outOfRange.DistanceMeters,
				RadiusMeters:      outOfRange.RadiusMeters,
				Message:           outOfRange.Error(),
			}, nil
		case errors.As(err, &noOffice):
			return attendance.PreviewLocationResponse{
				GeoFencingEnabled: true,
				OfficeID:          noOffice.NearestOfficeID,
				OfficeName:        noOffice.NearestOfficeName,
				DistanceMeters:    noOffice.NearestDistanceMeters,
				RadiusMeters:      noOffice.RadiusMeters,
				Message:           noOffice.Error(),
			}, nil
		}
		return attendance.PreviewLocationResponse{}, err
	}

	return attendance.PreviewLocationResponse{
		GeoFencingEnabled: true,
		Allowed:           true,
		OfficeID:          admission.OfficeID,
		OfficeName:        admission.OfficeName,
		DistanceMeters:    admission.DistanceMeters,
		RadiusMeters:      admission.RadiusMeters,
		Message:           fmt.Sprintf("You are %.2fm from %s (allowed %.0fm)", admission.DistanceMeters, admission.OfficeName, admission.RadiusMeters),
	}, nil
}
