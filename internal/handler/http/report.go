package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/hrms-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/export"
)

type ReportHandler interface {
	// Monthly Attendance Report; ?format=csv|xlsx|pdf downloads it
	AttendanceReport(w http.ResponseWriter, r *http.Request)

	// Monthly Leave Report; ?format=csv|xlsx|pdf downloads it
	LeaveReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// parsePeriod reads month and year; both are optional and default to the current month.
func parsePeriod(w http.ResponseWriter, r *http.Request) (report.PeriodRequest, bool) {
	var req report.PeriodRequest

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			response.BadRequest(w, "invalid month parameter", nil)
			return req, false
		}
		req.Month = month
	}

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "invalid year parameter", nil)
			return req, false
		}
		req.Year = year
	}

	return req, true
}

// serveReport writes the JSON report, or the rendered file when ?format is present.
func serveReport[T any](
	w http.ResponseWriter,
	r *http.Request,
	build func(auth.Session, report.PeriodRequest) (T, error),
	render func(auth.Session, report.PeriodRequest, export.Format) (export.File, error),
) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	req, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	if formatStr := r.URL.Query().Get("format"); formatStr != "" {
		format, err := export.ParseFormat(formatStr)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		file, err := render(session, req, format)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.File(w, file)
		return
	}

	result, err := build(session, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AttendanceReport handles GET /reports/attendance
func (h *reportHandlerImpl) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serveReport(w, r,
		func(s auth.Session, req report.PeriodRequest) (report.AttendanceReport, error) {
			return h.reportService.AttendanceReport(ctx, s, req)
		},
		func(s auth.Session, req report.PeriodRequest, f export.Format) (export.File, error) {
			return h.reportService.ExportAttendanceReport(ctx, s, req, f)
		},
	)
}

// LeaveReport handles GET /reports/leaves
func (h *reportHandlerImpl) LeaveReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serveReport(w, r,
		func(s auth.Session, req report.PeriodRequest) (report.LeaveReport, error) {
			return h.reportService.LeaveReport(ctx, s, req)
		},
		func(s auth.Session, req report.PeriodRequest, f export.Format) (export.File, error) {
			return h.reportService.ExportLeaveReport(ctx, s, req, f)
		},
	)
}
