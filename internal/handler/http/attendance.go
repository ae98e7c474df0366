package http

import (
	"net/http"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/export"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	PreviewLocation(w http.ResponseWriter, r *http.Request)
	AutoCheckout(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// parseAttendanceFilter reads the shared query parameters of the list, summary and export routes.
func parseAttendanceFilter(r *http.Request) attendance.AttendanceFilter {
	return attendance.AttendanceFilter{
		EmployeeID: queryString(r, "employeeId"),
		StartDate:  queryString(r, "startDate"),
		EndDate:    queryString(r, "endDate"),
		Status:     queryString(r, "status"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 0),
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req attendance.EventRequest
	if !decodeOptionalJSON(w, r, "CheckIn", &req) {
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), session, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-in recorded", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req attendance.EventRequest
	if !decodeOptionalJSON(w, r, "CheckOut", &req) {
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), session, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out recorded", result)
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req attendance.MarkAttendanceRequest
	if !decodeJSON(w, r, "MarkAttendance", &req) {
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), session, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked successfully", result)
}

// Edit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req attendance.EditAttendanceRequest
	if !decodeJSON(w, r, "EditAttendance", &req) {
		return
	}

	result, err := h.attendanceService.Edit(r.Context(), session, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	results, err := h.attendanceService.List(r.Context(), session, parseAttendanceFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListMine implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	results, err := h.attendanceService.ListMine(r.Context(), session, parseAttendanceFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Summary implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.Summary(r.Context(), session, parseAttendanceFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements AttendanceHandler.
func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	format, err := export.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.attendanceService.Export(r.Context(), session, parseAttendanceFilter(r), format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file)
}

// PreviewLocation implements AttendanceHandler.
func (h *attendanceHandlerImpl) PreviewLocation(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req attendance.LocationInput
	if !decodeJSON(w, r, "PreviewLocation", &req) {
		return
	}

	result, err := h.attendanceService.PreviewLocation(r.Context(), session, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AutoCheckout implements AttendanceHandler. The body is optional; without a
// date the service closes today's open records.
func (h *attendanceHandlerImpl) AutoCheckout(w http.ResponseWriter, r *http.Request) {
	var req attendance.AutoCheckoutRequest
	if !decodeOptionalJSON(w, r, "AutoCheckout", &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date := ""
	if req.Date != nil {
		date = *req.Date
	}

	result, err := h.attendanceService.AutoCheckout(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Open attendance records closed", result)
}
