package http

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	Action(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

func parseLeaveFilter(r *http.Request) leave.LeaveFilter {
	return leave.LeaveFilter{
		EmployeeID: queryString(r, "employeeId"),
		Status:     queryString(r, "status"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}
}

// Apply handles POST /leaves
func (h *leaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req leave.ApplyLeaveRequest
	if !decodeJSON(w, r, "ApplyLeave", &req) {
		return
	}

	result, err := h.leaveService.Apply(r.Context(), session, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", result)
}

// List handles GET /leaves
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.List(r.Context(), session, parseLeaveFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListForEmployee handles GET /leaves/{employeeId}
func (h *leaveHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.ListForEmployee(r.Context(), session, chi.URLParam(r, "employeeId"), parseLeaveFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Action handles PUT /leaves/action/{leaveId}
func (h *leaveHandlerImpl) Action(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req leave.ActionLeaveRequest
	if !decodeJSON(w, r, "ActionLeave", &req) {
		return
	}

	result, err := h.leaveService.Action(r.Context(), session, chi.URLParam(r, "leaveId"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+strings.ToLower(result.Status), result)
}
