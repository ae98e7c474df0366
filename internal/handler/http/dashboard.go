package http

import (
	"net/http"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// Overview returns every admin card in one response
	Overview(w http.ResponseWriter, r *http.Request)
	TotalEmployees(w http.ResponseWriter, r *http.Request)
	TodayAttendance(w http.ResponseWriter, r *http.Request)
	PendingLeaves(w http.ResponseWriter, r *http.Request)
	// MonthlyAttendance returns per-day counts for the last 30 days
	MonthlyAttendance(w http.ResponseWriter, r *http.Request)
	// EmployeeSummary returns the calling employee's own counts
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// serveDashboard runs one session-scoped dashboard query and writes its result.
func serveDashboard[T any](w http.ResponseWriter, r *http.Request, fn func(auth.Session) (T, error)) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	result, err := fn(session)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Overview handles GET /dashboard
func (h *dashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	serveDashboard(w, r, func(s auth.Session) (dashboard.OverviewResponse, error) {
		return h.dashboardService.Overview(r.Context(), s)
	})
}

// TotalEmployees handles GET /dashboard/total-employees
func (h *dashboardHandlerImpl) TotalEmployees(w http.ResponseWriter, r *http.Request) {
	serveDashboard(w, r, func(s auth.Session) (dashboard.TotalEmployeesResponse, error) {
		return h.dashboardService.TotalEmployees(r.Context(), s)
	})
}

// TodayAttendance handles GET /dashboard/today-attendance
func (h *dashboardHandlerImpl) TodayAttendance(w http.ResponseWriter, r *http.Request) {
	serveDashboard(w, r, func(s auth.Session) (attendance.SummaryResponse, error) {
		return h.dashboardService.TodayAttendance(r.Context(), s)
	})
}

// PendingLeaves handles GET /dashboard/pending-leaves
func (h *dashboardHandlerImpl) PendingLeaves(w http.ResponseWriter, r *http.Request) {
	serveDashboard(w, r, func(s auth.Session) (dashboard.PendingLeavesResponse, error) {
		return h.dashboardService.PendingLeaves(r.Context(), s)
	})
}

// MonthlyAttendance handles GET /dashboard/monthly-attendance
func (h *dashboardHandlerImpl) MonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	serveDashboard(w, r, func(s auth.Session) ([]dashboard.DailyAttendanceResponse, error) {
		return h.dashboardService.MonthlyAttendance(r.Context(), s)
	})
}

// EmployeeSummary handles GET /dashboard/employee-summary
func (h *dashboardHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	serveDashboard(w, r, func(s auth.Session) (dashboard.EmployeeSummaryResponse, error) {
		return h.dashboardService.EmployeeSummary(r.Context(), s)
	})
}
