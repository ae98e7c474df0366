package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hrms-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the transport settings of NewRouter.
type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
}

// Handlers groups every HTTP handler the API mounts.
type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
	Office     OfficeHandler
	Payroll    PayrollHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	perm := middleware.RequirePermission

	r.Route("/api", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", h.Auth.Me)
				r.Post("/logout", h.Auth.Logout)
			})

			r.Route("/users", func(r chi.Router) {
				r.With(perm(user.PermissionUserView)).Get("/", h.User.List)
				r.With(perm(user.PermissionUserManage)).Post("/", h.User.Create)
				r.Put("/change-password", h.User.ChangePassword)
				r.With(perm(user.PermissionUserManage)).Put("/reset-password/{email}", h.User.ResetPassword)
				r.With(perm(user.PermissionUserManage)).Put("/{email}", h.User.Update)
				r.With(perm(user.PermissionUserManage)).Delete("/{email}", h.User.Delete)
			})

			r.Route("/profile/me", func(r chi.Router) {
				r.With(perm(user.PermissionViewOwnProfile)).Get("/", h.User.GetProfile)
				r.With(perm(user.PermissionEditOwnProfile)).Put("/", h.User.UpdateProfile)
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(perm(user.PermissionEmployeeViewAll)).Get("/", h.Employee.List)
				r.With(perm(user.PermissionEmployeeViewOwn)).Get("/me", h.Employee.GetMe)
				r.With(perm(user.PermissionEmployeeViewAll)).Get("/{id}", h.Employee.Get)
				r.With(perm(user.PermissionEmployeeManage)).Post("/", h.Employee.Create)
				r.With(perm(user.PermissionEmployeeManage)).Put("/{id}", h.Employee.Update)
				r.With(perm(user.PermissionEmployeeDelete)).Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				recorders := middleware.RequireAnyPermission(user.PermissionAttendanceRecordOwn, user.PermissionAttendanceRecordAny)
				viewers := middleware.RequireAnyPermission(user.PermissionAttendanceViewOwn, user.PermissionAttendanceViewAll)

				r.With(recorders).Post("/check-in", h.Attendance.CheckIn)
				r.With(recorders).Post("/check-out", h.Attendance.CheckOut)
				r.With(perm(user.PermissionAttendanceMark)).Post("/mark", h.Attendance.Mark)
				r.With(perm(user.PermissionAttendanceMark)).Patch("/edit", h.Attendance.Edit)
				r.With(perm(user.PermissionAttendanceViewAll)).Get("/", h.Attendance.List)
				r.With(perm(user.PermissionAttendanceViewOwn)).Get("/me", h.Attendance.ListMine)
				r.With(viewers).Get("/summary", h.Attendance.Summary)
				r.With(viewers).Get("/export/{format}", h.Attendance.Export)
				r.With(perm(user.PermissionAttendancePreview)).Post("/preview-location", h.Attendance.PreviewLocation)
				r.With(perm(user.PermissionAttendanceAutoCheckout)).Post("/auto-checkout", h.Attendance.AutoCheckout)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(perm(user.PermissionLeaveApply)).Post("/", h.Leave.Apply)
				r.With(perm(user.PermissionLeaveViewAll)).Get("/", h.Leave.List)
				r.With(perm(user.PermissionLeaveApprove)).Put("/action/{leaveId}", h.Leave.Action)
				r.With(middleware.RequireAnyPermission(user.PermissionLeaveViewOwn, user.PermissionLeaveViewAll)).Get("/{employeeId}", h.Leave.ListForEmployee)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(perm(user.PermissionDashboardView))
					r.Get("/", h.Dashboard.Overview)
					r.Get("/total-employees", h.Dashboard.TotalEmployees)
					r.Get("/today-attendance", h.Dashboard.TodayAttendance)
					r.Get("/pending-leaves", h.Dashboard.PendingLeaves)
					r.Get("/monthly-attendance", h.Dashboard.MonthlyAttendance)
				})
				r.With(perm(user.PermissionDashboardViewOwn)).Get("/employee-summary", h.Dashboard.EmployeeSummary)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(perm(user.PermissionReportsView))
				r.Get("/attendance", h.Report.AttendanceReport)
				r.Get("/leaves", h.Report.LeaveReport)
			})

			r.Route("/offices", func(r chi.Router) {
				r.With(perm(user.PermissionOfficeView)).Get("/", h.Office.List)
				r.With(perm(user.PermissionOfficeManage)).Post("/", h.Office.Create)
				r.With(perm(user.PermissionOfficeManage)).Put("/{id}", h.Office.Update)
				r.With(perm(user.PermissionOfficeManage)).Delete("/{id}", h.Office.Delete)
			})

			r.Route("/settings/attendance-geo-fencing", func(r chi.Router) {
				r.With(perm(user.PermissionSettingsView)).Get("/", h.Office.GetGeoFencing)
				r.With(perm(user.PermissionSettingsManage)).Patch("/", h.Office.UpdateGeoFencing)
			})

			r.Route("/payslips", func(r chi.Router) {
				r.With(perm(user.PermissionPayslipManage)).Post("/generate", h.Payroll.Generate)
				r.With(perm(user.PermissionPayslipManage)).Delete("/{employeeId}/{month}/{year}", h.Payroll.Delete)
				r.With(perm(user.PermissionPayslipViewOwn)).Get("/me", h.Payroll.ListMine)
				r.With(middleware.RequireAnyPermission(user.PermissionPayslipViewOwn, user.PermissionPayslipManage)).Get("/pdf/{payslipId}", h.Payroll.PDF)
				r.With(perm(user.PermissionPayslipManage)).Get("/{employeeId}", h.Payroll.ListForEmployee)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
