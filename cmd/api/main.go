package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hrms-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hrms-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hrms-backend-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hrms-backend-go/internal/service/leave"
	officeService "github.com/cmlabs-hris/hrms-backend-go/internal/service/office"
	payrollService "github.com/cmlabs-hris/hrms-backend-go/internal/service/payroll"
	reportService "github.com/cmlabs-hris/hrms-backend-go/internal/service/report"
	userService "github.com/cmlabs-hris/hrms-backend-go/internal/service/user"
	"github.com/go-chi/httplog/v3"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	location := cfg.Location()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	// Repositories
	txManager := postgresql.NewTxManager(db)
	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	officeRepo := postgresql.NewOfficeRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	// Services
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := serviceAuth.NewAuthService(userRepo, employeeRepo, JWTService)
	accountSvc := userService.NewAccountService(userRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, userRepo)
	officeSvc := officeService.NewOfficeService(officeRepo)
	settingSvc := officeService.NewSettingService(settingRepo, int(cfg.Attendance.LocationTimeout/time.Second))
	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, employeeRepo, officeRepo, settingRepo, attendanceService.Config{
		Location:         location,
		AutoCheckoutTime: cfg.Attendance.AutoCheckoutTime,
	})
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo, location)
	reportSvc := reportService.NewReportService(reportRepo, location)
	payrollSvc := payrollService.NewPayrollService(payslipRepo, employeeRepo)

	if err := authSvc.EnsureDefaultAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminName, cfg.Seed.AdminPassword); err != nil {
		return fmt.Errorf("error seeding default admin: %w", err)
	}

	// Scheduler
	scheduler := cron.NewScheduler(location)
	if err := cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler, cfg.Attendance.AutoCheckoutCron); err != nil {
		return fmt.Errorf("error registering attendance jobs: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
	}, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		User:       appHTTP.NewUserHandler(accountSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Office:     appHTTP.NewOfficeHandler(officeSvc, settingSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "port", cfg.App.Port, "timezone", location.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
