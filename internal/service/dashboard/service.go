package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

const (
	dateLayout = "2006-01-02"

	// monthlyWindowDays is how far back the monthly attendance chart reaches.
	monthlyWindowDays = 30
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	employee.EmployeeRepository
	location *time.Location
	now      func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, employeeRepo employee.EmployeeRepository, location *time.Location) dashboard.DashboardService {
	if location == nil {
		location = time.UTC
	}
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		EmployeeRepository:  employeeRepo,
		location:            location,
		now:                 time.Now,
	}
}

func (s *DashboardServiceImpl) today() time.Time {
	return s.now().In(s.location)
}

// Overview returns combined dashboard data using parallel goroutines
func (s *DashboardServiceImpl) Overview(ctx context.Context, session auth.Session) (dashboard.OverviewResponse, error) {
	if !session.Can(user.PermissionDashboardView) {
		return dashboard.OverviewResponse{}, auth.ErrForbidden
	}

	resp := dashboard.OverviewResponse{Date: s.today().Format(dateLayout)}
	g, gCtx := errgroup.WithContext(ctx)

	// 1. Headcount
	g.Go(func() error {
		total, err := s.DashboardRepository.CountEmployees(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		resp.TotalEmployees = total
		return nil
	})

	// 2. Pending leave requests
	g.Go(func() error {
		pending, err := s.DashboardRepository.CountPendingLeaves(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count pending leaves: %w", err)
		}
		resp.PendingLeaves = pending
		return nil
	})

	// 3. Today's attendance
	g.Go(func() error {
		summary, err := s.todayAttendance(gCtx)
		if err != nil {
			return err
		}
		resp.TodayAttendance = summary
		return nil
	})

	// 4. Last 30 days
	g.Go(func() error {
		days, err := s.monthlyAttendance(gCtx)
		if err != nil {
			return err
		}
		resp.MonthlyAttendance = days
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.OverviewResponse{}, err
	}
	return resp, nil
}

// TotalEmployees implements dashboard.DashboardService.
func (s *DashboardServiceImpl) TotalEmployees(ctx context.Context, session auth.Session) (dashboard.TotalEmployeesResponse, error) {
	if !session.Can(user.PermissionDashboardView) {
		return dashboard.TotalEmployeesResponse{}, auth.ErrForbidden
	}
	total, err := s.DashboardRepository.CountEmployees(ctx)
	if err != nil {
		return dashboard.TotalEmployeesResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}
	return dashboard.TotalEmployeesResponse{TotalEmployees: total}, nil
}

// TodayAttendance implements dashboard.DashboardService.
func (s *DashboardServiceImpl) TodayAttendance(ctx context.Context, session auth.Session) (attendance.SummaryResponse, error) {
	if !session.Can(user.PermissionDashboardView) {
		return attendance.SummaryResponse{}, auth.ErrForbidden
	}
	return s.todayAttendance(ctx)
}

func (s *DashboardServiceImpl) todayAttendance(ctx context.Context) (attendance.SummaryResponse, error) {
	today := s.today().Format(dateLayout)
	days, err := s.DashboardRepository.AttendanceCountsByDate(ctx, today, today)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to count today's attendance: %w", err)
	}
	if len(days) == 0 {
		return attendance.NewSummaryResponse(nil), nil
	}
	return attendance.NewSummaryResponse(days[0].Counts), nil
}

// PendingLeaves implements dashboard.DashboardService.
func (s *DashboardServiceImpl) PendingLeaves(ctx context.Context, session auth.Session) (dashboard.PendingLeavesResponse, error) {
	if !session.Can(user.PermissionDashboardView) {
		return dashboard.PendingLeavesResponse{}, auth.ErrForbidden
	}
	pending, err := s.DashboardRepository.CountPendingLeaves(ctx)
	if err != nil {
		return dashboard.PendingLeavesResponse{}, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return dashboard.PendingLeavesResponse{PendingLeaves: pending}, nil
}

// MonthlyAttendance implements dashboard.DashboardService.
func (s *DashboardServiceImpl) MonthlyAttendance(ctx context.Context, session auth.Session) ([]dashboard.DailyAttendanceResponse, error) {
	if !session.Can(user.PermissionDashboardView) {
		return nil, auth.ErrForbidden
	}
	return s.monthlyAttendance(ctx)
}

func (s *DashboardServiceImpl) monthlyAttendance(ctx context.Context) ([]dashboard.DailyAttendanceResponse, error) {
	end := s.today()
	start := end.AddDate(0, 0, -monthlyWindowDays)

	days, err := s.DashboardRepository.AttendanceCountsByDate(ctx, start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to group monthly attendance: %w", err)
	}

	out := make([]dashboard.DailyAttendanceResponse, 0, len(days))
	for _, d := range days {
		out = append(out, dashboard.NewDailyAttendanceResponse(d))
	}
	return out, nil
}

// EmployeeSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) EmployeeSummary(ctx context.Context, session auth.Session) (dashboard.EmployeeSummaryResponse, error) {
	if !session.Can(user.PermissionDashboardViewOwn) || session.EmployeeID == "" {
		return dashboard.EmployeeSummaryResponse{}, auth.ErrForbidden
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, session.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return dashboard.EmployeeSummaryResponse{}, err
		}
		return dashboard.EmployeeSummaryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var (
		attendanceCounts map[attendance.Status]int64
		leaveCounts      map[leave.Status]int64
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, err := s.DashboardRepository.EmployeeAttendanceCounts(gCtx, emp.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to count attendance: %w", err)
		}
		attendanceCounts = counts
		return nil
	})
	g.Go(func() error {
		counts, err := s.DashboardRepository.EmployeeLeaveCounts(gCtx, emp.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to count leaves: %w", err)
		}
		leaveCounts = counts
		return nil
	})
	if err := g.Wait(); err != nil {
		return dashboard.EmployeeSummaryResponse{}, err
	}

	return dashboard.EmployeeSummaryResponse{
		EmployeeID:        emp.EmployeeID,
		FullName:          emp.FullName,
		AttendanceSummary: attendance.NewSummaryResponse(attendanceCounts),
		LeaveSummary:      leave.NewSummaryResponse(leaveCounts),
	}, nil
}
