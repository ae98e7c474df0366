package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/pagination"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewLeaveService(leaveRepository leave.LeaveRepository, employeeRepository employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepository,
		EmployeeRepository: employeeRepository,
		now:                time.Now,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, session auth.Session, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if !session.Can(user.PermissionLeaveApply) {
		return leave.LeaveResponse{}, auth.ErrForbidden
	}
	if session.IsEmployee() && req.EmployeeID == "" {
		req.EmployeeID = session.EmployeeID
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	if !session.CanAccessEmployee(req.EmployeeID) {
		return leave.LeaveResponse{}, auth.ErrForbidden
	}

	exists, err := s.EmployeeRepository.ExistsByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
	}

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		LeaveID:    uuid.NewString(),
		EmployeeID: req.EmployeeID,
		StartDate:  req.Start,
		EndDate:    req.End,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		AppliedAt:  s.now().UTC(),
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave applied", "leave_id", created.LeaveID, "employee_id", created.EmployeeID,
		"start_date", req.StartDate, "end_date", req.EndDate)
	return leave.NewLeaveResponse(created), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, session auth.Session, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if !session.Can(user.PermissionLeaveViewAll) {
		return leave.ListLeaveResponse{}, auth.ErrForbidden
	}
	return s.list(ctx, filter)
}

// ListForEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListForEmployee(ctx context.Context, session auth.Session, employeeID string, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if !session.CanAccessEmployee(employeeID) {
		return leave.ListLeaveResponse{}, auth.ErrForbidden
	}
	filter.EmployeeID = &employeeID
	return s.list(ctx, filter)
}

func (s *LeaveServiceImpl) list(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	leaves, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.NewLeaveResponse(l))
	}

	return leave.ListLeaveResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: pagination.TotalPages(filter.Limit, total),
		Showing:    pagination.Showing(filter.Page, filter.Limit, total),
		Leaves:     responses,
	}, nil
}

// Action implements leave.LeaveService.
func (s *LeaveServiceImpl) Action(ctx context.Context, session auth.Session, leaveID string, req leave.ActionLeaveRequest) (leave.LeaveResponse, error) {
	if !session.Can(user.PermissionLeaveApprove) {
		return leave.LeaveResponse{}, auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	status, _ := leave.ParseStatus(req.Status)

	updated, err := s.LeaveRepository.UpdateStatus(ctx, leaveID, status, req.Remark, session.Email, s.now().UTC())
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	slog.Info("Leave actioned", "leave_id", leaveID, "status", status, "by", session.Email)
	return leave.NewLeaveResponse(updated), nil
}
