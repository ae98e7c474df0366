package leave

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
)

type LeaveService interface {
	// Apply files a PENDING leave; employees may only apply for themselves.
	Apply(ctx context.Context, session auth.Session, req ApplyLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context, session auth.Session, filter LeaveFilter) (ListLeaveResponse, error)
	ListForEmployee(ctx context.Context, session auth.Session, employeeID string, filter LeaveFilter) (ListLeaveResponse, error)
	Action(ctx context.Context, session auth.Session, leaveID string, req ActionLeaveRequest) (LeaveResponse, error)
}
