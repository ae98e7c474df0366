package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, newLeave Leave) (Leave, error)
	GetByID(ctx context.Context, leaveID string) (Leave, error)
	// List returns leaves joined with employee names, newest application first.
	List(ctx context.Context, filter LeaveFilter) ([]Leave, int64, error)
	// UpdateStatus moves a PENDING leave to status. It returns ErrLeaveAlreadyProcessed
	// when the leave is no longer pending and ErrLeaveNotFound when it does not exist.
	UpdateStatus(ctx context.Context, leaveID string, status Status, remark, actionedBy string, actionedAt time.Time) (Leave, error)
	CountByStatus(ctx context.Context, employeeID *string) (map[Status]int64, error)
}
