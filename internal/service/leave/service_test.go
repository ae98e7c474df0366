package leave

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memLeaveRepo struct {
	leaves []leave.Leave
}

func (m *memLeaveRepo) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	m.leaves = append(m.leaves, newLeave)
	return newLeave, nil
}

func (m *memLeaveRepo) GetByID(ctx context.Context, leaveID string) (leave.Leave, error) {
	for _, l := range m.leaves {
		if l.LeaveID == leaveID {
			return l, nil
		}
	}
	return leave.Leave{}, leave.ErrLeaveNotFound
}

func (m *memLeaveRepo) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, int64, error) {
	var out []leave.Leave
	for _, l := range m.leaves {
		if filter.EmployeeID != nil && l.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(l.Status) != *filter.Status {
			continue
		}
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

func (m *memLeaveRepo) UpdateStatus(ctx context.Context, leaveID string, status leave.Status, remark, actionedBy string, actionedAt time.Time) (leave.Leave, error) {
	for i, l := range m.leaves {
		if l.LeaveID != leaveID {
			continue
		}
		if l.Status != leave.StatusPending {
			return leave.Leave{}, leave.ErrLeaveAlreadyProcessed
		}
		l.Status = status
		l.Remark = remark
		l.ActionedBy = &actionedBy
		l.ActionedAt = &actionedAt
		m.leaves[i] = l
		return l, nil
	}
	return leave.Leave{}, leave.ErrLeaveNotFound
}

func (m *memLeaveRepo) CountByStatus(ctx context.Context, employeeID *string) (map[leave.Status]int64, error) {
	counts := map[leave.Status]int64{}
	for _, l := range m.leaves {
		if employeeID == nil || l.EmployeeID == *employeeID {
			counts[l.Status]++
		}
	}
	return counts, nil
}

type memEmployeeRepo struct {
	employee.EmployeeRepository
}

func (memEmployeeRepo) ExistsByID(ctx context.Context, employeeID string) (bool, error) {
	return employeeID == "EMP001" || employeeID == "EMP002", nil
}

var (
	hr    = auth.Session{Email: "hr@hrms.com", Role: user.RoleHR}
	priya = auth.Session{Email: "priya@hrms.com", Role: user.RoleEmployee, EmployeeID: "EMP001"}
)

func newLeaveFixture() (*LeaveServiceImpl, *memLeaveRepo) {
	repo := &memLeaveRepo{}
	svc := NewLeaveService(repo, memEmployeeRepo{}).(*LeaveServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestApply(t *testing.T) {
	svc, _ := newLeaveFixture()
	ctx := context.Background()

	resp, err := svc.Apply(ctx, priya, leave.ApplyLeaveRequest{StartDate: "2025-02-03", EndDate: "2025-02-05", Reason: "family function"})
	require.NoError(t, err)
	assert.Equal(t, "EMP001", resp.EmployeeID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, 3, resp.TotalDays)
	assert.Len(t, resp.LeaveID, 36)
	assert.Equal(t, "2025-01-15T08:00:00Z", resp.AppliedAt)

	_, err = svc.Apply(ctx, priya, leave.ApplyLeaveRequest{EmployeeID: "EMP002", StartDate: "2025-02-03", EndDate: "2025-02-03", Reason: "x"})
	assert.ErrorIs(t, err, auth.ErrForbidden)

	_, err = svc.Apply(ctx, hr, leave.ApplyLeaveRequest{EmployeeID: "EMP404", StartDate: "2025-02-03", EndDate: "2025-02-03", Reason: "x"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.Apply(ctx, priya, leave.ApplyLeaveRequest{StartDate: "2025-02-05", EndDate: "2025-02-03"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "endDate")
	assert.Contains(t, fields, "reason")
}

func TestActionOnlyFromPending(t *testing.T) {
	svc, _ := newLeaveFixture()
	ctx := context.Background()

	applied, err := svc.Apply(ctx, priya, leave.ApplyLeaveRequest{StartDate: "2025-02-03", EndDate: "2025-02-03", Reason: "doctor"})
	require.NoError(t, err)

	_, err = svc.Action(ctx, priya, applied.LeaveID, leave.ActionLeaveRequest{Status: "APPROVED"})
	assert.ErrorIs(t, err, auth.ErrForbidden)

	resp, err := svc.Action(ctx, hr, applied.LeaveID, leave.ActionLeaveRequest{Status: "approved", Remark: "ok"})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", resp.Status)
	assert.Equal(t, "ok", resp.Remark)
	assert.Equal(t, "hr@hrms.com", *resp.ActionedBy)

	_, err = svc.Action(ctx, hr, applied.LeaveID, leave.ActionLeaveRequest{Status: "REJECTED"})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	_, err = svc.Action(ctx, hr, "missing", leave.ActionLeaveRequest{Status: "REJECTED"})
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)

	_, err = svc.Action(ctx, hr, applied.LeaveID, leave.ActionLeaveRequest{Status: "PENDING"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestListScopes(t *testing.T) {
	svc, _ := newLeaveFixture()
	ctx := context.Background()

	_, err := svc.Apply(ctx, priya, leave.ApplyLeaveRequest{StartDate: "2025-02-03", EndDate: "2025-02-03", Reason: "a"})
	require.NoError(t, err)
	_, err = svc.Apply(ctx, hr, leave.ApplyLeaveRequest{EmployeeID: "EMP002", StartDate: "2025-02-03", EndDate: "2025-02-03", Reason: "b"})
	require.NoError(t, err)

	all, err := svc.List(ctx, hr, leave.LeaveFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.TotalCount)

	_, err = svc.List(ctx, priya, leave.LeaveFilter{})
	assert.ErrorIs(t, err, auth.ErrForbidden)

	mine, err := svc.ListForEmployee(ctx, priya, "EMP001", leave.LeaveFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), mine.TotalCount)

	_, err = svc.ListForEmployee(ctx, priya, "EMP002", leave.LeaveFilter{})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}
