package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type ApplyLeaveRequest struct {
	EmployeeID string `json:"employeeId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`

	// Parsed by Validate
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Reason = strings.TrimSpace(r.Reason)

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	var startOK, endOK bool
	if r.Start, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}
	if r.End, endOK = validator.IsValidDate(r.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && r.End.Before(r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ActionLeaveRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Remark string `json:"remark"`
}

func (r *ActionLeaveRequest) Validate() error {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	return validator.Struct(r)
}

type LeaveFilter struct {
	EmployeeID *string `json:"employeeId,omitempty"`
	Status     *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		status := strings.ToUpper(*f.Status)
		f.Status = &status
		if _, ok := ParseStatus(status); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: PENDING, APPROVED, REJECTED",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	LeaveID      string  `json:"leaveId"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName,omitempty"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	TotalDays    int     `json:"totalDays"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	Remark       string  `json:"remark"`
	AppliedAt    string  `json:"appliedAt"`
	ActionedBy   *string `json:"actionedBy,omitempty"`
	ActionedAt   *string `json:"actionedAt,omitempty"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		LeaveID:    l.LeaveID,
		EmployeeID: l.EmployeeID,
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		TotalDays:  l.TotalDays(),
		Reason:     l.Reason,
		Status:     string(l.Status),
		Remark:     l.Remark,
		AppliedAt:  l.AppliedAt.Format(time.RFC3339),
		ActionedBy: l.ActionedBy,
	}
	if l.EmployeeName != nil {
		resp.EmployeeName = *l.EmployeeName
	}
	if l.ActionedAt != nil {
		ts := l.ActionedAt.Format(time.RFC3339)
		resp.ActionedAt = &ts
	}
	return resp
}

type ListLeaveResponse struct {
	TotalCount int64           `json:"totalCount"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
	Showing    string          `json:"showing"`
	Leaves     []LeaveResponse `json:"leaves"`
}

// SummaryResponse counts leaves per status.
type SummaryResponse struct {
	Pending  int64 `json:"PENDING"`
	Approved int64 `json:"APPROVED"`
	Rejected int64 `json:"REJECTED"`
}

func NewSummaryResponse(counts map[Status]int64) SummaryResponse {
	return SummaryResponse{
		Pending:  counts[StatusPending],
		Approved: counts[StatusApproved],
		Rejected: counts[StatusRejected],
	}
}
