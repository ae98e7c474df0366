package leave

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Statuses lists every status in reporting order.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Leave is one leave application. Only PENDING leaves can be approved or rejected.
type Leave struct {
	LeaveID    string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	Remark     string
	AppliedAt  time.Time
	ActionedBy *string
	ActionedAt *time.Time

	// Join
	EmployeeName *string
}

// TotalDays counts both ends of the range.
func (l Leave) TotalDays() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
