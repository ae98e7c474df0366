package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half-Day"
	StatusLeave   Status = "Leave"
)

// Statuses lists every status in reporting order.
var Statuses = []Status{StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave}

func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// StatusSource records who last set a record's status.
type StatusSource string

const (
	SourceSelf   StatusSource = "self"
	SourceAdmin  StatusSource = "admin"
	SourceSystem StatusSource = "system"
)

// ZeroHours is stored when either time is missing or check-out precedes check-in.
const ZeroHours = "00:00"

// Coordinate is a device position fix.
type Coordinate struct {
	Lat      float64
	Lng      float64
	Accuracy *float64
}

// Location is the position captured with a check-in or check-out, plus the
// office it was admitted against when geo-fencing matched one.
type Location struct {
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	Accuracy       *float64 `json:"accuracy,omitempty"`
	Address        *string  `json:"address,omitempty"`
	OfficeID       *string  `json:"officeId,omitempty"`
	OfficeName     *string  `json:"officeName,omitempty"`
	DistanceMeters *float64 `json:"distanceMeters,omitempty"`
}

// Record is the single attendance row for one employee on one calendar date.
type Record struct {
	ID               string
	EmployeeID       string
	Date             string // YYYY-MM-DD
	Status           Status
	StatusSource     StatusSource
	CheckInTime      *string // HH:MM
	CheckOutTime     *string // HH:MM
	CheckInLocation  *Location
	CheckOutLocation *Location
	TotalHours       string
	TotalMinutes     int
	AutoCheckout     bool
	EditedBy         *string
	EditReason       *string
	EditedAt         *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Join
	EmployeeName *string
}

// StatusLocked reports whether an administrator pinned the day as Absent or Leave,
// which self-service check-ins must not override.
func (r *Record) StatusLocked() bool {
	if r.StatusSource == SourceSelf {
		return false
	}
	return r.Status == StatusAbsent || r.Status == StatusLeave
}

// Admission is the geo-fence verdict for one coordinate.
type Admission struct {
	// Matched is false when geo-fencing is disabled; the fix is then kept for audit only.
	Matched        bool
	OfficeID       string
	OfficeName     string
	DistanceMeters float64 // rounded to 2 decimals
	RadiusMeters   float64
}

// DayKey identifies the (employee, date) pair that all writes serialize on.
func DayKey(employeeID, date string) string {
	return employeeID + "|" + date
}
