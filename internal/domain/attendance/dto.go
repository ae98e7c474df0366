package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// EVENT DTOs
// ========================================

// LocationInput is the position a client attaches to a check-in, check-out or preview.
// Lat and Lng are both required for the fix to count; OfficeID optionally names the
// office the caller claims to be at.
type LocationInput struct {
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	Accuracy *float64 `json:"accuracy,omitempty"`
	Address  *string  `json:"address,omitempty"`
	OfficeID *string  `json:"officeId,omitempty"`
}

// Coordinate returns the fix, or nil when either axis is missing.
func (l *LocationInput) Coordinate() *Coordinate {
	if l == nil || l.Lat == nil || l.Lng == nil {
		return nil
	}
	return &Coordinate{Lat: *l.Lat, Lng: *l.Lng, Accuracy: l.Accuracy}
}

// OfficeHint returns the trimmed office id, or "" when none was chosen.
func (l *LocationInput) OfficeHint() string {
	if l == nil || l.OfficeID == nil {
		return ""
	}
	return strings.TrimSpace(*l.OfficeID)
}

func (l *LocationInput) Validate() error {
	if errs := l.validate(nil); len(errs) > 0 {
		return errs
	}
	return nil
}

func (l *LocationInput) validate(errs validator.ValidationErrors) validator.ValidationErrors {
	if l == nil {
		return errs
	}
	if l.Lat != nil && !validator.IsValidLatitude(*l.Lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "location.lat",
			Message: "lat must be between -90 and 90",
		})
	}
	if l.Lng != nil && !validator.IsValidLongitude(*l.Lng) {
		errs = append(errs, validator.ValidationError{
			Field:   "location.lng",
			Message: "lng must be between -180 and 180",
		})
	}
	if (l.Lat == nil) != (l.Lng == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "lat and lng must be provided together",
		})
	}
	if l.Accuracy != nil && *l.Accuracy < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "location.accuracy",
			Message: "accuracy must not be negative",
		})
	}
	return errs
}

// EventRequest is a check-in or check-out. Employees act for themselves at the
// server's current date and time; ADMIN and HR must name the employee and may
// back-date the event.
type EventRequest struct {
	EmployeeID string         `json:"employeeId,omitempty"`
	Date       *string        `json:"date,omitempty"` // YYYY-MM-DD
	Time       *string        `json:"time,omitempty"` // HH:MM
	Location   *LocationInput `json:"location,omitempty"`
}

func (r *EventRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Time != nil && !validator.IsValidClock(*r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM format",
		})
	}

	errs = r.Location.validate(errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MarkAttendanceRequest sets a day's status directly. Times that are omitted keep
// their stored values; times that are given overwrite them.
type MarkAttendanceRequest struct {
	EmployeeID   string  `json:"employeeId" validate:"required"`
	Date         string  `json:"date" validate:"required,date"`
	Status       string  `json:"status" validate:"required,oneof=Present Absent Half-Day Leave"`
	CheckInTime  *string `json:"checkInTime,omitempty" validate:"omitempty,clock"`
	CheckOutTime *string `json:"checkOutTime,omitempty" validate:"omitempty,clock"`
}

func (r *MarkAttendanceRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.CheckInTime = blankToNil(r.CheckInTime)
	r.CheckOutTime = blankToNil(r.CheckOutTime)
	return validator.Struct(r)
}

// EditAttendanceRequest corrects an existing record. Both times are replaced;
// an omitted time clears the stored one.
type EditAttendanceRequest struct {
	EmployeeID   string  `json:"employeeId" validate:"required"`
	Date         string  `json:"date" validate:"required,date"`
	Status       string  `json:"status" validate:"required,oneof=Present Absent Half-Day Leave"`
	CheckInTime  *string `json:"checkInTime,omitempty" validate:"omitempty,clock"`
	CheckOutTime *string `json:"checkOutTime,omitempty" validate:"omitempty,clock"`
	Reason       string  `json:"reason" validate:"required"`
}

func (r *EditAttendanceRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Reason = strings.TrimSpace(r.Reason)
	r.CheckInTime = blankToNil(r.CheckInTime)
	r.CheckOutTime = blankToNil(r.CheckOutTime)
	return validator.Struct(r)
}

type AutoCheckoutRequest struct {
	Date *string `json:"date,omitempty" validate:"omitempty,date"`
}

func (r *AutoCheckoutRequest) Validate() error {
	r.Date = blankToNil(r.Date)
	return validator.Struct(r)
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// ========================================
// QUERY DTOs
// ========================================

type AttendanceFilter struct {
	EmployeeID *string `json:"employeeId,omitempty"`
	StartDate  *string `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"endDate,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`

	// Pagination; Limit 0 after validation means every row.
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Validate checks the filter; paginate applies the default page size.
func (f *AttendanceFilter) Validate(paginate bool) error {
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
	if paginate && f.Limit == 0 {
		f.Limit = 20
	}
	if paginate && f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}
	if !paginate {
		f.Page, f.Limit = 1, 0
	}

	var start, end time.Time
	var hasStart, hasEnd bool
	if f.StartDate != nil {
		if start, hasStart = validator.IsValidDate(*f.StartDate); !hasStart {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if end, hasEnd = validator.IsValidDate(*f.EndDate); !hasEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be in YYYY-MM-DD format",
			})
		}
	}
	if hasStart && hasEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if f.Status != nil {
		if _, ok := ParseStatus(*f.Status); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: Present, Absent, Half-Day, Leave",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	EmployeeID       string    `json:"employeeId"`
	EmployeeName     string    `json:"employeeName,omitempty"`
	Date             string    `json:"date"`
	Status           string    `json:"status"`
	StatusSource     string    `json:"statusSource"`
	CheckInTime      *string   `json:"checkInTime"`
	CheckOutTime     *string   `json:"checkOutTime"`
	CheckInLocation  *Location `json:"checkInLocation,omitempty"`
	CheckOutLocation *Location `json:"checkOutLocation,omitempty"`
	TotalHours       string    `json:"totalHours"`
	AutoCheckout     bool      `json:"autoCheckout"`
	EditedBy         *string   `json:"editedBy,omitempty"`
	EditReason       *string   `json:"editReason,omitempty"`
	EditedAt         *string   `json:"editedAt,omitempty"`
	Warnings         []string  `json:"warnings,omitempty"`
}

func NewRecordResponse(r Record) RecordResponse {
	resp := RecordResponse{
		EmployeeID:       r.EmployeeID,
		Date:             r.Date,
		Status:           string(r.Status),
		StatusSource:     string(r.StatusSource),
		CheckInTime:      r.CheckInTime,
		CheckOutTime:     r.CheckOutTime,
		CheckInLocation:  r.CheckInLocation,
		CheckOutLocation: r.CheckOutLocation,
		TotalHours:       r.TotalHours,
		AutoCheckout:     r.AutoCheckout,
		EditedBy:         r.EditedBy,
		EditReason:       r.EditReason,
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.EditedAt != nil {
		ts := r.EditedAt.Format(time.RFC3339)
		resp.EditedAt = &ts
	}
	return resp
}

type ListAttendanceResponse struct {
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
	Showing    string           `json:"showing"`
	Records    []RecordResponse `json:"records"`
}

// SummaryResponse counts records per status.
type SummaryResponse struct {
	Present int64 `json:"Present"`
	Absent  int64 `json:"Absent"`
	HalfDay int64 `json:"Half-Day"`
	Leave   int64 `json:"Leave"`
	Total   int64 `json:"total"`
}

func NewSummaryResponse(counts map[Status]int64) SummaryResponse {
	s := SummaryResponse{
		Present: counts[StatusPresent],
		Absent:  counts[StatusAbsent],
		HalfDay: counts[StatusHalfDay],
		Leave:   counts[StatusLeave],
	}
	s.Total = s.Present + s.Absent + s.HalfDay + s.Leave
	return s
}

type PreviewLocationResponse struct {
	GeoFencingEnabled bool    `json:"geoFencingEnabled"`
	Allowed           bool    `json:"allowed"`
	OfficeID          string  `json:"officeId,omitempty"`
	OfficeName        string  `json:"officeName,omitempty"`
	DistanceMeters    float64 `json:"distanceMeters,omitempty"`
	RadiusMeters      float64 `json:"radiusMeters,omitempty"`
	Message           string  `json:"message"`
}

type AutoCheckoutResponse struct {
	Date         string `json:"date"`
	CheckOutTime string `json:"checkOutTime"`
	Closed       int    `json:"closed"`
}
