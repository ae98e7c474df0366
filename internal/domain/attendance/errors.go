package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrAttendanceNotFound     = errors.New("attendance record not found")
	ErrNoActiveOffices        = errors.New("no active office is configured for geo-fenced attendance")
	ErrSelectedOfficeNotFound = errors.New("selected office does not exist or is inactive")
	ErrDateNotToday           = errors.New("employees can only record attendance for today")

	// ErrCheckOutBeforeCheckIn is reported as a warning; the record is still saved with zero hours.
	ErrCheckOutBeforeCheckIn = errors.New("check-out time is earlier than check-in time; total hours set to 00:00")
)

// OutOfRangeError rejects a coordinate that is outside the radius of the office the caller chose.
type OutOfRangeError struct {
	OfficeID       string
	OfficeName     string
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("attendance denied: you are %.2fm away from %s (allowed %.0fm)", e.DistanceMeters, e.OfficeName, e.RadiusMeters)
}

// NoOfficeInRangeError rejects a coordinate that no active office covers.
type NoOfficeInRangeError struct {
	NearestOfficeID       string
	NearestOfficeName     string
	NearestDistanceMeters float64
	RadiusMeters          float64
}

func (e *NoOfficeInRangeError) Error() string {
	return fmt.Sprintf("attendance denied: you are %.2fm away from the nearest office %s (allowed %.0fm)", e.NearestDistanceMeters, e.NearestOfficeName, e.RadiusMeters)
}

// LocationUnavailableError is returned when geo-fencing is enabled and no usable position was supplied.
type LocationUnavailableError struct {
	Reason string
}

func (e *LocationUnavailableError) Error() string {
	if e.Reason == "" {
		return "location is required while geo-fencing is enabled"
	}
	return "location unavailable: " + e.Reason
}

// StatusConflictError is returned when a check-in or check-out targets a day an
// administrator already marked Absent or Leave.
type StatusConflictError struct {
	EmployeeID string
	Date       string
	Status     Status
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("attendance for %s on %s is already marked %s by an administrator", e.EmployeeID, e.Date, e.Status)
}

// BackendError wraps a storage failure.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("attendance storage failure during %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Backend wraps err as a BackendError unless it is nil or already one.
func Backend(op string, err error) error {
	if err == nil {
		return nil
	}
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{Op: op, Err: err}
}
