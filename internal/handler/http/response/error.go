package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/export"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
)

func meters(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geo-fence verdicts carry the measured distance so the client can explain the denial
	var outOfRange *attendance.OutOfRangeError
	if errors.As(err, &outOfRange) {
		GeoFenceDenied(w, "OUT_OF_RANGE", outOfRange.Error(), map[string]string{
			"officeId":       outOfRange.OfficeID,
			"officeName":     outOfRange.OfficeName,
			"distanceMeters": meters(outOfRange.DistanceMeters),
			"radiusMeters":   meters(outOfRange.RadiusMeters),
		})
		return
	}
	var noOffice *attendance.NoOfficeInRangeError
	if errors.As(err, &noOffice) {
		GeoFenceDenied(w, "NO_OFFICE_IN_RANGE", noOffice.Error(), map[string]string{
			"nearestOfficeId":       noOffice.NearestOfficeID,
			"nearestOfficeName":     noOffice.NearestOfficeName,
			"nearestDistanceMeters": meters(noOffice.NearestDistanceMeters),
			"radiusMeters":          meters(noOffice.RadiusMeters),
		})
		return
	}
	var unavailable *attendance.LocationUnavailableError
	if errors.As(err, &unavailable) {
		BadRequest(w, unavailable.Error(), map[string]string{"location": "required"})
		return
	}
	var conflict *attendance.StatusConflictError
	if errors.As(err, &conflict) {
		Conflict(w, conflict.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrSessionMissing):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrIncorrectPassword):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoActiveOffices):
		GeoFenceDenied(w, "NO_ACTIVE_OFFICES", err.Error(), nil)
	case errors.Is(err, attendance.ErrSelectedOfficeNotFound):
		BadRequest(w, err.Error(), map[string]string{"location.officeId": "unknown or inactive office"})
	case errors.Is(err, attendance.ErrDateNotToday):
		Forbidden(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Office domain errors
	case errors.Is(err, office.ErrOfficeNotFound):
		NotFound(w, "Office not found")
	case errors.Is(err, office.ErrOfficeIDExists):
		Conflict(w, "Office ID already exists")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipAlreadyExists):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonth), errors.Is(err, report.ErrInvalidYear):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, export.ErrUnsupportedFormat):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
