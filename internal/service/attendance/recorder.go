package attendance

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
)

type eventKind int

const (
	eventCheckIn eventKind = iota
	eventCheckOut
)

func (k eventKind) String() string {
	if k == eventCheckIn {
		return "check_in"
	}
	return "check_out"
}

// errRecordUnchanged aborts a day mutation that has nothing to write.
var errRecordUnchanged = errors.New("attendance record unchanged")

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, session auth.Session, req attendance.EventRequest) (attendance.RecordResponse, error) {
	return a.recordEvent(ctx, session, req, eventCheckIn)
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, session auth.Session, req attendance.EventRequest) (attendance.RecordResponse, error) {
	return a.recordEvent(ctx, session, req, eventCheckOut)
}

func (a *AttendanceServiceImpl) recordEvent(ctx context.Context, session auth.Session, req attendance.EventRequest, kind eventKind) (attendance.RecordResponse, error) {
	if !session.Can(user.PermissionAttendanceRecordOwn) && !session.Can(user.PermissionAttendanceRecordAny) {
		return attendance.RecordResponse{}, auth.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	employeeID, date, clock, err := a.eventTarget(session, req)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if err := a.ensureEmployee(ctx, employeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	// Only self-service events are geo-fenced; ADMIN and HR corrections keep the
	// supplied position for audit without matching it to an office.
	var admission attendance.Admission
	if session.IsEmployee() {
		admission, err = a.admit(ctx, req.Location)
		if err != nil {
			slog.Info("Attendance event rejected by geo-fence",
				"employee_id", employeeID, "date", date, "event", kind.String(), "reason", err.Error())
			return attendance.RecordResponse{}, err
		}
	}
	location := buildLocation(req.Location, admission)

	source := attendance.SourceAdmin
	if session.IsEmployee() {
		source = attendance.SourceSelf
	}

	var warnings []string
	saved, err := a.mutateDay(ctx, employeeID, date, func(existing *attendance.Record) (attendance.Record, error) {
		rec := blankRecord(employeeID, date)
		if existing != nil {
			if existing.StatusLocked() {
				return attendance.Record{}, &attendance.StatusConflictError{
					EmployeeID: employeeID,
					Date:       date,
					Status:     existing.Status,
				}
			}
			rec = *existing
		}

		// An administrator's Half-Day stands; the time is still recorded.
		if !(rec.Status == attendance.StatusHalfDay && rec.StatusSource != attendance.SourceSelf) {
			rec.Status = attendance.StatusPresent
			rec.StatusSource = source
		}

		switch kind {
		case eventCheckIn:
			rec.CheckInTime = &clock
			rec.CheckInLocation = location
		case eventCheckOut:
			rec.CheckOutTime = &clock
			rec.CheckOutLocation = location
		}
		rec.AutoCheckout = false

		warnings = applyHours(&rec)
		return rec, nil
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	slog.Info("Attendance event recorded",
		"employee_id", employeeID, "date", date, "event", kind.String(), "time", clock, "total_hours", saved.TotalHours)

	resp := attendance.NewRecordResponse(saved)
	resp.Warnings = warnings
	return resp, nil
}

// eventTarget decides whose day and which time an event applies to. Employees
// always act on themselves at the server's current time.
func (a *AttendanceServiceImpl) eventTarget(session auth.Session, req attendance.EventRequest) (employeeID, date, clock string, err error) {
	now := a.localNow()
	today := now.Format(dateLayout)

	if session.IsEmployee() {
		if req.EmployeeID != "" && req.EmployeeID != session.EmployeeID {
			return "", "", "", auth.ErrForbidden
		}
		if req.Date != nil && *req.Date != today {
			return "", "", "", attendance.ErrDateNotToday
		}
		return session.EmployeeID, today, now.Format(clockLayout), nil
	}

	if req.EmployeeID == "" {
		return "", "", "", validator.ValidationErrors{{
			Field:   "employeeId",
			Message: "employeeId is required",
		}}
	}

	date, clock = today, now.Format(clockLayout)
	if req.Date != nil {
		date = *req.Date
	}
	if req.Time != nil {
		clock = *req.Time
	}
	return req.EmployeeID, date, clock, nil
}

// admit runs the geo-fence against the current setting and office list.
func (a *AttendanceServiceImpl) admit(ctx context.Context, input *attendance.LocationInput) (attendance.Admission, error) {
	gf, err := a.SettingRepository.GetGeoFencing(ctx)
	if err != nil {
		return attendance.Admission{}, attendance.Backend("load geo-fencing setting", err)
	}
	if !gf.Enabled {
		return attendance.Admission{}, nil
	}

	offices, err := a.OfficeRepository.List(ctx, true)
	if err != nil {
		return attendance.Admission{}, attendance.Backend("load offices", err)
	}

	return Resolve(input.Coordinate(), input.OfficeHint(), offices, true)
}

// buildLocation captures the supplied fix and, when admitted, the matching office.
func buildLocation(input *attendance.LocationInput, admission attendance.Admission) *attendance.Location {
	coord := input.Coordinate()
	if coord == nil {
		return nil
	}

	loc := &attendance.Location{
		Lat:      coord.Lat,
		Lng:      coord.Lng,
		Accuracy: coord.Accuracy,
		Address:  input.Address,
	}
	if admission.Matched {
		officeID := admission.OfficeID
		officeName := admission.OfficeName
		distance := admission.DistanceMeters
		loc.OfficeID = &officeID
		loc.OfficeName = &officeName
		loc.DistanceMeters = &distance
	}
	return loc
}

// Mark implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, session auth.Session, req attendance.MarkAttendanceRequest) (attendance.RecordResponse, error) {
	if !session.Can(user.PermissionAttendanceMark) {
		return attendance.RecordResponse{}, auth.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	status, _ := attendance.ParseStatus(req.Status)

	if err := a.ensureEmployee(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	var warnings []string
	saved, err := a.mutateDay(ctx, req.EmployeeID, req.Date, func(existing *attendance.Record) (attendance.Record, error) {
		rec := blankRecord(req.EmployeeID, req.Date)
		if existing != nil {
			rec = *existing
		}

		rec.Status = status
		rec.StatusSource = attendance.SourceAdmin
		if req.CheckInTime != nil {
			rec.CheckInTime = req.CheckInTime
		}
		if req.CheckOutTime != nil {
			rec.CheckOutTime = req.CheckOutTime
			rec.AutoCheckout = false
		}

		warnings = applyHours(&rec)
		return rec, nil
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	slog.Info("Attendance marked",
		"employee_id", req.EmployeeID, "date", req.Date, "status", status, "by", session.Email)

	resp := attendance.NewRecordResponse(saved)
	resp.Warnings = warnings
	return resp, nil
}

// Edit implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Edit(ctx context.Context, session auth.Session, req attendance.EditAttendanceRequest) (attendance.RecordResponse, error) {
	if !session.Can(user.PermissionAttendanceMark) {
		return attendance.RecordResponse{}, auth.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	status, _ := attendance.ParseStatus(req.Status)

	editedAt := a.now().UTC()
	editedBy := session.Email
	reason := req.Reason

	var warnings []string
	saved, err := a.mutateDay(ctx, req.EmployeeID, req.Date, func(existing *attendance.Record) (attendance.Record, error) {
		if existing == nil {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		rec := *existing

		rec.Status = status
		rec.StatusSource = attendance.SourceAdmin
		rec.CheckInTime = req.CheckInTime
		rec.CheckOutTime = req.CheckOutTime
		if rec.CheckInTime == nil {
			rec.CheckInLocation = nil
		}
		if rec.CheckOutTime == nil {
			rec.CheckOutLocation = nil
		}
		rec.AutoCheckout = false
		rec.EditedBy = &editedBy
		rec.EditReason = &reason
		rec.EditedAt = &editedAt

		warnings = applyHours(&rec)
		return rec, nil
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	slog.Info("Attendance edited",
		"employee_id", req.EmployeeID, "date", req.Date, "status", status, "by", editedBy, "reason", reason)

	resp := attendance.NewRecordResponse(saved)
	resp.Warnings = warnings
	return resp, nil
}

// AutoCheckout implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) AutoCheckout(ctx context.Context, date string) (attendance.AutoCheckoutResponse, error) {
	if date == "" {
		date = a.localNow().Format(dateLayout)
	}
	checkOut := a.cfg.AutoCheckoutTime

	open, err := a.AttendanceRepository.ListOpen(ctx, date)
	if err != nil {
		return attendance.AutoCheckoutResponse{}, attendance.Backend("list open records", err)
	}

	closed := 0
	for _, r := range open {
		_, err := a.mutateDay(ctx, r.EmployeeID, date, func(existing *attendance.Record) (attendance.Record, error) {
			// The day may have been closed since ListOpen ran.
			if existing == nil || existing.CheckInTime == nil || existing.CheckOutTime != nil {
				return attendance.Record{}, errRecordUnchanged
			}
			rec := *existing
			rec.CheckOutTime = &checkOut
			rec.AutoCheckout = true
			if warnings := applyHours(&rec); len(warnings) > 0 {
				slog.Warn("Auto checkout before check-in", "employee_id", rec.EmployeeID, "date", date, "check_in", *rec.CheckInTime)
			}
			return rec, nil
		})
		if errors.Is(err, errRecordUnchanged) {
			continue
		}
		if err != nil {
			slog.Error("Failed to auto checkout attendance", "employee_id", r.EmployeeID, "date", date, "error", err)
			continue
		}
		closed++
	}

	slog.Info("Auto checkout completed", "date", date, "check_out_time", checkOut, "closed", closed, "open", len(open))

	return attendance.AutoCheckoutResponse{
		Date:         date,
		CheckOutTime: checkOut,
		Closed:       closed,
	}, nil
}
