package report

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// PERIOD
// ========================================

// PeriodRequest selects a calendar month. Zero values mean the current month.
type PeriodRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *PeriodRequest) Validate(now time.Time) error {
	var errs validator.ValidationErrors

	if r.Month == 0 {
		r.Month = int(now.Month())
	}
	if r.Year == 0 {
		r.Year = now.Year()
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: ErrInvalidMonth.Error(),
		})
	}

	if r.Year < 2000 || r.Year > now.Year()+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", now.Year()+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Bounds returns the first and last day of the month as YYYY-MM-DD.
func (r PeriodRequest) Bounds() (string, string) {
	first := time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

// Period is the header shared by every report.
type Period struct {
	PeriodMonth int    `json:"periodMonth"`
	PeriodYear  int    `json:"periodYear"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
	GeneratedAt string `json:"generatedAt"`
}

// ========================================
// ATTENDANCE REPORT
// ========================================

type AttendanceReport struct {
	Period
	Employees []AttendanceReportEmployee `json:"employees"`
}

type AttendanceReportEmployee struct {
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Department   *string `json:"department"`
	Present      int64   `json:"present"`
	Absent       int64   `json:"absent"`
	HalfDay      int64   `json:"halfDay"`
	Leave        int64   `json:"leave"`
	RecordedDays int64   `json:"recordedDays"`
	TotalHours   string  `json:"totalHours"` // HH:MM, hours may exceed 99
}

func NewAttendanceReportEmployee(row AttendanceRow) AttendanceReportEmployee {
	return AttendanceReportEmployee{
		EmployeeID:   row.EmployeeID,
		EmployeeName: row.EmployeeName,
		Department:   row.Department,
		Present:      row.Present,
		Absent:       row.Absent,
		HalfDay:      row.HalfDay,
		Leave:        row.Leave,
		RecordedDays: row.Present + row.Absent + row.HalfDay + row.Leave,
		TotalHours:   FormatMinutes(row.TotalMinutes),
	}
}

// FormatMinutes renders a minute count as HH:MM.
func FormatMinutes(minutes int64) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ========================================
// LEAVE REPORT
// ========================================

type LeaveReport struct {
	Period
	Employees []LeaveReportEmployee `json:"employees"`
}

type LeaveReportEmployee struct {
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Department   *string `json:"department"`
	Pending      int64   `json:"pending"`
	Approved     int64   `json:"approved"`
	Rejected     int64   `json:"rejected"`
	ApprovedDays int64   `json:"approvedDays"`
}

func NewLeaveReportEmployee(row LeaveRow) LeaveReportEmployee {
	return LeaveReportEmployee{
		EmployeeID:   row.EmployeeID,
		EmployeeName: row.EmployeeName,
		Department:   row.Department,
		Pending:      row.Pending,
		Approved:     row.Approved,
		Rejected:     row.Rejected,
		ApprovedDays: row.ApprovedDays,
	}
}
