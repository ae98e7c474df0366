package report

import "context"

// AttendanceRow aggregates one employee's attendance over a period.
type AttendanceRow struct {
	EmployeeID   string
	EmployeeName string
	Department   *string
	Present      int64
	Absent       int64
	HalfDay      int64
	Leave        int64
	TotalMinutes int64
}

// LeaveRow aggregates the leave requests of one employee overlapping a period.
// ApprovedDays counts only the approved days that fall inside the period.
type LeaveRow struct {
	EmployeeID   string
	EmployeeName string
	Department   *string
	Pending      int64
	Approved     int64
	Rejected     int64
	ApprovedDays int64
}

// ReportRepository returns one row per employee, ordered by employee ID.
// Employees without activity in the period appear with zero counts.
type ReportRepository interface {
	AttendanceByEmployee(ctx context.Context, startDate, endDate string) ([]AttendanceRow, error)
	LeavesByEmployee(ctx context.Context, startDate, endDate string) ([]LeaveRow, error)
}
