package dashboard

import (
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
)

// ========== ADMIN CARDS ==========

type TotalEmployeesResponse struct {
	TotalEmployees int64 `json:"totalEmployees"`
}

type PendingLeavesResponse struct {
	PendingLeaves int64 `json:"pendingLeaves"`
}

// DailyAttendanceResponse is one bar of the monthly attendance chart
type DailyAttendanceResponse struct {
	Date    string `json:"date"`
	Present int64  `json:"Present"`
	Absent  int64  `json:"Absent"`
	HalfDay int64  `json:"Half-Day"`
	Leave   int64  `json:"Leave"`
}

func NewDailyAttendanceResponse(d DailyAttendanceCounts) DailyAttendanceResponse {
	return DailyAttendanceResponse{
		Date:    d.Date,
		Present: d.Counts[attendance.StatusPresent],
		Absent:  d.Counts[attendance.StatusAbsent],
		HalfDay: d.Counts[attendance.StatusHalfDay],
		Leave:   d.Counts[attendance.StatusLeave],
	}
}

// OverviewResponse is the combined response for the main dashboard endpoint
type OverviewResponse struct {
	TotalEmployees    int64                      `json:"totalEmployees"`
	PendingLeaves     int64                      `json:"pendingLeaves"`
	TodayAttendance   attendance.SummaryResponse `json:"todayAttendance"`
	MonthlyAttendance []DailyAttendanceResponse  `json:"monthlyAttendance"`
	Date              string                     `json:"date"`
}

// ========== EMPLOYEE CARD ==========

type EmployeeSummaryResponse struct {
	EmployeeID        string                    `json:"employeeId"`
	FullName          string                    `json:"fullName"`
	AttendanceSummary attendance.SummaryResponse `json:"attendanceSummary"`
	LeaveSummary      leave.SummaryResponse      `json:"leaveSummary"`
}
