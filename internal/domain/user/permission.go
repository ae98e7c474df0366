package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Account Management
	PermissionUserView   Permission = "user.view"
	PermissionUserManage Permission = "user.manage"

	// Employee Management
	PermissionEmployeeViewOwn Permission = "employee.view_own"
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"
	PermissionEmployeeDelete  Permission = "employee.delete"

	// Attendance Management
	PermissionAttendanceRecordOwn    Permission = "attendance.record_own"
	PermissionAttendanceRecordAny    Permission = "attendance.record_any"
	PermissionAttendanceViewOwn      Permission = "attendance.view_own"
	PermissionAttendanceViewAll      Permission = "attendance.view_all"
	PermissionAttendanceMark         Permission = "attendance.mark"
	PermissionAttendancePreview      Permission = "attendance.preview_location"
	PermissionAttendanceAutoCheckout Permission = "attendance.auto_checkout"

	// Leave Management
	PermissionLeaveApply   Permission = "leave.apply"
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Offices & Settings
	PermissionOfficeView     Permission = "office.view"
	PermissionOfficeManage   Permission = "office.manage"
	PermissionSettingsView   Permission = "settings.view"
	PermissionSettingsManage Permission = "settings.manage"

	// Payroll
	PermissionPayslipViewOwn Permission = "payslip.view_own"
	PermissionPayslipManage  Permission = "payslip.manage"

	// Dashboards & Reports
	PermissionDashboardViewOwn Permission = "dashboard.view_own"
	PermissionDashboardView    Permission = "dashboard.view"
	PermissionReportsView      Permission = "reports.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionUserView,
		PermissionUserManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionEmployeeDelete,
		PermissionAttendanceRecordAny,
		PermissionAttendanceViewAll,
		PermissionAttendanceMark,
		PermissionAttendanceAutoCheckout,
		PermissionLeaveApply,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionOfficeView,
		PermissionOfficeManage,
		PermissionSettingsView,
		PermissionSettingsManage,
		PermissionPayslipManage,
		PermissionDashboardView,
		PermissionReportsView,
	},
	RoleHR: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionUserView,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionAttendanceRecordAny,
		PermissionAttendanceViewAll,
		PermissionAttendanceMark,
		PermissionLeaveApply,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionOfficeView,
		PermissionSettingsView,
		PermissionPayslipManage,
		PermissionDashboardView,
		PermissionReportsView,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionEmployeeViewOwn,
		PermissionAttendanceRecordOwn,
		PermissionAttendanceViewOwn,
		PermissionAttendancePreview,
		PermissionLeaveApply,
		PermissionLeaveViewOwn,
		PermissionOfficeView,
		PermissionSettingsView,
		PermissionPayslipViewOwn,
		PermissionDashboardViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// HasAnyPermission checks if a role has at least one of the given permissions
func HasAnyPermission(role Role, permissions ...Permission) bool {
	for _, p := range permissions {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}
