package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Full access, manages accounts and offices
	RoleHR       Role = "HR"       // Manages employees, attendance, leaves and payroll
	RoleEmployee Role = "EMPLOYEE" // Self-service only
)

// ParseRole maps a case-insensitive role name onto the closed set of roles.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleHR:
		return RoleHR, true
	case RoleEmployee:
		return RoleEmployee, true
	}
	return "", false
}

// User is an ADMIN or HR account. Employees authenticate through their employee record.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	Designation  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
