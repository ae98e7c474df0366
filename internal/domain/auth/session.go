package auth

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
)

// Session is the authenticated caller, built once from a verified access token
// and handed to services as an explicit argument.
type Session struct {
	SubjectID  string
	Email      string
	FullName   string
	Role       user.Role
	EmployeeID string
}

// IsEmployee reports whether the caller acts through employee self-service.
func (s Session) IsEmployee() bool {
	return s.Role == user.RoleEmployee
}

func (s Session) Can(permission user.Permission) bool {
	return user.HasPermission(s.Role, permission)
}

// CanAccessEmployee reports whether the caller may read or write data owned by employeeID.
// Employees only reach their own records; other roles reach everyone.
func (s Session) CanAccessEmployee(employeeID string) bool {
	if s.IsEmployee() {
		return s.EmployeeID != "" && s.EmployeeID == employeeID
	}
	return true
}

// SessionFromClaims builds a Session from access-token claims.
func SessionFromClaims(claims map[string]interface{}) (Session, error) {
	roleStr, _ := claims["role"].(string)
	role, ok := user.ParseRole(roleStr)
	if !ok {
		return Session{}, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return Session{}, ErrInvalidToken
	}

	s := Session{Email: email, Role: role}
	s.SubjectID, _ = claims["user_id"].(string)
	s.FullName, _ = claims["full_name"].(string)
	s.EmployeeID, _ = claims["employee_id"].(string)

	if role == user.RoleEmployee && s.EmployeeID == "" {
		return Session{}, ErrInvalidToken
	}
	return s, nil
}

type sessionKey struct{}

// WithSession stores s in ctx. Only the HTTP boundary reads it back; services
// receive the Session as a parameter.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
