package auth

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
)

type AuthService interface {
	// Login authenticates ADMIN/HR accounts first, then employee records.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, session Session) (MeResponse, error)
	// EnsureDefaultAdmin creates the bootstrap administrator or restores its role.
	EnsureDefaultAdmin(ctx context.Context, email, fullName, password string) error
}

// AccountService manages ADMIN/HR accounts, passwords and the caller's own profile.
type AccountService interface {
	ListUsers(ctx context.Context, session Session) ([]user.UserResponse, error)
	CreateUser(ctx context.Context, session Session, req user.CreateUserRequest) (user.UserResponse, error)
	UpdateUser(ctx context.Context, session Session, email string, req user.UpdateUserRequest) (user.UserResponse, error)
	// DeleteUser refuses to delete the caller's own account.
	DeleteUser(ctx context.Context, session Session, email string) error

	// ChangePassword applies to whichever of account or employee the session belongs to.
	ChangePassword(ctx context.Context, session Session, req user.ChangePasswordRequest) error
	// ResetPassword sets the password of an account or an employee by email (ADMIN).
	ResetPassword(ctx context.Context, session Session, email string, req user.ResetPasswordRequest) error

	GetProfile(ctx context.Context, session Session) (user.ProfileResponse, error)
	UpdateProfile(ctx context.Context, session Session, req user.UpdateProfileRequest) (user.ProfileResponse, error)
}
