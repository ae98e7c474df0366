package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/password"
)

const tokenTypeBearer = "bearer"

type AuthServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	// Accounts first, then employees
	account, err := a.UserRepository.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if err := a.checkPassword(account.PasswordHash, req.Password); err != nil {
			return auth.TokenResponse{}, err
		}
		return a.issue(jwt.Subject{
			UserID:   account.ID,
			Email:    account.Email,
			FullName: account.FullName,
			Role:     account.Role,
		})
	case !errors.Is(err, user.ErrUserNotFound):
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	if err := a.checkPassword(emp.PasswordHash, req.Password); err != nil {
		return auth.TokenResponse{}, err
	}

	employeeID := emp.EmployeeID
	return a.issue(jwt.Subject{
		Email:      emp.Email,
		FullName:   emp.FullName,
		Role:       user.RoleEmployee,
		EmployeeID: &employeeID,
	})
}

func (a *AuthServiceImpl) checkPassword(hash, plain string) error {
	if hash == "" {
		return auth.ErrInvalidCredentials
	}
	if err := password.Compare(hash, plain); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return auth.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}

func (a *AuthServiceImpl) issue(subject jwt.Subject) (auth.TokenResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(subject)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.Info("User logged in", "email", subject.Email, "role", subject.Role)

	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
		Role:        string(subject.Role),
		Email:       subject.Email,
		FullName:    subject.FullName,
		EmployeeID:  subject.EmployeeID,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(token)
	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, session auth.Session) (auth.MeResponse, error) {
	if session.IsEmployee() {
		emp, err := a.EmployeeRepository.GetByID(ctx, session.EmployeeID)
		if err != nil {
			return auth.MeResponse{}, err
		}
		employeeID := emp.EmployeeID
		return auth.MeResponse{
			Email:      emp.Email,
			FullName:   emp.FullName,
			Role:       string(user.RoleEmployee),
			EmployeeID: &employeeID,
		}, nil
	}

	account, err := a.UserRepository.GetByEmail(ctx, session.Email)
	if err != nil {
		return auth.MeResponse{}, err
	}
	return auth.MeResponse{
		Email:    account.Email,
		FullName: account.FullName,
		Role:     string(account.Role),
	}, nil
}

// EnsureDefaultAdmin implements auth.AuthService.
func (a *AuthServiceImpl) EnsureDefaultAdmin(ctx context.Context, email, fullName, plainPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := a.UserRepository.GetByEmail(ctx, email)
	if err == nil {
		if existing.Role != user.RoleAdmin {
			if err := a.UserRepository.UpdateRole(ctx, email, user.RoleAdmin); err != nil {
				return fmt.Errorf("failed to restore admin role: %w", err)
			}
			slog.Info("Default admin role restored", "email", email)
		}
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("failed to get default admin: %w", err)
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := a.UserRepository.Create(ctx, user.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         user.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	slog.Info("Default admin created", "email", email)
	return nil
}
