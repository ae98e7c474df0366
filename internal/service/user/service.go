package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/password"
)

type AccountServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
}

func NewAccountService(userRepository user.UserRepository, employeeRepository employee.EmployeeRepository) auth.AccountService {
	return &AccountServiceImpl{
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
	}
}

// ListUsers implements auth.AccountService.
func (s *AccountServiceImpl) ListUsers(ctx context.Context, session auth.Session) ([]user.UserResponse, error) {
	if !session.Can(user.PermissionUserView) {
		return nil, auth.ErrForbidden
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u))
	}
	return responses, nil
}

// CreateUser implements auth.AccountService.
func (s *AccountServiceImpl) CreateUser(ctx context.Context, session auth.Session, req user.CreateUserRequest) (user.UserResponse, error) {
	if !session.Can(user.PermissionUserManage) {
		return user.UserResponse{}, auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.ensureEmailFree(ctx, req.Email); err != nil {
		return user.UserResponse{}, err
	}

	role, _ := user.ParseRole(req.Role)
	hash, err := password.Hash(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Designation:  req.Designation,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User created", "email", created.Email, "role", created.Role, "by", session.Email)
	return user.NewUserResponse(created), nil
}

// ensureEmailFree rejects an email already used by an account or an employee.
func (s *AccountServiceImpl) ensureEmailFree(ctx context.Context, email string) error {
	exists, err := s.UserRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check user email: %w", err)
	}
	if exists {
		return user.ErrUserEmailExists
	}

	exists, err = s.EmployeeRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check employee email: %w", err)
	}
	if exists {
		return user.ErrUserEmailExists
	}
	return nil
}

// UpdateUser implements auth.AccountService.
func (s *AccountServiceImpl) UpdateUser(ctx context.Context, session auth.Session, email string, req user.UpdateUserRequest) (user.UserResponse, error) {
	if !session.Can(user.PermissionUserManage) {
		return user.UserResponse{}, auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	email = normalizeEmail(email)
	if req.Email != nil && *req.Email != email {
		if err := s.ensureEmailFree(ctx, *req.Email); err != nil {
			return user.UserResponse{}, err
		}
	}

	updated, err := s.UserRepository.Update(ctx, email, req)
	if err != nil {
		return user.UserResponse{}, err
	}

	slog.Info("User updated", "email", updated.Email, "by", session.Email)
	return user.NewUserResponse(updated), nil
}

// DeleteUser implements auth.AccountService.
func (s *AccountServiceImpl) DeleteUser(ctx context.Context, session auth.Session, email string) error {
	if !session.Can(user.PermissionUserManage) {
		return auth.ErrForbidden
	}

	email = normalizeEmail(email)
	if email == strings.ToLower(session.Email) {
		return user.ErrCannotDeleteSelf
	}

	if err := s.UserRepository.Delete(ctx, email); err != nil {
		return err
	}

	slog.Info("User deleted", "email", email, "by", session.Email)
	return nil
}

// ChangePassword implements auth.AccountService.
func (s *AccountServiceImpl) ChangePassword(ctx context.Context, session auth.Session, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	currentHash, err := s.currentHash(ctx, session)
	if err != nil {
		return err
	}
	if err := password.Compare(currentHash, req.OldPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return user.ErrIncorrectPassword
		}
		return fmt.Errorf("failed to compare password: %w", err)
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if session.IsEmployee() {
		return s.EmployeeRepository.UpdatePassword(ctx, session.EmployeeID, hash)
	}
	return s.UserRepository.UpdatePassword(ctx, session.Email, hash)
}

func (s *AccountServiceImpl) currentHash(ctx context.Context, session auth.Session) (string, error) {
	if session.IsEmployee() {
		emp, err := s.EmployeeRepository.GetByID(ctx, session.EmployeeID)
		if err != nil {
			return "", err
		}
		return emp.PasswordHash, nil
	}

	account, err := s.UserRepository.GetByEmail(ctx, session.Email)
	if err != nil {
		return "", err
	}
	return account.PasswordHash, nil
}

// ResetPassword implements auth.AccountService.
func (s *AccountServiceImpl) ResetPassword(ctx context.Context, session auth.Session, email string, req user.ResetPasswordRequest) error {
	if !session.Can(user.PermissionUserManage) {
		return auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return err
	}
	email = normalizeEmail(email)

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	exists, err := s.UserRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check user email: %w", err)
	}
	if exists {
		if err := s.UserRepository.UpdatePassword(ctx, email, hash); err != nil {
			return err
		}
		slog.Info("Password reset", "email", email, "by", session.Email)
		return nil
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return user.ErrUserNotFound
		}
		return err
	}
	if err := s.EmployeeRepository.UpdatePassword(ctx, emp.EmployeeID, hash); err != nil {
		return err
	}

	slog.Info("Password reset", "email", email, "employee_id", emp.EmployeeID, "by", session.Email)
	return nil
}

// GetProfile implements auth.AccountService.
func (s *AccountServiceImpl) GetProfile(ctx context.Context, session auth.Session) (user.ProfileResponse, error) {
	if session.IsEmployee() {
		emp, err := s.EmployeeRepository.GetByID(ctx, session.EmployeeID)
		if err != nil {
			return user.ProfileResponse{}, err
		}
		return employeeProfile(emp), nil
	}

	account, err := s.UserRepository.GetByEmail(ctx, session.Email)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	return accountProfile(account), nil
}

// UpdateProfile implements auth.AccountService.
func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, session auth.Session, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	if !session.Can(user.PermissionEditOwnProfile) {
		return user.ProfileResponse{}, auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	if session.IsEmployee() {
		emp, err := s.EmployeeRepository.Update(ctx, session.EmployeeID, employee.UpdateEmployeeRequest{
			FullName:    req.FullName,
			Department:  req.Department,
			Designation: req.Designation,
		})
		if err != nil {
			return user.ProfileResponse{}, err
		}
		return employeeProfile(emp), nil
	}

	account, err := s.UserRepository.Update(ctx, session.Email, user.UpdateUserRequest{
		FullName:    req.FullName,
		Designation: req.Designation,
	})
	if err != nil {
		return user.ProfileResponse{}, err
	}
	return accountProfile(account), nil
}

func employeeProfile(emp employee.Employee) user.ProfileResponse {
	employeeID := emp.EmployeeID
	return user.ProfileResponse{
		FullName:    emp.FullName,
		Email:       emp.Email,
		Role:        string(user.RoleEmployee),
		EmployeeID:  &employeeID,
		Department:  emp.Department,
		Designation: emp.Designation,
	}
}

func accountProfile(u user.User) user.ProfileResponse {
	return user.ProfileResponse{
		FullName:    u.FullName,
		Email:       u.Email,
		Role:        string(u.Role),
		Designation: u.Designation,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
