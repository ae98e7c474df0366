package user

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/password"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]user.User
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (m *memUserRepo) List(ctx context.Context) ([]user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []user.User
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (m *memUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	newUser.ID = "u-" + newUser.Email
	m.users[newUser.Email] = newUser
	return newUser, nil
}

func (m *memUserRepo) Update(ctx context.Context, email string, req user.UpdateUserRequest) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}
	if req.Designation != nil {
		u.Designation = req.Designation
	}
	if req.Email != nil {
		delete(m.users, email)
		u.Email = *req.Email
	}
	m.users[u.Email] = u
	return u, nil
}

func (m *memUserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	m.users[email] = u
	return nil
}

func (m *memUserRepo) UpdateRole(ctx context.Context, email string, role user.Role) error {
	return nil
}

func (m *memUserRepo) Delete(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[email]; !ok {
		return user.ErrUserNotFound
	}
	delete(m.users, email)
	return nil
}

func (m *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[email]
	return ok, nil
}

type memEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (m *memEmployeeRepo) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	e, ok := m.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (m *memEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range m.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *memEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *memEmployeeRepo) UpdatePassword(ctx context.Context, employeeID, passwordHash string) error {
	e, ok := m.employees[employeeID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.PasswordHash = passwordHash
	m.employees[employeeID] = e
	return nil
}

func (m *memEmployeeRepo) Update(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	e, ok := m.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Department != nil {
		e.Department = req.Department
	}
	if req.Designation != nil {
		e.Designation = req.Designation
	}
	m.employees[employeeID] = e
	return e, nil
}

var (
	admin = auth.Session{SubjectID: "u-admin", Email: "admin@hrms.com", Role: user.RoleAdmin}
	hr    = auth.Session{SubjectID: "u-hr", Email: "hr@hrms.com", Role: user.RoleHR}
	priya = auth.Session{Email: "priya@hrms.com", Role: user.RoleEmployee, EmployeeID: "EMP001"}
)

func newAccountFixture(t *testing.T) (*AccountServiceImpl, *memUserRepo, *memEmployeeRepo) {
	t.Helper()
	hash, err := password.Hash("password123")
	require.NoError(t, err)

	users := &memUserRepo{users: map[string]user.User{
		"admin@hrms.com": {ID: "u-admin", FullName: "Administrator", Email: "admin@hrms.com", PasswordHash: hash, Role: user.RoleAdmin},
		"hr@hrms.com":    {ID: "u-hr", FullName: "Hana Rao", Email: "hr@hrms.com", PasswordHash: hash, Role: user.RoleHR},
	}}
	employees := &memEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": {EmployeeID: "EMP001", FullName: "Priya Sharma", Email: "priya@hrms.com", PasswordHash: hash},
	}}

	svc := NewAccountService(users, employees).(*AccountServiceImpl)
	return svc, users, employees
}

func TestCreateUser(t *testing.T) {
	svc, users, _ := newAccountFixture(t)
	ctx := context.Background()

	resp, err := svc.CreateUser(ctx, admin, user.CreateUserRequest{
		FullName: "Ravi Kumar",
		Email:    "Ravi@HRMS.com",
		Password: "secret1",
		Role:     "hr",
	})
	require.NoError(t, err)
	assert.Equal(t, "ravi@hrms.com", resp.Email)
	assert.Equal(t, "HR", resp.Role)
	assert.NoError(t, password.Compare(users.users["ravi@hrms.com"].PasswordHash, "secret1"))

	_, err = svc.CreateUser(ctx, admin, user.CreateUserRequest{FullName: "Dup", Email: "priya@hrms.com", Password: "secret1", Role: "HR"})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	_, err = svc.CreateUser(ctx, admin, user.CreateUserRequest{FullName: "Emp", Email: "e@hrms.com", Password: "secret1", Role: "EMPLOYEE"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.CreateUser(ctx, hr, user.CreateUserRequest{FullName: "X", Email: "x@hrms.com", Password: "secret1", Role: "HR"})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestListUsers(t *testing.T) {
	svc, _, _ := newAccountFixture(t)

	list, err := svc.ListUsers(context.Background(), hr)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.ListUsers(context.Background(), priya)
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestUpdateAndDeleteUser(t *testing.T) {
	svc, users, _ := newAccountFixture(t)
	ctx := context.Background()

	role := "admin"
	updated, err := svc.UpdateUser(ctx, admin, "HR@hrms.com", user.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", updated.Role)

	// Keeping the same email is not a clash with itself.
	same := "hr@hrms.com"
	_, err = svc.UpdateUser(ctx, admin, "hr@hrms.com", user.UpdateUserRequest{Email: &same})
	require.NoError(t, err)

	clashUser := "admin@hrms.com"
	_, err = svc.UpdateUser(ctx, admin, "hr@hrms.com", user.UpdateUserRequest{Email: &clashUser})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	clashEmployee := "Priya@hrms.com"
	_, err = svc.UpdateUser(ctx, admin, "hr@hrms.com", user.UpdateUserRequest{Email: &clashEmployee})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	bad := "not-an-email"
	_, err = svc.UpdateUser(ctx, admin, "hr@hrms.com", user.UpdateUserRequest{Email: &bad})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	fullName := "Hana Rao"
	renamed := " Hana@HRMS.com "
	updated, err = svc.UpdateUser(ctx, admin, "hr@hrms.com", user.UpdateUserRequest{FullName: &fullName, Email: &renamed})
	require.NoError(t, err)
	assert.Equal(t, "hana@hrms.com", updated.Email)
	assert.Contains(t, users.users, "hana@hrms.com")
	assert.NotContains(t, users.users, "hr@hrms.com")

	assert.ErrorIs(t, svc.DeleteUser(ctx, admin, "Admin@hrms.com"), user.ErrCannotDeleteSelf)
	require.NoError(t, svc.DeleteUser(ctx, admin, "hana@hrms.com"))
	assert.NotContains(t, users.users, "hana@hrms.com")
	assert.ErrorIs(t, svc.DeleteUser(ctx, admin, "hana@hrms.com"), user.ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	svc, users, employees := newAccountFixture(t)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, priya, user.ChangePasswordRequest{OldPassword: "nope", NewPassword: "newpass1"})
	assert.ErrorIs(t, err, user.ErrIncorrectPassword)

	require.NoError(t, svc.ChangePassword(ctx, priya, user.ChangePasswordRequest{OldPassword: "password123", NewPassword: "newpass1"}))
	assert.NoError(t, password.Compare(employees.employees["EMP001"].PasswordHash, "newpass1"))

	require.NoError(t, svc.ChangePassword(ctx, hr, user.ChangePasswordRequest{OldPassword: "password123", NewPassword: "newpass2"}))
	assert.NoError(t, password.Compare(users.users["hr@hrms.com"].PasswordHash, "newpass2"))
}

func TestResetPassword(t *testing.T) {
	svc, _, employees := newAccountFixture(t)
	ctx := context.Background()

	err := svc.ResetPassword(ctx, admin, "priya@hrms.com", user.ResetPasswordRequest{NewPassword: "reset12", ConfirmPassword: "reset13"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "confirmPassword", verrs[0].Field)

	require.NoError(t, svc.ResetPassword(ctx, admin, "priya@hrms.com", user.ResetPasswordRequest{NewPassword: "reset12", ConfirmPassword: "reset12"}))
	assert.NoError(t, password.Compare(employees.employees["EMP001"].PasswordHash, "reset12"))

	err = svc.ResetPassword(ctx, admin, "ghost@hrms.com", user.ResetPasswordRequest{NewPassword: "reset12", ConfirmPassword: "reset12"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	err = svc.ResetPassword(ctx, hr, "priya@hrms.com", user.ResetPasswordRequest{NewPassword: "reset12", ConfirmPassword: "reset12"})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestProfile(t *testing.T) {
	svc, _, _ := newAccountFixture(t)
	ctx := context.Background()

	profile, err := svc.GetProfile(ctx, priya)
	require.NoError(t, err)
	assert.Equal(t, "EMPLOYEE", profile.Role)
	assert.Equal(t, "EMP001", *profile.EmployeeID)

	dept := "Engineering"
	profile, err = svc.UpdateProfile(ctx, priya, user.UpdateProfileRequest{Department: &dept})
	require.NoError(t, err)
	assert.Equal(t, "Engineering", *profile.Department)

	name := "Hana R."
	profile, err = svc.UpdateProfile(ctx, hr, user.UpdateProfileRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Hana R.", profile.FullName)
	assert.Nil(t, profile.EmployeeID)
}
