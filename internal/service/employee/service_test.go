package employee

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/password"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func (m *memEmployeeRepo) ExistsByID(ctx context.Context, employeeID string) (bool, error) {
	_, ok := m.employees[employeeID]
	return ok, nil
}

func (m *memEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, e := range m.employees {
		if e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	m.employees[newEmployee.EmployeeID] = newEmployee
	return newEmployee, nil
}

func (m *memEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, e := range m.employees {
		if filter.Search != nil && !strings.Contains(strings.ToLower(e.FullName), strings.ToLower(*filter.Search)) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, int64(len(out)), nil
}

func (m *memEmployeeRepo) Update(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	e := m.employees[employeeID]
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Salary != nil {
		e.Salary = *req.Salary
	}
	m.employees[employeeID] = e
	return e, nil
}

func (m *memEmployeeRepo) Delete(ctx context.Context, employeeID string) error {
	if _, ok := m.employees[employeeID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(m.employees, employeeID)
	return nil
}

type memUserRepo struct {
	user.UserRepository
	emails map[string]bool
}

func (m *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.emails[email], nil
}

func newEmployeeFixture() (employee.EmployeeService, *memEmployeeRepo) {
	repo := &memEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": {EmployeeID: "EMP001", FullName: "Priya Sharma", Email: "priya@hrms.com", Salary: decimal.NewFromInt(50000)},
	}}
	users := &memUserRepo{emails: map[string]bool{"hr@hrms.com": true}}
	return NewEmployeeService(repo, users), repo
}

func TestEmployeeService_Create(t *testing.T) {
	svc, repo := newEmployeeFixture()
	ctx := context.Background()

	dept := "Engineering"
	resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeID: " EMP002 ",
		FullName:   "Arjun Mehta",
		Email:      "Arjun@HRMS.com",
		Password:   "secret1",
		Department: &dept,
		Salary:     decimal.RequireFromString("65000.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP002", resp.EmployeeID)
	assert.Equal(t, "arjun@hrms.com", resp.Email)
	assert.True(t, resp.Salary.Equal(decimal.RequireFromString("65000.50")))
	assert.NoError(t, password.Compare(repo.employees["EMP002"].PasswordHash, "secret1"))
}

func TestEmployeeService_CreateConflicts(t *testing.T) {
	svc, _ := newEmployeeFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{EmployeeID: "EMP001", FullName: "X", Email: "x@hrms.com", Password: "secret1"})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{EmployeeID: "EMP009", FullName: "X", Email: "hr@hrms.com", Password: "secret1"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{EmployeeID: "EMP009", FullName: "X", Email: "x@hrms.com", Password: "123", Salary: decimal.NewFromInt(-1)})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestEmployeeService_ListUpdateDelete(t *testing.T) {
	svc, _ := newEmployeeFixture()
	ctx := context.Background()

	list, err := svc.List(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.TotalCount)
	assert.Equal(t, "1-1 of 1 results", list.Showing)

	taken := "hr@hrms.com"
	_, err = svc.Update(ctx, "EMP001", employee.UpdateEmployeeRequest{Email: &taken})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	salary := decimal.NewFromInt(55000)
	updated, err := svc.Update(ctx, "EMP001", employee.UpdateEmployeeRequest{Salary: &salary})
	require.NoError(t, err)
	assert.True(t, updated.Salary.Equal(salary))

	_, err = svc.Update(ctx, "EMP404", employee.UpdateEmployeeRequest{Salary: &salary})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	require.NoError(t, svc.Delete(ctx, "EMP001"))
	_, err = svc.Get(ctx, "EMP001")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
