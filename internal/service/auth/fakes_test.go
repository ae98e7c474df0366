package auth

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
)

type memUserRepo struct {
	user.UserRepository
	mu    sync.Mutex
	users map[string]user.User
}

func newMemUserRepo(users ...user.User) *memUserRepo {
	m := &memUserRepo{users: map[string]user.User{}}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
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

func (m *memUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	newUser.ID = "u-" + newUser.Email
	m.users[newUser.Email] = newUser
	return newUser, nil
}

func (m *memUserRepo) UpdateRole(ctx context.Context, email string, role user.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.users[email]
	u.Role = role
	m.users[email] = u
	return nil
}

type memEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (m *memEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range m.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *memEmployeeRepo) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	for _, e := range m.employees {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
