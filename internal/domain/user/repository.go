package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, email string, req UpdateUserRequest) (User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	UpdateRole(ctx context.Context, email string, role Role) error
	Delete(ctx context.Context, email string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
