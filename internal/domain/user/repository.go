package user

import (
	"context"

	"campusdesk/internal/shared/authorization"
)

type Repository interface {
	Save(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, role *authorization.UserRole) ([]*User, error)
	Count(ctx context.Context) (int64, error)
}
