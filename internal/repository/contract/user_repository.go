package contract

import (
	"context"

	"brokeria-dashboard-be/internal/entity"
	"brokeria-dashboard-be/internal/repository/specification"
)

type UserRepository interface {
	// Create returns an error wrapping apperror.ErrConflict when the username is taken.
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	UpdatePassword(ctx context.Context, userId int64, hash string) error
}
