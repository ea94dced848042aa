package repositories

import (
	"context"

	"bistro/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// Update applies the non-zero fields of changes to the user with the given id.
	Update(ctx context.Context, id string, changes *models.User) (int64, error)
	SetRole(ctx context.Context, id, role string) (matched, modified int64, err error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
