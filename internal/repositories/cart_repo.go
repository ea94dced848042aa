package repositories

import (
	"context"

	"bistro/internal/models"
)

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	Create(ctx context.Context, item *models.CartItem) error
	GetByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Delete(ctx context.Context, id string) (int64, error)
	// DeleteMany removes every cart item whose id is in ids.
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}
