package repositories

import (
	"context"

	"bistro/internal/models"
)

// MenuRepository defines the interface for menu data access.
type MenuRepository interface {
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
