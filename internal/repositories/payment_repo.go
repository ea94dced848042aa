package repositories

import (
	"context"

	"bistro/internal/models"
)

// PaymentRepository defines the interface for payment data access.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByEmail(ctx context.Context, email string) ([]models.Payment, error)
	Count(ctx context.Context) (int64, error)
	// Revenue sums the price of every recorded payment.
	Revenue(ctx context.Context) (float64, error)
	// Payments are never updated or deleted through the API.
}
