package repositories

import (
	"context"
	"fmt"

	"bistro/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPaymentRepository is a GORM implementation of PaymentRepository.
type GORMPaymentRepository struct {
	db *gorm.DB
}

// NewGORMPaymentRepository creates a new instance of GORMPaymentRepository.
func NewGORMPaymentRepository(db *gorm.DB) *GORMPaymentRepository {
	return &GORMPaymentRepository{db: db}
}

// Create records a payment.
func (r *GORMPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetByEmail lists payments made by email, newest first.
func (r *GORMPaymentRepository) GetByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := r.db.WithContext(ctx).Where("email = ?", email).Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get payments for %s: %w", email, err)
	}
	return payments, nil
}

// Count returns the number of payments.
func (r *GORMPaymentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Payment{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return n, nil
}

// Revenue sums the price column across all payments.
func (r *GORMPaymentRepository) Revenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).Select("COALESCE(SUM(price), 0)").Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}
