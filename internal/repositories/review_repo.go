package repositories

import (
	"context"
	"fmt"

	"bistro/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	GetAll(ctx context.Context) ([]models.Review, error)
}

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

// GetAll retrieves all reviews.
func (r *GORMReviewRepository) GetAll(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := r.db.WithContext(ctx).Order("created_at").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}
