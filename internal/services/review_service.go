package services

import (
	"context"

	"bistro/internal/models"
	"bistro/internal/repositories"
)

// ReviewService exposes customer reviews.
type ReviewService struct {
	repo repositories.ReviewRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repositories.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

// GetReviews retrieves all reviews.
func (s *ReviewService) GetReviews(ctx context.Context) ([]models.Review, error) {
	return s.repo.GetAll(ctx)
}
