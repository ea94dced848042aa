package services

import (
	"context"

	"bistro/internal/models"
	"bistro/internal/repositories"
)

// CartService handles cart items.
type CartService struct {
	repo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{repo: repo}
}

// AddToCart stores a cart item.
func (s *CartService) AddToCart(ctx context.Context, item *models.CartItem) (models.InsertResult, error) {
	item.ID = ""
	if err := s.repo.Create(ctx, item); err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

// GetCart lists the cart of email.
func (s *CartService) GetCart(ctx context.Context, email string) ([]models.CartItem, error) {
	return s.repo.GetByEmail(ctx, email)
}

// RemoveFromCart deletes one cart item. Ownership is not checked.
func (s *CartService) RemoveFromCart(ctx context.Context, id string) (models.DeleteResult, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}
