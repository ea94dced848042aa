package services

import (
	"context"

	"bistro/internal/models"
	"bistro/internal/repositories"
)

// MenuService handles business logic related to the menu.
type MenuService struct {
	repo repositories.MenuRepository
}

// NewMenuService creates a new MenuService.
func NewMenuService(repo repositories.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// GetMenu retrieves all menu items.
func (s *MenuService) GetMenu(ctx context.Context) ([]models.MenuItem, error) {
	return s.repo.GetAll(ctx)
}

// GetMenuItem retrieves a single menu item by its ID.
func (s *MenuService) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

// AddMenuItem creates a new menu item.
func (s *MenuService) AddMenuItem(ctx context.Context, item *models.MenuItem) (models.InsertResult, error) {
	item.ID = ""
	if err := s.repo.Create(ctx, item); err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

// UpdateMenuItem sets the given fields on a menu item.
func (s *MenuService) UpdateMenuItem(ctx context.Context, id string, fields map[string]interface{}) (models.UpdateResult, error) {
	n, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

// DeleteMenuItem deletes a menu item by its ID.
func (s *MenuService) DeleteMenuItem(ctx context.Context, id string) (models.DeleteResult, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}
