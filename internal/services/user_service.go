package services

import (
	"context"
	"errors"
	"fmt"

	"bistro/internal/models"
	"bistro/internal/repositories"
)

// UserService handles business logic related to user accounts.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}

// RegisterUser inserts user unless a user with the same email exists.
// created is false when an existing record was found; no insert happens in that case.
// The check and the insert are separate statements, so two concurrent registrations
// for one email can both succeed.
func (s *UserService) RegisterUser(ctx context.Context, user *models.User) (result models.InsertResult, created bool, err error) {
	existing, err := s.repo.GetByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return models.InsertResult{}, false, nil
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return models.InsertResult{}, false, err
	}

	user.ID = ""
	user.Role = ""
	if err := s.repo.Create(ctx, user); err != nil {
		return models.InsertResult{}, false, fmt.Errorf("failed to register user: %w", err)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: user.ID}, true, nil
}

// UpdateUser applies the non-empty fields of changes to the user with id.
// updated is false, and nothing is written, when changes.Email already belongs to another user.
func (s *UserService) UpdateUser(ctx context.Context, id string, changes *models.User) (result models.UpdateResult, updated bool, err error) {
	if changes.Email != "" {
		existing, err := s.repo.GetByEmail(ctx, changes.Email)
		if err == nil && existing != nil && existing.ID != id {
			return models.UpdateResult{}, false, nil
		}
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return models.UpdateResult{}, false, err
		}
	}

	n, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return models.UpdateResult{}, false, err
	}
	return models.UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, true, nil
}

// MakeAdmin sets the user's role to admin. Promoting an admin again matches the user but modifies nothing.
func (s *UserService) MakeAdmin(ctx context.Context, id string) (models.UpdateResult, error) {
	matched, modified, err := s.repo.SetRole(ctx, id, models.RoleAdmin)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}, nil
}

// DeleteUser deletes a user by ID.
func (s *UserService) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}
