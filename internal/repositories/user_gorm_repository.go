package repositories

import (
	"context"
	"errors"
	"fmt"

	"bistro/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetAll retrieves every user.
func (r *GORMUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update writes the non-zero fields of changes and reports how many rows matched.
func (r *GORMUserRepository) Update(ctx context.Context, id string, changes *models.User) (int64, error) {
	fields := map[string]interface{}{}
	if changes.Name != "" {
		fields["name"] = changes.Name
	}
	if changes.Email != "" {
		fields["email"] = changes.Email
	}
	if changes.Photo != "" {
		fields["photo"] = changes.Photo
	}
	if len(fields) == 0 {
		var matched int64
		if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&matched).Error; err != nil {
			return 0, fmt.Errorf("failed to update user %s: %w", id, err)
		}
		return matched, nil
	}
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update user %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// SetRole overwrites the role of the user with the given id.
// modified counts only rows whose role actually changed.
func (r *GORMUserRepository) SetRole(ctx context.Context, id, role string) (matched, modified int64, err error) {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND (role IS NULL OR role <> ?)", id, role).
		Update("role", role)
	if res.Error != nil {
		return 0, 0, fmt.Errorf("failed to set role for user %s: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		return res.RowsAffected, res.RowsAffected, nil
	}

	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&matched).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to set role for user %s: %w", id, err)
	}
	return matched, 0, nil
}

// Delete deletes a user by ID. Deleting a missing user is not an error.
func (r *GORMUserRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete user: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Count returns the number of users.
func (r *GORMUserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
