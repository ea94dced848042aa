package services

import (
	"context"

	"bistro/internal/models"
	"bistro/internal/repositories"
)

// StatsService aggregates counters for the admin dashboard.
type StatsService struct {
	users    repositories.UserRepository
	menu     repositories.MenuRepository
	payments repositories.PaymentRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(users repositories.UserRepository, menu repositories.MenuRepository, payments repositories.PaymentRepository) *StatsService {
	return &StatsService{users: users, menu: menu, payments: payments}
}

// GetStats counts users, menu items and payments and sums revenue.
func (s *StatsService) GetStats(ctx context.Context) (*models.Stats, error) {
	var (
		stats models.Stats
		err   error
	)
	if stats.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.MenuItems, err = s.menu.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Orders, err = s.payments.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Revenue, err = s.payments.Revenue(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}
