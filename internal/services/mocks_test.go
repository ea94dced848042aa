package services_test

import (
	"context"

	"bistro/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, changes *models.User) (int64, error) {
	args := m.Called(ctx, id, changes)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, id, role string) (int64, int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCartRepository is a mock implementation of repositories.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) GetByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentRepository is a mock implementation of repositories.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	if args.Error(0) == nil && payment.ID == "" {
		payment.ID = "pay-1"
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) Revenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishPaymentCreated(event models.PaymentEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockPublisher) PublishCartCleanup(task models.CartCleanup) error {
	args := m.Called(task)
	return args.Error(0)
}

// MockProvider is a mock implementation of services.PaymentProvider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	args := m.Called(ctx, amount, currency)
	return args.String(0), args.Error(1)
}

// stubMenuCounter is a repositories.MenuRepository that only answers Count.
type stubMenuCounter int64

func (s stubMenuCounter) GetAll(ctx context.Context) ([]models.MenuItem, error) { return nil, nil }

func (s stubMenuCounter) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	return nil, nil
}

func (s stubMenuCounter) Create(ctx context.Context, item *models.MenuItem) error { return nil }

func (s stubMenuCounter) Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	return 0, nil
}

func (s stubMenuCounter) Delete(ctx context.Context, id string) (int64, error) { return 0, nil }

func (s stubMenuCounter) Count(ctx context.Context) (int64, error) { return int64(s), nil }
