package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"bistro/internal/models"
	"bistro/internal/repositories"

	log "github.com/sirupsen/logrus"
)

// Currency is the only currency payment intents are created in.
const Currency = "usd"

// PaymentProvider creates payment intents with an external processor.
type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// EventPublisher delivers payment events and cart cleanup tasks to the message broker.
type EventPublisher interface {
	PublishPaymentCreated(event models.PaymentEvent) error
	PublishCartCleanup(task models.CartCleanup) error
}

// PaymentService handles checkout: payment intents, payment records and cart clearing.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	cartRepo    repositories.CartRepository
	provider    PaymentProvider
	publisher   EventPublisher // nil disables events and queued cleanup
}

// NewPaymentService creates a new PaymentService. publisher may be nil.
func NewPaymentService(paymentRepo repositories.PaymentRepository, cartRepo repositories.CartRepository, provider PaymentProvider, publisher EventPublisher) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		provider:    provider,
		publisher:   publisher,
	}
}

// MinorUnits converts a price in dollars to cents.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreatePaymentIntent asks the provider for an intent worth price dollars and returns its client secret.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	amount := MinorUnits(price)
	secret, err := s.provider.CreatePaymentIntent(ctx, amount, Currency)
	if err != nil {
		return "", err
	}
	return secret, nil
}

// CreatePayment records payment and then deletes the cart items it paid for.
//
// The two steps are not atomic. When the delete fails the payment stays recorded,
// a cleanup task is queued for the listed cart items, and the error is returned
// together with the partial result.
func (s *PaymentService) CreatePayment(ctx context.Context, payment *models.Payment) (*models.CheckoutResult, error) {
	payment.ID = ""
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}
	if payment.CartIDs == nil {
		payment.CartIDs = []string{}
	}

	// 1. Record the payment
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	result := &models.CheckoutResult{
		PaymentResult: models.InsertResult{Acknowledged: true, InsertedID: payment.ID},
	}

	// 2. Clear the paid cart items
	deleted, err := s.cartRepo.DeleteMany(ctx, payment.CartIDs)
	if err != nil {
		s.queueCartCleanup(payment)
		return result, fmt.Errorf("payment %s recorded but cart not cleared: %w", payment.ID, err)
	}
	result.DeleteResult = models.DeleteResult{Acknowledged: true, DeletedCount: deleted}

	// 3. Announce it
	if s.publisher != nil {
		event := models.PaymentEvent{
			PaymentID: payment.ID,
			Email:     payment.Email,
			Price:     payment.Price,
			CartIDs:   payment.CartIDs,
		}
		if err := s.publisher.PublishPaymentCreated(event); err != nil {
			log.WithError(err).WithField("paymentID", payment.ID).Warn("failed to publish payment created event")
		}
	}

	return result, nil
}

func (s *PaymentService) queueCartCleanup(payment *models.Payment) {
	entry := log.WithField("paymentID", payment.ID)
	if s.publisher == nil {
		entry.Warn("message broker is not configured, cart cleanup not queued")
		return
	}
	task := models.CartCleanup{
		PaymentID: payment.ID,
		Email:     payment.Email,
		CartIDs:   payment.CartIDs,
	}
	if err := s.publisher.PublishCartCleanup(task); err != nil {
		entry.WithError(err).Error("failed to queue cart cleanup")
		return
	}
	entry.Info("cart cleanup queued")
}

// GetPayments lists the payments made by email.
func (s *PaymentService) GetPayments(ctx context.Context, email string) ([]models.Payment, error) {
	return s.paymentRepo.GetByEmail(ctx, email)
}

// HandleCartCleanup processes a queued cleanup task by retrying the bulk delete.
func (s *PaymentService) HandleCartCleanup(body []byte) error {
	var task models.CartCleanup
	if err := json.Unmarshal(body, &task); err != nil {
		// A malformed task can never succeed; drop it.
		log.WithError(err).Error("discarding malformed cart cleanup task")
		return nil
	}

	deleted, err := s.cartRepo.DeleteMany(context.Background(), task.CartIDs)
	if err != nil {
		return fmt.Errorf("failed to clean cart for payment %s: %w", task.PaymentID, err)
	}
	log.WithFields(log.Fields{
		"paymentID": task.PaymentID,
		"deleted":   deleted,
	}).Info("cart cleanup done")
	return nil
}
