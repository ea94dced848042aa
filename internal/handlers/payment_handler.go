package handlers

import (
	"time"

	"bistro/internal/logger"
	"bistro/internal/middleware"
	"bistro/internal/models"
	"bistro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for checkout.
type PaymentHandler struct {
	service *services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

// RegisterRoutes registers the payment routes.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router, g Guards) {
	router.Post("/create-payment-intent", h.HandleCreatePaymentIntent)
	router.Post("/payment", h.HandleCreatePayment)
	router.Get("/payment/:email", g.Verify, middleware.SelfOnly("email"), h.HandleGetPayments)
}

// PaymentIntentRequest is the body of a payment intent request.
type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// PaymentRequest is the body recording a completed payment.
type PaymentRequest struct {
	Email         string    `json:"email" validate:"required,email,max=255"`
	Price         float64   `json:"price" validate:"gte=0"`
	TransactionID string    `json:"transactionId" validate:"max=255"`
	Date          time.Time `json:"date"`
	CartIDs       []string  `json:"cartIds" validate:"dive,max=36"`
	MenuItemIDs   []string  `json:"menuItemIds" validate:"dive,max=36"`
	Status        string    `json:"status" validate:"max=32"`
}

// HandleCreatePaymentIntent creates a provider payment intent for price dollars.
func (h *PaymentHandler) HandleCreatePaymentIntent(c *fiber.Ctx) error {
	var req PaymentIntentRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	secret, err := h.service.CreatePaymentIntent(c.UserContext(), req.Price)
	if err != nil {
		return storeFailure(c, "Could not create payment intent", err)
	}
	return c.JSON(fiber.Map{
		"clientSecret": secret,
	})
}

// HandleCreatePayment records a payment and clears the paid cart items.
// If clearing fails the payment stays recorded and the partial result is returned with a 500.
func (h *PaymentHandler) HandleCreatePayment(c *fiber.Ctx) error {
	var req PaymentRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	payment := &models.Payment{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Date:          req.Date,
		CartIDs:       req.CartIDs,
		MenuItemIDs:   req.MenuItemIDs,
		Status:        req.Status,
	}
	result, err := h.service.CreatePayment(c.UserContext(), payment)
	if err != nil {
		if result != nil {
			logger.FromCtx(c).WithError(err).Error("payment recorded but cart was not cleared")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message":       "Payment recorded but cart was not cleared",
				"error":         err.Error(),
				"paymentResult": result.PaymentResult,
			})
		}
		return storeFailure(c, "Could not record payment", err)
	}
	return c.JSON(result)
}

// HandleGetPayments lists the caller's own payments.
func (h *PaymentHandler) HandleGetPayments(c *fiber.Ctx) error {
	payments, err := h.service.GetPayments(c.UserContext(), c.Params("email"))
	if err != nil {
		return storeFailure(c, "Could not retrieve payments", err)
	}
	return c.JSON(payments)
}
