package handlers

import (
	"bistro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler serves reviews.
type ReviewHandler struct {
	service *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// RegisterRoutes registers the review route.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/review", h.HandleGetReviews)
}

// HandleGetReviews lists all reviews.
func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetReviews(c.UserContext())
	if err != nil {
		return storeFailure(c, "Could not retrieve reviews", err)
	}
	return c.JSON(reviews)
}
