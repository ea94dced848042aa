package handlers

import (
	"bistro/internal/models"
	"bistro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for carts. None of its routes are gated.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes registers the cart routes.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	carts := router.Group("/carts")
	carts.Post("/", h.HandleAddToCart)
	carts.Get("/", h.HandleGetCart)
	carts.Delete("/:id", h.HandleRemoveFromCart)
}

// CartItemRequest is the body for adding to a cart.
type CartItemRequest struct {
	MenuID string  `json:"menuId" validate:"required,max=36"`
	Email  string  `json:"email" validate:"required,email,max=255"`
	Name   string  `json:"name" validate:"max=255"`
	Image  string  `json:"image"`
	Price  float64 `json:"price" validate:"gte=0"`
}

// HandleAddToCart stores a cart item.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req CartItemRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	item := &models.CartItem{
		MenuID: req.MenuID,
		Email:  req.Email,
		Name:   req.Name,
		Image:  req.Image,
		Price:  req.Price,
	}
	result, err := h.service.AddToCart(c.UserContext(), item)
	if err != nil {
		return storeFailure(c, "Could not add to cart", err)
	}
	return c.JSON(result)
}

// HandleGetCart lists cart items for the email query parameter.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	items, err := h.service.GetCart(c.UserContext(), c.Query("email"))
	if err != nil {
		return storeFailure(c, "Could not retrieve cart", err)
	}
	return c.JSON(items)
}

// HandleRemoveFromCart deletes a cart item by id.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	result, err := h.service.RemoveFromCart(c.UserContext(), c.Params("id"))
	if err != nil {
		return storeFailure(c, "Could not delete cart item", err)
	}
	return c.JSON(result)
}
