package handlers

import (
	"errors"

	"bistro/internal/logger"
	"bistro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// JWTHandler issues identity tokens.
type JWTHandler struct {
	authService *services.AuthService
}

// NewJWTHandler creates a new JWTHandler.
func NewJWTHandler(authService *services.AuthService) *JWTHandler {
	return &JWTHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the token route. It is deliberately ungated.
func (h *JWTHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/jwt", h.HandleIssueToken)
}

// HandleIssueToken signs the posted identity payload.
// TRUST BOUNDARY: any caller can mint a token for any email it claims.
func (h *JWTHandler) HandleIssueToken(c *fiber.Ctx) error {
	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	token, err := h.authService.IssueToken(payload)
	if err != nil {
		if errors.Is(err, services.ErrMissingSecret) {
			logger.FromCtx(c).Error("ACCESS_TOKEN is not set")
		}
		return storeFailure(c, "Could not issue token", err)
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}
