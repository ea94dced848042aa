package middleware

import (
	"bistro/internal/logger"
	"bistro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminRequired lets the request through only when the verified identity belongs to an admin.
// It must run after AuthRequired and queries the user store on every request.
// Denials answer 401, not 403, for compatibility with existing clients.
func AdminRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := IdentityEmail(c)
		isAdmin, err := authService.IsAdmin(c.UserContext(), email)
		if err != nil {
			logger.FromCtx(c).WithError(err).Error("admin lookup failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not verify role",
				"error":   err.Error(),
			})
		}
		if !isAdmin {
			return forbiddenAccess(c)
		}
		return c.Next()
	}
}
