package middleware

import (
	"strings"

	"bistro/internal/logger"
	"bistro/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
)

const identityKey = "decoded"

// AuthRequired is a Fiber middleware that verifies the bearer token and stores its claims.
// Every rejection is a 401 with the same body, whatever the cause.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return forbiddenAccess(c)
		}

		// "<scheme> <token>"; the scheme itself is not checked
		parts := strings.Fields(authHeader)
		if len(parts) < 2 {
			return forbiddenAccess(c)
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			logger.FromCtx(c).WithError(err).Debug("token rejected")
			return forbiddenAccess(c)
		}

		c.Locals(identityKey, claims)
		return c.Next()
	}
}

// Identity returns the claims stored by AuthRequired, or nil.
func Identity(c *fiber.Ctx) jwt.MapClaims {
	claims, _ := c.Locals(identityKey).(jwt.MapClaims)
	return claims
}

// IdentityEmail returns the email claim of the verified identity, or "".
func IdentityEmail(c *fiber.Ctx) string {
	email, _ := Identity(c)["email"].(string)
	return email
}

func forbiddenAccess(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "forbidden access",
	})
}
