package middleware

import "github.com/gofiber/fiber/v2"

// SelfOnly rejects the request with 403 unless route parameter param equals the verified email.
func SelfOnly(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsSelf(c, c.Params(param)) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "unauthorized access",
			})
		}
		return c.Next()
	}
}

// IsSelf reports whether email is the verified identity's email.
func IsSelf(c *fiber.Ctx, email string) bool {
	own := IdentityEmail(c)
	return own != "" && own == email
}
