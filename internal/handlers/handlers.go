package handlers

import (
	"errors"
	"fmt"

	"bistro/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Guards are the gates handlers compose in front of protected routes.
type Guards struct {
	// Verify rejects requests without a valid bearer token.
	Verify fiber.Handler
	// Admin rejects verified identities that are not admins. Must follow Verify.
	Admin fiber.Handler
}

var validate = validator.New()

// parseBody decodes the request body into dst and validates it.
// On failure the 400 response is already written and ok is false.
func parseBody(c *fiber.Ctx, dst interface{}) (ok bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		logger.FromCtx(c).WithError(err).Debug("invalid request body")
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return false, err
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return true, nil
}

// storeFailure logs err and answers 500.
func storeFailure(c *fiber.Ctx, message string, err error) error {
	logger.FromCtx(c).WithError(err).Error(message)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
