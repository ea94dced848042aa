package logger_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLogsRequestWithID(t *testing.T) {
	var buf bytes.Buffer
	prev := logrus.StandardLogger().Out
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(prev) })
	logger.Init("debug")

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(logger.Middleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		logger.FromCtx(c).Info("inside handler")
		return c.SendString("pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-42")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	out := buf.String()
	assert.Contains(t, out, "inside handler")
	assert.Contains(t, out, "requestID=req-42")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "path=/ping")
}

func TestInitUnknownLevel(t *testing.T) {
	logger.Init("chatty")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
