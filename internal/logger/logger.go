package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	requestIDKey = "requestID"
	localsKey    = "logger"
)

// Init sets the process-wide formatter and level. Unknown levels fall back to info.
func Init(level string) {
	formatter := new(logrus.TextFormatter)
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	formatter.FullTimestamp = true
	logrus.SetFormatter(formatter)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// Default returns a logger without a request ID.
func Default() *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger())
}

// Middleware attaches a request-scoped entry to the context and logs one line per request.
// It expects the requestid middleware to run first.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		entry := logrus.WithField(requestIDKey, c.Locals("requestid"))
		c.Locals(localsKey, entry)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		fields := logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  status,
			"latency": time.Since(start).String(),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.WithFields(fields).Error("request failed")
		case c.Path() == "/health":
			entry.WithFields(fields).Debug("request")
		default:
			entry.WithFields(fields).Info("request")
		}
		return err
	}
}

// FromCtx returns the request logger, or the default logger outside a request.
func FromCtx(c *fiber.Ctx) *logrus.Entry {
	if entry, ok := c.Locals(localsKey).(*logrus.Entry); ok {
		return entry
	}
	return Default()
}
