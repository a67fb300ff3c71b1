package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type accessLogMiddleware struct {
	logger    *logrus.Logger
	skipPaths []string
}

// NewAccessLogMiddleware logs one line per request, leaving out the given
// path prefixes (health probes).
func NewAccessLogMiddleware(logger *logrus.Logger, skipPaths ...string) Middleware {
	return &accessLogMiddleware{
		logger:    logger,
		skipPaths: skipPaths,
	}
}

func (m *accessLogMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, p := range m.skipPaths {
			if strings.HasPrefix(c.Path(), p) {
				return c.Next()
			}
		}

		start := time.Now()
		err := c.Next()

		entry := m.logger.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": string(c.Response().Header.Peek("X-Request-ID")),
		})
		if err != nil {
			entry.WithError(err).Error("request failed")
			return err
		}
		entry.Info("request served")
		return nil
	}
}
