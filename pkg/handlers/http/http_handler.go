package http

import (
	"errors"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/similarity"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	RankSimilarityHandler Handler
	ScoreObjectHandler    Handler
	GetVersionHandler     Handler
}

// errorStatus maps a scoring error to a response status: bad input is the
// caller's fault, anything else is a failed dependency.
func errorStatus(err error) int {
	if errors.Is(err, similarity.ErrInvalidRequest) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusBadGateway
}

func requestID(c *fiber.Ctx) string {
	id := c.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(RequestIDHeader, id)
	return id
}
