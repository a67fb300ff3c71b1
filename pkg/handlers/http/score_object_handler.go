package http

import (
	appsimilarity "github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/app/similarity"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/handlers/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type scoreObjectHandler struct {
	logger *logrus.Logger
	scorer appsimilarity.Scorer
}

func NewScoreObjectHandler(logger *logrus.Logger, scorer appsimilarity.Scorer) Handler {
	return &scoreObjectHandler{
		logger: logger,
		scorer: scorer,
	}
}

// Handle scores the answers object named by key and stores the result next
// to it.
// POST /api/v1/similarity/object
func (h *scoreObjectHandler) Handle(c *fiber.Ctx) error {
	entry := h.logger.WithField("request_id", requestID(c))

	req, err := request.ParseSimilarityRequest(c.Body())
	if err != nil {
		entry.WithError(err).Warn("invalid similarity object request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
	}

	result, err := h.scorer.ScoreObject(c.Context(), req.Key)
	if err != nil {
		entry.WithError(err).WithField("key", req.Key).Error("failed to score answers object")
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
