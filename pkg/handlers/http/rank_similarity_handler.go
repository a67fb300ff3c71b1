package http

import (
	appsimilarity "github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/app/similarity"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/handlers/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type rankSimilarityHandler struct {
	logger *logrus.Logger
	scorer appsimilarity.Scorer
}

func NewRankSimilarityHandler(logger *logrus.Logger, scorer appsimilarity.Scorer) Handler {
	return &rankSimilarityHandler{
		logger: logger,
		scorer: scorer,
	}
}

// Handle ranks inline student answers against the standard answer.
// POST /api/v1/similarity
func (h *rankSimilarityHandler) Handle(c *fiber.Ctx) error {
	entry := h.logger.WithField("request_id", requestID(c))

	req, err := request.ParseSimilarityRequest(c.Body())
	if err != nil {
		entry.WithError(err).Warn("invalid similarity request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ranked, err := h.scorer.Rank(c.Context(), req)
	if err != nil {
		entry.WithError(err).Error("failed to rank answers")
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(ranked)
}
