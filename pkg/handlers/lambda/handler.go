// Package lambda adapts the scorer to the AWS Lambda runtime.
package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	appsimilarity "github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/app/similarity"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/similarity"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/handlers/request"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	logger *logrus.Logger
	scorer appsimilarity.Scorer
}

func NewHandler(logger *logrus.Logger, scorer appsimilarity.Scorer) *Handler {
	return &Handler{
		logger: logger,
		scorer: scorer,
	}
}

// Handle returns the ranked list of {text, score} for inline answers, or the
// object result when the event names an answers object. Events that came
// through an API Gateway proxy integration get an API Gateway response, with
// failures reported as its status code.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (interface{}, error) {
	entry := h.logger.WithField("request_id", requestID(ctx))

	req, proxied, err := request.ParseSimilarityEvent(event)
	if err != nil {
		entry.WithError(err).Warn("invalid similarity event")
		return h.reply(proxied, nil, err)
	}

	if req.Key != "" {
		result, err := h.scorer.ScoreObject(ctx, req.Key)
		if err != nil {
			entry.WithError(err).WithField("key", req.Key).Error("failed to score answers object")
			return h.reply(proxied, nil, err)
		}
		return h.reply(proxied, result, nil)
	}

	ranked, err := h.scorer.Rank(ctx, req)
	if err != nil {
		entry.WithError(err).Error("failed to rank answers")
		return h.reply(proxied, nil, err)
	}
	entry.WithField("answers", len(ranked)).Info("answers ranked")
	return h.reply(proxied, ranked, nil)
}

func (h *Handler) reply(proxied bool, result interface{}, err error) (interface{}, error) {
	if !proxied {
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	status := http.StatusOK
	payload := result
	if err != nil {
		status = http.StatusBadGateway
		if errors.Is(err, similarity.ErrInvalidRequest) {
			status = http.StatusBadRequest
		}
		payload = map[string]string{"error": err.Error()}
	}
	body, mErr := json.Marshal(payload)
	if mErr != nil {
		return nil, mErr
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return lc.AwsRequestID
	}
	return ""
}
