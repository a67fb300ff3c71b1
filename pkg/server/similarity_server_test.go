package server

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/app/similarity/mocks"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/config"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/similarity"
	handlers "github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/handlers/http"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/server/middleware"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*SimilarityServer, *mocks.Scorer, *bytes.Buffer) {
	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)

	scorer := mocks.NewScorer(t)
	transport := handlers.HandlerTransport{
		RankSimilarityHandler: handlers.NewRankSimilarityHandler(logger, scorer),
		ScoreObjectHandler:    handlers.NewScoreObjectHandler(logger, scorer),
		GetVersionHandler:     handlers.NewGetVersionHandler(logger),
	}

	s := NewSimilarityServer(SimilarityServerDI{
		Config:              &config.Config{},
		Logger:              logger,
		MiddlewareTransport: middleware.NewTransport(middleware.NewAccessLogMiddleware(logger, HealthPath)),
		Routers:             []router.ServerRouter{router.NewSimilarityRouter(transport)},
	})
	return s, scorer, &logs
}

func TestSimilarityServer_Health(t *testing.T) {
	s, _, logs := newTestServer(t)

	for _, path := range []string{HealthPath, AdminHealthPath} {
		resp, err := s.Router.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	assert.NotContains(t, logs.String(), "path="+HealthPath+" ")
}

func TestSimilarityServer_RoutesSimilarity(t *testing.T) {
	s, scorer, logs := newTestServer(t)
	scorer.EXPECT().Rank(mock.Anything, mock.Anything).
		Return([]similarity.ScoredAnswer{{Text: "a", Score: 0.5}}, nil)

	req := httptest.NewRequest("POST", "/api/v1/similarity", strings.NewReader(`{"studentAnswer":"a","standardAnswer":"s"}`))
	resp, err := s.Router.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"text":"a","score":0.5}]`, string(body))
	assert.Contains(t, logs.String(), "request served")
}

func TestSimilarityServer_RecoversPanics(t *testing.T) {
	s, scorer, _ := newTestServer(t)
	scorer.EXPECT().Rank(mock.Anything, mock.Anything).Run(func(_ context.Context, _ *similarity.Request) {
		panic("boom")
	}).Return(nil, nil)

	req := httptest.NewRequest("POST", "/api/v1/similarity", strings.NewReader(`{"studentAnswer":"a","standardAnswer":"s"}`))
	resp, err := s.Router.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestSimilarityRouter_InvalidTransport(t *testing.T) {
	err := router.NewSimilarityRouter(handlers.HandlerTransport{}).BuildRoutes(fiber.New())
	assert.ErrorIs(t, err, router.ErrInvalidHandlerTransport)
}
