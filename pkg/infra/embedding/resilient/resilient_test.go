package resilient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding/mocks"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func fastPolicy(retries uint64) Policy {
	return Policy{
		MaxRetries:      retries,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		MaxElapsedTime:  time.Second,
	}
}

func TestEncoder_RetriesTransientFailure(t *testing.T) {
	inner := mocks.NewEncoder(t)
	inner.EXPECT().Name().Return("tei").Maybe()
	inner.EXPECT().Encode(mock.Anything, []string{"a"}).
		Return(nil, embedding.NewProviderError("tei", 503, errors.New("loading"))).Once()
	inner.EXPECT().Encode(mock.Anything, []string{"a"}).
		Return([]*embedding.Embedding{{Text: "a", Value: []float64{1}}}, nil).Once()

	enc := NewEncoder(inner, httpx.NewCircuitBreaker("tei", time.Second, 5), fastPolicy(3), newTestLogger())

	out, err := enc.Encode(context.Background(), []string{"a"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].Text)
}

func TestEncoder_DoesNotRetryPermanentFailure(t *testing.T) {
	inner := mocks.NewEncoder(t)
	inner.EXPECT().Name().Return("openai").Maybe()
	inner.EXPECT().Encode(mock.Anything, mock.Anything).
		Return(nil, embedding.NewProviderError("openai", 401, errors.New("bad key"))).Once()

	enc := NewEncoder(inner, httpx.NewCircuitBreaker("openai", time.Second, 5), fastPolicy(3), newTestLogger())

	_, err := enc.Encode(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, embedding.ErrProviderNonOKResponse)
}

func TestEncoder_GivesUpAfterMaxRetries(t *testing.T) {
	inner := mocks.NewEncoder(t)
	inner.EXPECT().Name().Return("tei").Maybe()
	inner.EXPECT().Encode(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Times(3)

	enc := NewEncoder(inner, httpx.NewCircuitBreaker("tei", time.Second, 10), fastPolicy(2), newTestLogger())

	_, err := enc.Encode(context.Background(), []string{"a"})
	assert.ErrorContains(t, err, "connection refused")
}

func TestEncoder_OpenBreakerFailsFast(t *testing.T) {
	inner := mocks.NewEncoder(t)
	inner.EXPECT().Name().Return("tei").Maybe()
	inner.EXPECT().Encode(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	breaker := httpx.NewCircuitBreaker("tei", time.Minute, 1)
	enc := NewEncoder(inner, breaker, fastPolicy(0), newTestLogger())

	_, err := enc.Encode(context.Background(), []string{"a"})
	require.Error(t, err)

	_, err = enc.Encode(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, "open", breaker.State())
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", fmt.Errorf("wrap: %w", context.Canceled), false},
		{"open breaker", gobreaker.ErrOpenState, false},
		{"count mismatch", embedding.ErrEmbeddingCountMismatch, false},
		{"throttled", embedding.NewProviderError("x", 429, errors.New("slow")), true},
		{"bad request", embedding.NewProviderError("x", 400, errors.New("bad")), false},
		{"http 502", &httpx.StatusError{Code: 502}, true},
		{"network", errors.New("dial tcp: connection refused"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
