// Package resilient decorates an Encoder with exponential retry and a circuit
// breaker, so a model runtime that is warming up or throttling is retried
// while one that is down fails fast.
package resilient

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

type Policy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		MaxElapsedTime:  20 * time.Second,
	}
}

type encoder struct {
	inner   embedding.Encoder
	breaker httpx.CircuitBreaker
	policy  Policy
	logger  *logrus.Logger
}

func NewEncoder(
	inner embedding.Encoder,
	breaker httpx.CircuitBreaker,
	policy Policy,
	logger *logrus.Logger,
) embedding.Encoder {
	return &encoder{
		inner:   inner,
		breaker: breaker,
		policy:  policy,
		logger:  logger,
	}
}

func (e *encoder) Name() string {
	return e.inner.Name()
}

func (e *encoder) Encode(ctx context.Context, sentences []string) ([]*embedding.Embedding, error) {
	var out []*embedding.Embedding

	operation := func() error {
		err := e.breaker.Execute(func() error {
			res, err := e.inner.Encode(ctx, sentences)
			if err != nil {
				return err
			}
			out = res
			return nil
		})
		if err != nil && !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		e.logger.WithError(err).
			WithField("provider", e.inner.Name()).
			WithField("retry_in", wait.String()).
			Warn("embedding request failed, retrying")
	}

	if err := backoff.RetryNotify(operation, e.newBackOff(ctx), notify); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *encoder) newBackOff(ctx context.Context) backoff.BackOff {
	expo := backoff.NewExponentialBackOff()
	if e.policy.InitialInterval > 0 {
		expo.InitialInterval = e.policy.InitialInterval
	}
	if e.policy.MaxInterval > 0 {
		expo.MaxInterval = e.policy.MaxInterval
	}
	expo.MaxElapsedTime = e.policy.MaxElapsedTime
	return backoff.WithContext(backoff.WithMaxRetries(expo, e.policy.MaxRetries), ctx)
}

// IsRetryable reports whether err is worth another attempt. Statuses reported
// by a provider decide for themselves; an open breaker, a cancelled context
// and malformed provider output never are; transport failures are.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	if errors.Is(err, embedding.ErrEmptyEmbeddings) || errors.Is(err, embedding.ErrEmbeddingCountMismatch) {
		return false
	}

	var retryable interface{ Retryable() bool }
	if errors.As(err, &retryable) {
		return retryable.Retryable()
	}
	return true
}
