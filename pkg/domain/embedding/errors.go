package embedding

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrProviderNonOKResponse  = errors.New("non-OK response from embedding provider")
	ErrEmptyEmbeddings        = errors.New("empty embeddings from provider")
	ErrEmbeddingCountMismatch = errors.New("embedding count does not match input count")
	ErrUnsupportedProvider    = errors.New("unsupported embedding provider")
)

// ProviderError carries the status a model runtime answered with.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func NewProviderError(provider string, statusCode int, err error) *ProviderError {
	return &ProviderError{Provider: provider, StatusCode: statusCode, Err: err}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v: %d: %v", e.Provider, ErrProviderNonOKResponse, e.StatusCode, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	return []error{ErrProviderNonOKResponse, e.Err}
}

func (e *ProviderError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// CheckCount guards the one-embedding-per-sentence contract of Encoder.
func CheckCount(provider string, want, got int) error {
	if got == 0 && want > 0 {
		return fmt.Errorf("%s: %w", provider, ErrEmptyEmbeddings)
	}
	if want != got {
		return fmt.Errorf("%s: %w: sent %d, got %d", provider, ErrEmbeddingCountMismatch, want, got)
	}
	return nil
}
