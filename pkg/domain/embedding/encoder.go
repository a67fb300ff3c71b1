package embedding

import (
	"context"
)

//go:generate mockery --name=Encoder --dir=. --output=./mocks --filename=encoder_mock.go --case=underscore --with-expecter

// Encoder turns sentences into embeddings. Implementations return exactly one
// embedding per input sentence, in input order.
type Encoder interface {
	Encode(ctx context.Context, sentences []string) ([]*Embedding, error)
	Name() string
}
