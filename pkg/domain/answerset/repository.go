package answerset

import (
	"context"
	"strings"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/similarity"
)

const similaritySuffix = "_similarity.json"

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore --with-expecter

// Repository reads grouped answers from object storage and writes their
// scores back next to them. A grouped answers object is a JSON array whose
// first element is the standard answer.
type Repository interface {
	GetAnswers(ctx context.Context, key string) ([]string, error)
	SaveScores(ctx context.Context, key string, scores similarity.KeyedScores) (string, error)
}

// SimilarityKey derives the key the scores for key are stored under,
// "doc/match/Q1.json" becoming "doc/match/Q1_similarity.json". The suffix is
// appended to keys without a .json extension so the source is never replaced.
func SimilarityKey(key string) string {
	return strings.TrimSuffix(key, ".json") + similaritySuffix
}
