package answerset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityKey(t *testing.T) {
	assert.Equal(t, "doc/match/Q1_similarity.json", SimilarityKey("doc/match/Q1.json"))
	assert.Equal(t, "answers_similarity.json", SimilarityKey("answers.json"))
	assert.Equal(t, "raw/Q2_similarity.json", SimilarityKey("raw/Q2"))
	assert.Equal(t, "v1.json.d/Q3_similarity.json", SimilarityKey("v1.json.d/Q3.json"))
}
