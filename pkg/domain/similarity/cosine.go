package similarity

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Cosine returns the cosine similarity of a and b. A zero vector has no
// direction, so it scores 0 against anything.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}

	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	score := floats.Dot(a, b) / (normA * normB)
	switch {
	case score > 1:
		return 1, nil
	case score < -1:
		return -1, nil
	}
	return score, nil
}

// CosineToAnchor scores every vector against anchor, in order.
func CosineToAnchor(anchor []float64, vectors [][]float64) ([]float64, error) {
	scores := make([]float64, len(vectors))
	for i, v := range vectors {
		s, err := Cosine(anchor, v)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		scores[i] = s
	}
	return scores, nil
}
