package embedding

import (
	"math"
	"time"
)

type Embedding struct {
	Text      string    `json:"text"`
	Value     []float64 `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// Normalize scales v to unit length in place. Zero vectors are left as they are.
func Normalize(v []float64) {
	var sumSquares float64
	for _, val := range v {
		sumSquares += val * val
	}

	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		return
	}

	for i := range v {
		v[i] /= norm
	}
}

// FromFloat32 copies a float32 vector, as returned by most model runtimes,
// into a normalised float64 embedding.
func FromFloat32(text string, raw []float32) *Embedding {
	value := make([]float64, len(raw))
	for i, f := range raw {
		value[i] = float64(f)
	}
	Normalize(value)
	return &Embedding{
		Text:      text,
		Value:     value,
		CreatedAt: time.Now(),
	}
}

func FromFloat64(text string, raw []float64) *Embedding {
	Normalize(raw)
	return &Embedding{
		Text:      text,
		Value:     raw,
		CreatedAt: time.Now(),
	}
}

// Values extracts the vectors of embs in order.
func Values(embs []*Embedding) [][]float64 {
	out := make([][]float64, len(embs))
	for i, e := range embs {
		out[i] = e.Value
	}
	return out
}
