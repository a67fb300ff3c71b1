package similarity

import "sort"

type ScoredAnswer struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
	Mark  *int    `json:"mark,omitempty"`
}

// KeyedScores maps an answer to its similarity with the standard answer.
type KeyedScores map[string]float64

// Rank sorts answers by decreasing score. Equal scores keep their input order.
func Rank(answers []ScoredAnswer) {
	sort.SliceStable(answers, func(i, j int) bool {
		return answers[i].Score > answers[j].Score
	})
}
