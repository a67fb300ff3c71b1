package similarity

import "strings"

const DefaultChoiceThreshold = 0.4

var choiceSuffixes = map[string]struct{}{
	"a": {}, "b": {}, "c": {}, "d": {}, "e": {}, "yes": {}, "no": {},
}

// IsChoiceQuestion reports whether a question key such as "Q3-b" names a
// multiple choice or yes/no box, which is marked right or wrong rather than
// carrying a graded score.
func IsChoiceQuestion(question string) bool {
	if question == "" {
		return false
	}
	parts := strings.Split(question, "-")
	last := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
	_, ok := choiceSuffixes[last]
	return ok
}

func MarkFor(score, threshold float64) int {
	if score > threshold {
		return 1
	}
	return 0
}
