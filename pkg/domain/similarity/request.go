package similarity

import (
	"fmt"
	"strings"
)

// Request is a single scoring job. When Key is set the answers are read from
// object storage and the inline fields are ignored.
type Request struct {
	StudentAnswers []string `json:"studentAnswer"`
	StandardAnswer string   `json:"standardAnswer"`
	Key            string   `json:"key,omitempty"`
	Question       string   `json:"question,omitempty"`
}

func (r *Request) Validate() error {
	if r.Key != "" {
		return nil
	}
	if strings.TrimSpace(r.StandardAnswer) == "" {
		return fmt.Errorf("%w: standardAnswer is required", ErrInvalidRequest)
	}
	if len(r.StudentAnswers) == 0 {
		return fmt.Errorf("%w: studentAnswer is required", ErrInvalidRequest)
	}
	return nil
}

// IsBlank reports whether an answer carries no text worth encoding.
func IsBlank(answer string) bool {
	return strings.TrimSpace(answer) == ""
}
