package request

import (
	"testing"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimilarityRequest(t *testing.T) {
	tests := []struct {
		name  string
		event string
		want  *similarity.Request
	}{
		{
			name:  "array of student answers",
			event: `{"studentAnswer":["plants make food","sunlight"],"standardAnswer":"plants convert light to energy"}`,
			want: &similarity.Request{
				StudentAnswers: []string{"plants make food", "sunlight"},
				StandardAnswer: "plants convert light to energy",
			},
		},
		{
			name:  "single student answer as string",
			event: `{"studentAnswer":"yes","standardAnswer":["yes"],"question":"Q2-yes"}`,
			want: &similarity.Request{
				StudentAnswers: []string{"yes"},
				StandardAnswer: "yes",
				Question:       "Q2-yes",
			},
		},
		{
			name:  "object key",
			event: `{"key":"exam/Q1.json"}`,
			want:  &similarity.Request{Key: "exam/Q1.json"},
		},
		{
			name:  "s3Key alias",
			event: `{"s3Key":"exam/Q1.json","studentAnswer":null}`,
			want:  &similarity.Request{Key: "exam/Q1.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSimilarityRequest([]byte(tt.event))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSimilarityRequest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		event   string
		message string
	}{
		{"malformed", `{"studentAnswer":`, "malformed JSON"},
		{"not an object", `["a","b"]`, "JSON object"},
		{"missing standard", `{"studentAnswer":["a"]}`, "standardAnswer is required"},
		{"missing students", `{"standardAnswer":"s"}`, "studentAnswer is required"},
		{"two standards", `{"studentAnswer":["a"],"standardAnswer":["s1","s2"]}`, "single answer"},
		{"non-string student", `{"studentAnswer":["a",3],"standardAnswer":"s"}`, "studentAnswer[1]"},
		{"numeric standard", `{"studentAnswer":["a"],"standardAnswer":7}`, "standardAnswer must be"},
		{"numeric key", `{"key":12}`, "key must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSimilarityRequest([]byte(tt.event))
			require.Error(t, err)
			assert.ErrorIs(t, err, similarity.ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseSimilarityEvent(t *testing.T) {
	t.Run("direct payload", func(t *testing.T) {
		req, proxied, err := ParseSimilarityEvent([]byte(`{"studentAnswer":"a","standardAnswer":"b"}`))
		require.NoError(t, err)
		assert.False(t, proxied)
		assert.Equal(t, &similarity.Request{StudentAnswers: []string{"a"}, StandardAnswer: "b"}, req)
	})

	t.Run("API Gateway proxy body", func(t *testing.T) {
		event := `{"httpMethod":"POST","body":"{\"studentAnswer\":[\"a\"],\"standardAnswer\":\"b\"}"}`
		req, proxied, err := ParseSimilarityEvent([]byte(event))
		require.NoError(t, err)
		assert.True(t, proxied)
		assert.Equal(t, &similarity.Request{StudentAnswers: []string{"a"}, StandardAnswer: "b"}, req)
	})

	t.Run("bad proxy body", func(t *testing.T) {
		_, proxied, err := ParseSimilarityEvent([]byte(`{"body":"not json"}`))
		assert.True(t, proxied)
		assert.ErrorIs(t, err, similarity.ErrInvalidRequest)
		assert.ErrorContains(t, err, "malformed JSON body")
	})
}
