package request

import (
	"fmt"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/similarity"
	"github.com/valyala/fastjson"
)

// ParseSimilarityRequest reads a similarity request body.
//
//	{"studentAnswer": ["..."] | "...", "standardAnswer": "..." | ["..."], "key": "...", "question": "..."}
func ParseSimilarityRequest(data []byte) (*similarity.Request, error) {
	var p fastjson.Parser
	v, err := parseJSONObject(&p, data, "event")
	if err != nil {
		return nil, err
	}
	return parseObject(v)
}

// ParseSimilarityEvent reads a Lambda invocation event. Besides the direct
// payload it accepts an API Gateway proxy event whose body carries it;
// proxied reports which one arrived, so the reply can take the same shape.
func ParseSimilarityEvent(data []byte) (req *similarity.Request, proxied bool, err error) {
	var p fastjson.Parser
	v, err := parseJSONObject(&p, data, "event")
	if err != nil {
		return nil, false, err
	}
	if body := v.Get("body"); body != nil && body.Type() == fastjson.TypeString && v.Get("studentAnswer") == nil {
		raw, _ := body.StringBytes()
		var bp fastjson.Parser
		inner, err := parseJSONObject(&bp, raw, "body")
		if err != nil {
			return nil, true, err
		}
		req, err := parseObject(inner)
		return req, true, err
	}
	req, err = parseObject(v)
	return req, false, err
}

func parseJSONObject(p *fastjson.Parser, data []byte, what string) (*fastjson.Value, error) {
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed JSON %s: %v", similarity.ErrInvalidRequest, what, err)
	}
	if v.Type() != fastjson.TypeObject {
		return nil, fmt.Errorf("%w: %s must be a JSON object", similarity.ErrInvalidRequest, what)
	}
	return v, nil
}

func parseObject(v *fastjson.Value) (*similarity.Request, error) {
	students, err := stringList(v.Get("studentAnswer"), "studentAnswer")
	if err != nil {
		return nil, err
	}

	standards, err := stringList(v.Get("standardAnswer"), "standardAnswer")
	if err != nil {
		return nil, err
	}
	if len(standards) > 1 {
		return nil, fmt.Errorf("%w: standardAnswer must hold a single answer, got %d", similarity.ErrInvalidRequest, len(standards))
	}

	req := &similarity.Request{StudentAnswers: students}
	if len(standards) == 1 {
		req.StandardAnswer = standards[0]
	}

	if req.Key, err = optionalString(v, "key", "s3Key"); err != nil {
		return nil, err
	}
	if req.Question, err = optionalString(v, "question"); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// stringList accepts a string or an array of strings.
func stringList(v *fastjson.Value, field string) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	switch v.Type() {
	case fastjson.TypeNull:
		return nil, nil
	case fastjson.TypeString:
		s, _ := v.StringBytes()
		return []string{string(s)}, nil
	case fastjson.TypeArray:
		items, _ := v.Array()
		out := make([]string, len(items))
		for i, item := range items {
			if item.Type() != fastjson.TypeString {
				return nil, fmt.Errorf("%w: %s[%d] must be a string", similarity.ErrInvalidRequest, field, i)
			}
			s, _ := item.StringBytes()
			out[i] = string(s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a string or an array of strings", similarity.ErrInvalidRequest, field)
	}
}

// optionalString returns the first of fields present on v.
func optionalString(v *fastjson.Value, fields ...string) (string, error) {
	for _, field := range fields {
		f := v.Get(field)
		if f == nil || f.Type() == fastjson.TypeNull {
			continue
		}
		if f.Type() != fastjson.TypeString {
			return "", fmt.Errorf("%w: %s must be a string", similarity.ErrInvalidRequest, field)
		}
		s, _ := f.StringBytes()
		return string(s), nil
	}
	return "", nil
}
