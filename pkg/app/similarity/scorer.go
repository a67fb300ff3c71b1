package similarity

import (
	"context"
	"fmt"
	"time"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/answerset"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding"
	domain "github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/similarity"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	ModeRank   = "rank"
	ModeObject = "object"
)

//go:generate mockery --name=Scorer --dir=. --output=./mocks --filename=scorer_mock.go --case=underscore --with-expecter
type Scorer interface {
	Rank(ctx context.Context, req *domain.Request) ([]domain.ScoredAnswer, error)
	ScoreObject(ctx context.Context, key string) (*ObjectResult, error)
}

// ObjectResult is returned for a request naming an answers object.
type ObjectResult struct {
	Key           string             `json:"key"`
	SimilarityKey string             `json:"similarityKey"`
	Scores        domain.KeyedScores `json:"scores"`
}

type scorer struct {
	logger    *logrus.Logger
	encoder   embedding.Encoder
	repo      answerset.Repository
	threshold float64
}

func NewScorer(
	logger *logrus.Logger,
	encoder embedding.Encoder,
	repo answerset.Repository,
	threshold float64,
) Scorer {
	if threshold < 0 {
		threshold = domain.DefaultChoiceThreshold
	}
	return &scorer{
		logger:    logger,
		encoder:   encoder,
		repo:      repo,
		threshold: threshold,
	}
}

// Rank scores every student answer against the standard answer and returns
// them best first. The standard answer and all non-blank student answers go
// to the encoder as one batch.
func (s *scorer) Rank(ctx context.Context, req *domain.Request) (result []domain.ScoredAnswer, err error) {
	defer func() { observeRequest(ModeRank, err) }()

	inline := *req
	inline.Key = ""
	if err := inline.Validate(); err != nil {
		return nil, err
	}

	scores, err := s.scoreAgainst(ctx, req.StandardAnswer, req.StudentAnswers)
	if err != nil {
		return nil, err
	}

	markChoices := domain.IsChoiceQuestion(req.Question)
	result = make([]domain.ScoredAnswer, len(req.StudentAnswers))
	for i, answer := range req.StudentAnswers {
		result[i] = domain.ScoredAnswer{Text: answer, Score: scores[i]}
		if markChoices {
			mark := domain.MarkFor(scores[i], s.threshold)
			result[i].Mark = &mark
		}
		observeScore(ModeRank, scores[i])
	}
	domain.Rank(result)

	s.logger.WithFields(logrus.Fields{
		"answers":  len(result),
		"question": req.Question,
		"provider": s.encoder.Name(),
	}).Debug("answers ranked")
	return result, nil
}

// ScoreObject scores the grouped answers stored at key. Element 0 is the
// standard answer and is scored against itself.
func (s *scorer) ScoreObject(ctx context.Context, key string) (result *ObjectResult, err error) {
	defer func() { observeRequest(ModeObject, err) }()

	if key == "" {
		return nil, fmt.Errorf("%w: key is required", domain.ErrInvalidRequest)
	}

	answers, err := s.repo.GetAnswers(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	if len(answers) == 0 || domain.IsBlank(answers[0]) {
		return nil, fmt.Errorf("%w: %s has no standard answer", domain.ErrInvalidRequest, key)
	}

	scores, err := s.scoreAgainst(ctx, answers[0], answers)
	if err != nil {
		return nil, err
	}

	keyed := make(domain.KeyedScores, len(answers))
	for i, answer := range answers {
		keyed[answer] = scores[i]
		observeScore(ModeObject, scores[i])
	}

	similarityKey, err := s.repo.SaveScores(ctx, key, keyed)
	if err != nil {
		return nil, fmt.Errorf("save scores: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"key":            key,
		"similarity_key": similarityKey,
		"answers":        len(answers),
	}).Info("answer similarity saved")

	return &ObjectResult{
		Key:           key,
		SimilarityKey: similarityKey,
		Scores:        keyed,
	}, nil
}

// scoreAgainst returns the cosine of standard against each answer, in answer
// order. Blank answers score 0 and are never encoded, and each distinct
// sentence is encoded once.
func (s *scorer) scoreAgainst(ctx context.Context, standard string, answers []string) ([]float64, error) {
	sentences := []string{standard}
	index := map[string]int{standard: 0}
	positions := make([]int, len(answers))
	for i, answer := range answers {
		if domain.IsBlank(answer) {
			positions[i] = -1
			continue
		}
		idx, ok := index[answer]
		if !ok {
			idx = len(sentences)
			index[answer] = idx
			sentences = append(sentences, answer)
		}
		positions[i] = idx
	}

	scores := make([]float64, len(answers))
	if allBlank(positions) {
		return scores, nil
	}

	vectors, err := s.encode(ctx, sentences)
	if err != nil {
		return nil, err
	}
	cosines, err := domain.CosineToAnchor(vectors[0], vectors)
	if err != nil {
		return nil, fmt.Errorf("score answers: %w", err)
	}
	for i, idx := range positions {
		if idx >= 0 {
			scores[i] = cosines[idx]
		}
	}
	return scores, nil
}

func allBlank(positions []int) bool {
	for _, idx := range positions {
		if idx >= 0 {
			return false
		}
	}
	return true
}

func (s *scorer) encode(ctx context.Context, sentences []string) ([][]float64, error) {
	start := time.Now()
	embs, err := s.encoder.Encode(ctx, sentences)
	if prometheus.Config.EnableLatency {
		prometheus.EncodeLatency.WithLabelValues(s.encoder.Name()).
			Observe(float64(time.Since(start).Milliseconds()))
	}
	if err != nil {
		s.logger.WithError(err).WithField("provider", s.encoder.Name()).Error("failed to encode answers")
		return nil, fmt.Errorf("encode answers: %w", err)
	}
	prometheus.SentencesEncoded.WithLabelValues(s.encoder.Name()).Add(float64(len(sentences)))

	if err := embedding.CheckCount(s.encoder.Name(), len(sentences), len(embs)); err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}
	return embedding.Values(embs), nil
}

func observeRequest(mode string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	prometheus.RequestsTotal.WithLabelValues(mode, status).Inc()
}

func observeScore(mode string, score float64) {
	if prometheus.Config.EnableScores {
		prometheus.Scores.WithLabelValues(mode).Observe(score)
	}
}
