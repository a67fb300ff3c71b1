package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/answerset"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/similarity"
	"github.com/sirupsen/logrus"
)

const jsonContentType = "application/json"

//go:generate mockery --name=S3API --dir=. --output=./mocks --filename=s3_api_mock.go --case=underscore --with-expecter
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3AnswerRepository struct {
	client S3API
	bucket string
	logger *logrus.Logger
}

func NewS3AnswerRepository(client S3API, bucket string, logger *logrus.Logger) answerset.Repository {
	return &S3AnswerRepository{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

func (r *S3AnswerRepository) GetAnswers(ctx context.Context, key string) ([]string, error) {
	if r.bucket == "" {
		return nil, fmt.Errorf("storage bucket is not configured")
	}

	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		r.logger.WithError(err).WithField("key", key).Error("failed to get answers object")
		return nil, fmt.Errorf("get s3://%s/%s: %w", r.bucket, key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", r.bucket, key, err)
	}

	var answers []string
	if err := json.Unmarshal(body, &answers); err != nil {
		return nil, fmt.Errorf("decode s3://%s/%s: %w", r.bucket, key, err)
	}
	return answers, nil
}

func (r *S3AnswerRepository) SaveScores(ctx context.Context, key string, scores similarity.KeyedScores) (string, error) {
	if r.bucket == "" {
		return "", fmt.Errorf("storage bucket is not configured")
	}

	body, err := json.Marshal(scores)
	if err != nil {
		return "", fmt.Errorf("encode scores: %w", err)
	}

	target := answerset.SimilarityKey(key)
	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(target),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(jsonContentType),
	})
	if err != nil {
		r.logger.WithError(err).WithField("key", target).Error("failed to put similarity object")
		return "", fmt.Errorf("put s3://%s/%s: %w", r.bucket, target, err)
	}

	r.logger.WithField("key", target).WithField("answers", len(scores)).Debug("similarity scores saved")
	return target, nil
}
