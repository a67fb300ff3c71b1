package awsx

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_StaticCredentials(t *testing.T) {
	awsCfg, err := LoadConfig(context.Background(), config.AWSConfig{
		Region:          "ap-east-1",
		AccessKeyID:     "AKIA_TEST",
		SecretAccessKey: "SECRET_TEST",
	})
	require.NoError(t, err)

	assert.Equal(t, "ap-east-1", awsCfg.Region)
	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIA_TEST", creds.AccessKeyID)
	assert.Equal(t, "SECRET_TEST", creds.SecretAccessKey)
}

func TestLoadConfig_AssumeRole(t *testing.T) {
	awsCfg, err := LoadConfig(context.Background(), config.AWSConfig{
		Region:          "us-east-1",
		AccessKeyID:     "AKIA_TEST",
		SecretAccessKey: "SECRET_TEST",
		RoleARN:         "arn:aws:iam::123456789012:role/grader",
	})
	require.NoError(t, err)

	cache, ok := awsCfg.Credentials.(*aws.CredentialsCache)
	require.True(t, ok)
	assert.True(t, cache.IsCredentialsProvider(&stscreds.AssumeRoleProvider{}))
}

func TestNewS3Client_Endpoint(t *testing.T) {
	awsCfg, err := LoadConfig(context.Background(), config.AWSConfig{
		Region:          "us-east-1",
		AccessKeyID:     "AKIA_TEST",
		SecretAccessKey: "SECRET_TEST",
	})
	require.NoError(t, err)

	client := NewS3Client(awsCfg, config.AWSConfig{Endpoint: "http://localhost:4566"}, config.StorageConfig{UsePathStyle: true})

	opts := client.Options()
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
}
