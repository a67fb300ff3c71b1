package modelhub

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/config"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/httpx"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/httpx/httpxtest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

var hubFiles = map[string]string{
	"/sentence-transformers/all-MiniLM-L6-v2/resolve/main/config.json":           `{"hidden_size":384}`,
	"/sentence-transformers/all-MiniLM-L6-v2/resolve/main/1_Pooling/config.json": `{"pooling_mode_mean_tokens":true}`,
	"/sentence-transformers/all-MiniLM-L6-v2/resolve/main/model.safetensors":     "redirect",
	"/cdn/model.safetensors": "weights",
}

func newHub(t *testing.T, hits *int32) *httpx.Client {
	doer := httpxtest.NewClient(t, func(ctx *fasthttp.RequestCtx) {
		atomic.AddInt32(hits, 1)
		body, ok := hubFiles[string(ctx.Path())]
		switch {
		case !ok:
			ctx.SetStatusCode(fasthttp.StatusNotFound)
		case body == "redirect":
			ctx.Redirect("/cdn/model.safetensors", fasthttp.StatusFound)
		default:
			ctx.SetBodyString(body)
		}
	})
	return httpx.NewClient(doer, time.Second)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func modelConfig(dir string, files ...string) config.ModelConfig {
	return config.ModelConfig{
		Repository: "sentence-transformers/all-MiniLM-L6-v2",
		Revision:   "main",
		Dir:        dir,
		HubURL:     "http://hub.local",
		Files:      files,
	}
}

func TestDownloader_Ensure(t *testing.T) {
	var hits int32
	dir := t.TempDir()
	d := NewDownloader(newHub(t, &hits), modelConfig(dir, "config.json", "1_Pooling/config.json", "model.safetensors"), newTestLogger())

	m, err := d.Ensure(context.Background())
	require.NoError(t, err)
	require.Len(t, m.Files, 3)

	weights, err := os.ReadFile(filepath.Join(dir, "model.safetensors"))
	require.NoError(t, err)
	assert.Equal(t, "weights", string(weights))
	assert.FileExists(t, filepath.Join(dir, "1_Pooling", "config.json"))
	assert.FileExists(t, filepath.Join(dir, ManifestFile))

	sum := sha256.Sum256([]byte("weights"))
	assert.Equal(t, hex.EncodeToString(sum[:]), m.Files[2].SHA256)
	assert.Equal(t, int64(7), m.Files[2].Size)

	// second call in the same process does nothing
	before := atomic.LoadInt32(&hits)
	_, err = d.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, atomic.LoadInt32(&hits))
}

func TestDownloader_Ensure_SkipsCompleteSnapshot(t *testing.T) {
	var hits int32
	dir := t.TempDir()
	cfg := modelConfig(dir, "config.json")

	_, err := NewDownloader(newHub(t, &hits), cfg, newTestLogger()).Ensure(context.Background())
	require.NoError(t, err)
	first := atomic.LoadInt32(&hits)

	m, err := NewDownloader(newHub(t, &hits), cfg, newTestLogger()).Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, atomic.LoadInt32(&hits))
	assert.Equal(t, "config.json", m.Files[0].Path)
}

func TestDownloader_Ensure_RefetchesTruncatedFile(t *testing.T) {
	var hits int32
	dir := t.TempDir()
	cfg := modelConfig(dir, "config.json")

	_, err := NewDownloader(newHub(t, &hits), cfg, newTestLogger()).Ensure(context.Background())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{"), 0o644))

	_, err = NewDownloader(newHub(t, &hits), cfg, newTestLogger()).Ensure(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"hidden_size":384}`, string(data))
}

func TestDownloader_Ensure_MissingFile(t *testing.T) {
	var hits int32
	d := NewDownloader(newHub(t, &hits), modelConfig(t.TempDir(), "tokenizer.json"), newTestLogger())

	_, err := d.Ensure(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "download tokenizer.json")

	var statusErr *httpx.StatusError
	assert.True(t, errors.As(err, &statusErr))
}

func TestDownloader_Ensure_Validation(t *testing.T) {
	d := NewDownloader(nil, config.ModelConfig{Dir: t.TempDir()}, newTestLogger())
	_, err := d.Ensure(context.Background())
	assert.ErrorContains(t, err, "repository is required")
}

type recordingUploader struct {
	mu   sync.Mutex
	keys []string
}

func (u *recordingUploader) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.keys = append(u.keys, aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key))
	return &s3.PutObjectOutput{}, nil
}

func TestDownloader_Publish(t *testing.T) {
	var hits int32
	d := NewDownloader(newHub(t, &hits), modelConfig(t.TempDir(), "config.json", "1_Pooling/config.json"), newTestLogger())
	uploader := &recordingUploader{}

	require.NoError(t, d.Publish(context.Background(), uploader, "models", "all-MiniLM-L6-v2"))

	sort.Strings(uploader.keys)
	assert.Equal(t, []string{
		"models/all-MiniLM-L6-v2/1_Pooling/config.json",
		"models/all-MiniLM-L6-v2/config.json",
		"models/all-MiniLM-L6-v2/manifest.json",
	}, uploader.keys)
}
