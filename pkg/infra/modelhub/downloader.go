// Package modelhub performs the one-time download of a sentence-transformers
// model snapshot from a Hugging Face compatible hub.
package modelhub

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/config"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/httpx"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/version"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHubURL      = "https://huggingface.co"
	defaultRevision    = "main"
	defaultMaxParallel = 4

	DownloadTimeout = 10 * time.Minute
	MaxFileSize     = 2 << 30
)

// NewHubClient returns a client sized for model weights, which are well past
// the limits used for embedding calls.
func NewHubClient() *httpx.Client {
	return httpx.NewClient(httpx.NewFastHTTPClient(
		httpx.WithTimeout(DownloadTimeout),
		httpx.WithMaxResponseBodySize(MaxFileSize),
		httpx.WithUserAgent(version.UserAgent()),
	), DownloadTimeout)
}

// Uploader is the part of the S3 client Publish needs.
type Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Downloader struct {
	client *httpx.Client
	cfg    config.ModelConfig
	logger *logrus.Logger

	once     sync.Once
	manifest *Manifest
	err      error
}

func NewDownloader(client *httpx.Client, cfg config.ModelConfig, logger *logrus.Logger) *Downloader {
	if cfg.HubURL == "" {
		cfg.HubURL = defaultHubURL
	}
	if cfg.Revision == "" {
		cfg.Revision = defaultRevision
	}
	return &Downloader{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

func (d *Downloader) Dir() string {
	return d.cfg.Dir
}

// Ensure makes sure the snapshot is on disk. It downloads at most once per
// process and not at all when a matching manifest is already present.
func (d *Downloader) Ensure(ctx context.Context) (*Manifest, error) {
	d.once.Do(func() {
		d.manifest, d.err = d.ensure(ctx)
	})
	return d.manifest, d.err
}

func (d *Downloader) ensure(ctx context.Context) (*Manifest, error) {
	if d.cfg.Repository == "" {
		return nil, fmt.Errorf("model repository is required")
	}
	if d.cfg.Dir == "" {
		return nil, fmt.Errorf("model directory is required")
	}
	if len(d.cfg.Files) == 0 {
		return nil, fmt.Errorf("no model files configured for %s", d.cfg.Repository)
	}

	if m, err := readManifest(d.cfg.Dir); err == nil && m.complete(d.cfg.Dir, d.cfg.Repository, d.cfg.Revision, d.cfg.Files) {
		d.logger.WithField("dir", d.cfg.Dir).Info("model snapshot already present")
		return m, nil
	}

	start := time.Now()
	entries := make([]FileEntry, len(d.cfg.Files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultMaxParallel)
	for i, name := range d.cfg.Files {
		i, name := i, name
		g.Go(func() error {
			entry, err := d.fetch(gctx, name)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := &Manifest{
		Repository:   d.cfg.Repository,
		Revision:     d.cfg.Revision,
		DownloadedAt: time.Now().UTC(),
		Files:        entries,
	}
	if err := writeManifest(d.cfg.Dir, m); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	d.logger.WithFields(logrus.Fields{
		"repository": d.cfg.Repository,
		"revision":   d.cfg.Revision,
		"files":      len(entries),
		"took":       time.Since(start).String(),
	}).Info("model snapshot downloaded")
	return m, nil
}

func (d *Downloader) fetch(ctx context.Context, name string) (FileEntry, error) {
	headers := map[string]string{}
	if d.cfg.Token != "" {
		headers["Authorization"] = "Bearer " + d.cfg.Token
	}

	body, err := d.client.Get(ctx, d.fileURL(name), headers)
	if err != nil {
		return FileEntry{}, fmt.Errorf("download %s: %w", name, err)
	}

	target := filepath.Join(d.cfg.Dir, filepath.FromSlash(name))
	if err := writeFileAtomic(target, body); err != nil {
		return FileEntry{}, fmt.Errorf("write %s: %w", name, err)
	}

	sum := sha256.Sum256(body)
	d.logger.WithField("file", name).WithField("bytes", len(body)).Debug("model file downloaded")
	return FileEntry{
		Path:   name,
		Size:   int64(len(body)),
		SHA256: hex.EncodeToString(sum[:]),
	}, nil
}

func (d *Downloader) fileURL(name string) string {
	return strings.TrimRight(d.cfg.HubURL, "/") + "/" +
		path.Join(d.cfg.Repository, "resolve", d.cfg.Revision, name)
}

// Publish uploads the snapshot and its manifest under prefix, so other
// functions can pull the model from the bucket instead of the hub.
func (d *Downloader) Publish(ctx context.Context, uploader Uploader, bucket, prefix string) error {
	m, err := d.Ensure(ctx)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(m.Files)+1)
	for _, f := range m.Files {
		names = append(names, f.Path)
	}
	names = append(names, ManifestFile)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultMaxParallel)
	for _, name := range names {
		name := name
		g.Go(func() error {
			data, err := os.ReadFile(filepath.Join(d.cfg.Dir, filepath.FromSlash(name)))
			if err != nil {
				return err
			}
			key := path.Join(prefix, name)
			if _, err := uploader.PutObject(gctx, &s3.PutObjectInput{
				Bucket: aws.String(bucket),
				Key:    aws.String(key),
				Body:   bytes.NewReader(data),
			}); err != nil {
				return fmt.Errorf("upload s3://%s/%s: %w", bucket, key, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	d.logger.WithField("bucket", bucket).WithField("prefix", prefix).Info("model snapshot published")
	return nil
}
