package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	gcs "cloud.google.com/go/storage"
)

// GCSStore keeps promoted documents in a Cloud Storage bucket.
// Locators are gs:// URLs.
type GCSStore struct {
	bucket *gcs.BucketHandle
	name   string
	logger *slog.Logger
}

func NewGCSStore(ctx context.Context, bucket string, logger *slog.Logger) (*GCSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating gcs client: %w", err)
	}
	return &GCSStore{
		bucket: client.Bucket(bucket),
		name:   bucket,
		logger: logger,
	}, nil
}

func (s *GCSStore) Put(ctx context.Context, key string, r io.Reader) (string, error) {
	// Unconditional writer: last write wins, which is the idempotent
	// overwrite contract redelivered tasks need.
	w := s.bucket.Object(key).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("writing to gcs object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalizing gcs object %s: %w", key, err)
	}

	locator := fmt.Sprintf("gs://%s/%s", s.name, key)
	s.logger.Info("object stored", "locator", locator)
	return locator, nil
}
