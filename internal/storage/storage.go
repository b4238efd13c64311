// Package storage reads and writes JSON documents in an object store.
// Two backends exist, MinIO and AWS S3, selected by configuration.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Taichi-iskw/transqa/internal/config"
)

// ObjectStore is a bucket of JSON documents addressed by key
type ObjectStore interface {
	// ListObjects returns every key under prefix, recursively
	ListObjects(ctx context.Context, prefix string) ([]string, error)
	// GetJSON decodes the object at key into v
	GetJSON(ctx context.Context, key string, v any) error
	// PutJSON encodes v and stores it at key
	PutJSON(ctx context.Context, key string, v any) error
}

// Info describes the configured bucket
type Info struct {
	Backend string  `json:"storage_backend"`
	Bucket  string  `json:"bucket"`
	Region  *string `json:"region"`
	Prefix  *string `json:"prefix"`
}

// Describe reports the bucket settings of the selected backend
func Describe(cfg config.StorageConfig) Info {
	info := Info{Backend: cfg.Backend, Bucket: cfg.Bucket()}
	if cfg.Backend == config.StorageS3 {
		region, prefix := cfg.S3.Region, cfg.S3.Prefix
		info.Region = &region
		info.Prefix = &prefix
	}
	return info
}

// New creates the object store selected by cfg.Backend
func New(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (ObjectStore, error) {
	switch cfg.Backend {
	case config.StorageS3:
		store, err := NewS3Store(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		logger.Info("using AWS S3 backend", slog.String("bucket", cfg.S3.Bucket), slog.String("prefix", cfg.S3.Prefix))
		return store, nil
	case config.StorageMinIO:
		store, err := NewMinIOStore(ctx, cfg.MinIO)
		if err != nil {
			return nil, err
		}
		logger.Info("using MinIO backend", slog.String("endpoint", cfg.MinIO.Endpoint), slog.String("bucket", cfg.MinIO.Bucket))
		return store, nil
	default:
		return nil, fmt.Errorf("invalid storage backend %q: must be 'minio' or 's3'", cfg.Backend)
	}
}

// joinKey prepends the configured key prefix to key
func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return strings.TrimRight(prefix, "/") + "/" + key
}

// stripKey removes the configured key prefix from a listed key
func stripKey(prefix, key string) string {
	if prefix == "" || !strings.HasPrefix(key, prefix) {
		return key
	}
	return strings.TrimLeft(key[len(prefix):], "/")
}
