package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/Taichi-iskw/transqa/internal/config"
	apperrors "github.com/Taichi-iskw/transqa/internal/errors"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStore is an ObjectStore backed by a MinIO bucket
type MinIOStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOStore connects to MinIO and creates the bucket when it does not exist
func NewMinIOStore(ctx context.Context, cfg config.MinIOConfig) (*MinIOStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternal, "failed to create MinIO client")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternal, "failed to check MinIO bucket")
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeExternal, "failed to create MinIO bucket")
		}
	}

	return &MinIOStore{client: client, bucket: cfg.Bucket}, nil
}

// ListObjects lists keys under prefix
func (s *MinIOStore) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	keys := []string{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, apperrors.Wrap(obj.Err, apperrors.CodeExternal, "failed to list objects")
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// GetJSON decodes the object at key into v
func (s *MinIOStore) GetJSON(ctx context.Context, key string, v any) error {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return s.wrapError(err, key)
	}
	defer obj.Close()

	if err := json.NewDecoder(obj).Decode(v); err != nil {
		// the first read surfaces a missing key
		if minio.ToErrorResponse(err).Code != "" {
			return s.wrapError(err, key)
		}
		return apperrors.Wrap(err, apperrors.CodeInvalidArg, fmt.Sprintf("object %s is not valid JSON", key))
	}
	return nil
}

// PutJSON stores v as indented JSON at key
func (s *MinIOStore) PutJSON(ctx context.Context, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeExternal, fmt.Sprintf("failed to upload %s", key))
	}
	return nil
}

func (s *MinIOStore) wrapError(err error, key string) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return apperrors.Wrap(err, apperrors.CodeNotFound, fmt.Sprintf("object %s not found", key))
	}
	return apperrors.Wrap(err, apperrors.CodeExternal, fmt.Sprintf("failed to get %s", key))
}
