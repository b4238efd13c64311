package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Taichi-iskw/transqa/internal/config"
	apperrors "github.com/Taichi-iskw/transqa/internal/errors"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client used by S3Store
type S3API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store is an ObjectStore backed by an AWS S3 bucket.
// Keys are stored under an optional prefix that callers never see.
type S3Store struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Store loads AWS credentials and creates the store.
// A named profile wins over static keys; with neither the default chain is used.
func NewS3Store(ctx context.Context, cfg config.S3Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	switch {
	case cfg.Profile != "":
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	case cfg.AccessKeyID != "" && cfg.SecretAccessKey != "":
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternal, "failed to load AWS configuration")
	}

	return NewS3StoreWithClient(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix), nil
}

// NewS3StoreWithClient creates a store around an existing client
func NewS3StoreWithClient(client S3API, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// ListObjects lists keys under prefix with the store prefix removed
func (s *S3Store) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(joinKey(s.prefix, prefix)),
	})

	keys := []string{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeExternal, "failed to list objects")
		}
		for _, obj := range page.Contents {
			keys = append(keys, stripKey(s.prefix, aws.ToString(obj.Key)))
		}
	}
	return keys, nil
}

// GetJSON decodes the object at key into v
func (s *S3Store) GetJSON(ctx context.Context, key string, v any) error {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(joinKey(s.prefix, key)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return apperrors.Wrap(err, apperrors.CodeNotFound, fmt.Sprintf("object %s not found", key))
		}
		return apperrors.Wrap(err, apperrors.CodeExternal, fmt.Sprintf("failed to get %s", key))
	}
	defer out.Body.Close()

	if err := json.NewDecoder(out.Body).Decode(v); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInvalidArg, fmt.Sprintf("object %s is not valid JSON", key))
	}
	return nil
}

// PutJSON stores v as indented JSON at key
func (s *S3Store) PutJSON(ctx context.Context, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(joinKey(s.prefix, key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeExternal, fmt.Sprintf("failed to upload %s", key))
	}
	return nil
}
