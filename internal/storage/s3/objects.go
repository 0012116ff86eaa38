package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"site_functions/internal/config"
)

var (
	ErrMissingAccessKey = errors.New("AWS_ACCESS_KEY_ID not configured")
	ErrMissingSecretKey = errors.New("AWS_SECRET_ACCESS_KEY not configured")
)

// ObjectStore writes objects into a single bucket of an S3-compatible service.
type ObjectStore struct {
	client *s3.Client
	bucket string
}

func New(ctx context.Context, cfg config.StorageConfig) (*ObjectStore, error) {
	if cfg.AccessKeyID == "" {
		return nil, ErrMissingAccessKey
	}
	if cfg.SecretAccessKey == "" {
		return nil, ErrMissingSecretKey
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &ObjectStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *ObjectStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}
