//go:build integration

package s3

import (
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/minio"

	"site_functions/internal/config"
)

type MinioIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *minio.MinioContainer
	cfg       config.StorageConfig
}

func (s *MinioIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := minio.Run(s.ctx,
		"minio/minio:RELEASE.2024-01-16T16-07-38Z",
		minio.WithUsername("minioadmin"),
		minio.WithPassword("minioadmin"),
	)
	s.Require().NoError(err)
	s.container = container

	addr, err := container.ConnectionString(s.ctx)
	s.Require().NoError(err)

	s.cfg = config.StorageConfig{
		Endpoint:        "http://" + addr,
		Bucket:          "files",
		Region:          "us-east-1",
		AccessKeyID:     "minioadmin",
		SecretAccessKey: "minioadmin",
	}

	store, err := New(s.ctx, s.cfg)
	s.Require().NoError(err)
	_, err = store.client.CreateBucket(s.ctx, &s3.CreateBucketInput{Bucket: aws.String(s.cfg.Bucket)})
	s.Require().NoError(err)
}

func (s *MinioIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestMinioIntegrationSuite(t *testing.T) {
	suite.Run(t, new(MinioIntegrationSuite))
}

func (s *MinioIntegrationSuite) TestPut_StoresContentType() {
	store, err := New(s.ctx, s.cfg)
	s.Require().NoError(err)

	data := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	s.NoError(store.Put(s.ctx, "articles/test.png", "image/png", data))

	out, err := store.client.GetObject(s.ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String("articles/test.png"),
	})
	s.Require().NoError(err)
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	s.NoError(err)
	s.Equal(data, body)
	s.Equal("image/png", aws.ToString(out.ContentType))
}

func (s *MinioIntegrationSuite) TestPut_MissingBucket() {
	cfg := s.cfg
	cfg.Bucket = "missing"
	store, err := New(s.ctx, cfg)
	s.Require().NoError(err)

	s.Error(store.Put(s.ctx, "articles/test.jpg", "image/jpeg", []byte("x")))
}
