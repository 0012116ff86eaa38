package s3

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"site_functions/internal/config"
)

func TestNew_MissingCredentials(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, config.StorageConfig{SecretAccessKey: "secret"})
	assert.ErrorIs(t, err, ErrMissingAccessKey)

	_, err = New(ctx, config.StorageConfig{AccessKeyID: "key"})
	assert.ErrorIs(t, err, ErrMissingSecretKey)
}

func TestNew_WithCredentials(t *testing.T) {
	store, err := New(context.Background(), config.StorageConfig{
		Endpoint:        "http://localhost:9000",
		Bucket:          "files",
		Region:          "us-east-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	})
	assert.NoError(t, err)
	assert.Equal(t, "files", store.bucket)
}
