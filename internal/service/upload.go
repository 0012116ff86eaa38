package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"site_functions/internal/domain"
)

const (
	DefaultFilename  = "image.jpg"
	defaultExtension = "jpg"
	keyPrefix        = "articles/"
)

var contentTypes = map[string]string{
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// URLBuilder maps a storage key to its public CDN address.
type URLBuilder func(key string) string

type UploadService struct {
	objects   ObjectStore
	publicURL URLBuilder
	newID     func() string
	logger    *slog.Logger
}

func NewUploadService(objects ObjectStore, publicURL URLBuilder, logger *slog.Logger) *UploadService {
	return &UploadService{
		objects:   objects,
		publicURL: publicURL,
		newID:     func() string { return uuid.New().String() },
		logger:    logger.With("service", "upload"),
	}
}

// Upload decodes a base64 image (optionally a data URL) and stores it under
// articles/<uuid>.<ext>.
func (s *UploadService) Upload(ctx context.Context, payload, filename string) (*domain.UploadedImage, error) {
	data, err := DecodeImage(payload)
	if err != nil {
		return nil, err
	}

	ext := FileExtension(filename)
	image := &domain.UploadedImage{
		Key:         keyPrefix + s.newID() + "." + ext,
		ContentType: ContentType(ext),
		Size:        len(data),
	}

	if err := s.objects.Put(ctx, image.Key, image.ContentType, data); err != nil {
		return nil, err
	}
	image.URL = s.publicURL(image.Key)

	s.logger.Info("image uploaded",
		"key", image.Key,
		"content_type", image.ContentType,
		"size", image.Size,
	)

	return image, nil
}

// DecodeImage strips a data URL header ("data:image/png;base64,") and decodes
// the rest. Characters outside the base64 alphabet are dropped and unpadded
// input is accepted.
func DecodeImage(payload string) ([]byte, error) {
	if parts := strings.Split(payload, ","); len(parts) > 1 {
		payload = parts[1]
	}
	payload = strings.Map(base64Alphabet, payload)

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if rawErr != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		data = raw
	}
	return data, nil
}

func base64Alphabet(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return r
	case r == '+', r == '/', r == '=':
		return r
	}
	return -1
}

// FileExtension returns the text after the last dot, or "jpg" when there is none.
func FileExtension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return defaultExtension
	}
	return filename[i+1:]
}

func ContentType(ext string) string {
	if ct, ok := contentTypes[strings.ToLower(ext)]; ok {
		return ct
	}
	return "image/jpeg"
}
