// Package storage persists uploaded attachments in an S3-compatible
// object store and hands back stable retrieval URLs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/viper"
)

// ErrUnsupportedMediaType is returned for any attachment whose filename
// does not end in ".jpg" or ".png". The check is case-sensitive on
// purpose: "photo.PNG" is rejected.
var ErrUnsupportedMediaType = errors.New("only jpg and png images are allowed")

type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, error)
}

// AllowedAttachment reports whether the filename passes the suffix gate.
func AllowedAttachment(filename string) bool {
	return strings.HasSuffix(filename, ".jpg") || strings.HasSuffix(filename, ".png")
}

// ContentTypeFor maps an accepted filename to its MIME type.
func ContentTypeFor(filename string) string {
	if strings.HasSuffix(filename, ".png") {
		return "image/png"
	}
	return "image/jpeg"
}

type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinio connects to the configured endpoint and makes sure the
// upload bucket exists.
func NewMinio() (*MinioStorage, error) {
	client, err := minio.New(viper.GetString("storage.endpoint"), &minio.Options{
		Creds: credentials.NewStaticV4(
			viper.GetString("storage.access_key"),
			viper.GetString("storage.secret_key"),
			"",
		),
		Secure: viper.GetBool("storage.use_ssl"),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create storage client: %w", err)
	}

	bucket := viper.GetString("storage.bucket")
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("unable to check storage bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("unable to create storage bucket: %w", err)
		}
	}

	return &MinioStorage{client: client, bucket: bucket}, nil
}

func (s *MinioStorage) Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	if !AllowedAttachment(filename) {
		return "", ErrUnsupportedMediaType
	}

	if _, err := s.client.PutObject(ctx, s.bucket, filename, r, size, minio.PutObjectOptions{
		ContentType: ContentTypeFor(filename),
	}); err != nil {
		return "", fmt.Errorf("unable to upload attachment: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, filename), nil
}
