package infra

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/adpulse/backend/internal/ports"
)

type s3Client struct {
	client *minio.Client
	bucket string
	prefix string
	host   string
}

// NewS3Client builds the audio-archive client from S3_* env. Returns
// (nil, nil) when S3_ENDPOINT is unset — archiving is optional.
func NewS3Client() (ports.S3Client, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	bucket := os.Getenv("S3_BUCKET")
	region := os.Getenv("S3_REGION")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: true,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init S3 client: %w", err)
	}

	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", bucket)
	}

	return &s3Client{
		client: client,
		bucket: bucket,
		prefix: "audio",
		host:   fmt.Sprintf("https://%s", endpoint),
	}, nil
}

func (s *s3Client) PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	// audio/<date>/<filename> keeps the bucket browsable by day
	fullKey := path.Join(s.prefix, time.Now().Format("2006-01-02"), key)

	_, err := s.client.PutObject(ctx, s.bucket, fullKey, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"uploaded-at": time.Now().Format(time.RFC3339)},
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	return s.buildPublicURL(fullKey), nil
}

func (s *s3Client) buildPublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.host, s.bucket, url.PathEscape(key))
}
