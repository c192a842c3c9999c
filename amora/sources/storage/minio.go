package storage

import (
	"amora/amora/config"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// UploadResult is what the hosting side hands back for a stored photo:
// the client-facing URL and the provider key needed to delete it later.
type UploadResult struct {
	URL      string
	PublicID string
}

// PhotoStorage is the narrow contract the controllers depend on; any
// hosting backend (or a test fake) satisfying it is substitutable.
type PhotoStorage interface {
	UploadPhoto(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (*UploadResult, error)
	DeletePhoto(ctx context.Context, publicID string) error
}

type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string
	secure    bool
	endpoint  string
}

func NewMinIOClient(cfg config.Config) (*MinIOClient, error) {
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: cfg.MinIOUseSSL,
		},
	)
	if err != nil {
		return nil, err
	}
	// Create bucket if not exists
	exists, err := client.BucketExists(context.Background(), cfg.MinIOBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &MinIOClient{
		client:    client,
		bucket:    cfg.MinIOBucket,
		publicURL: strings.TrimRight(cfg.MinIOPublicURL, "/"),
		secure:    cfg.MinIOUseSSL,
		endpoint:  cfg.MinIOEndpoint,
	}, nil
}

// UploadPhoto stores the image under a fresh key and returns its URL.
func (m *MinIOClient) UploadPhoto(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (*UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := path.Join("photos", uuid.New().String()+ext)

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := m.client.PutObject(ctx, m.bucket, key, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, err
	}

	return &UploadResult{URL: m.objectURL(key), PublicID: key}, nil
}

func (m *MinIOClient) DeletePhoto(ctx context.Context, publicID string) error {
	return m.client.RemoveObject(ctx, m.bucket, publicID, minio.RemoveObjectOptions{})
}

func (m *MinIOClient) objectURL(key string) string {
	if m.publicURL != "" {
		return m.publicURL + "/" + key
	}
	scheme := "http"
	if m.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.endpoint, m.bucket, key)
}
