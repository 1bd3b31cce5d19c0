package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/GDG-Vishnu/community-platform/config"
	"github.com/GDG-Vishnu/community-platform/logx"
)

// ObjectStore abstracts the media bucket so services can be tested without a
// live MinIO.
type ObjectStore interface {
	Upload(ctx context.Context, objectKey, contentType string, content io.Reader, size int64) (string, error)
	Remove(ctx context.Context, objectKey string) error
}

type MinioStore struct {
	client *minio.Client
	bucket string
	public string
}

// NewMinioStore connects to MinIO and ensures the media bucket exists.
func NewMinioStore() (*MinioStore, error) {
	client, err := minio.New(config.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		logx.Infof("created bucket %s", config.MinioBucket)
	}

	scheme := "http"
	if config.MinioUseSSL {
		scheme = "https"
	}
	return &MinioStore{
		client: client,
		bucket: config.MinioBucket,
		public: fmt.Sprintf("%s://%s/%s", scheme, config.MinioEndpoint, config.MinioBucket),
	}, nil
}

func (s *MinioStore) Upload(ctx context.Context, objectKey, contentType string, content io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return s.public + "/" + objectKey, nil
}

func (s *MinioStore) Remove(ctx context.Context, objectKey string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
}
