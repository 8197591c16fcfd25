package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioPartSize caps the part buffer of streamed (size -1) uploads.
const minioPartSize = 16 << 20

type minioStorage struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinIOStorage returns a [FileStorage] writing objects into an existing
// bucket, under prefix.
func NewMinIOStorage(ctx context.Context, cfg config.MinIO, prefix string) (FileStorage, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: minio configuration incomplete", ErrCreatingStorage)
	}

	endpoint, secure, err := normaliseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingStorage, err)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingStorage, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingStorage, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: minio bucket does not exist: %s", ErrCreatingStorage, cfg.Bucket)
	}

	return &minioStorage{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

func (m *minioStorage) Save(ctx context.Context, name, contentType string, r io.Reader) (int64, error) {
	if err := validateFileName(name); err != nil {
		return 0, err
	}

	// size -1 streams as a multipart upload; an aborted upload leaves no object
	info, err := m.client.PutObject(ctx, m.bucket, m.objectKey(name), r, -1, putObjectOptions(contentType))
	if err != nil {
		return 0, fmt.Errorf("error putting object %s: %w", name, err)
	}

	return info.Size, nil
}

func putObjectOptions(contentType string) minio.PutObjectOptions {
	return minio.PutObjectOptions{
		ContentType: contentType,
		PartSize:    minioPartSize,
	}
}

func (m *minioStorage) Remove(ctx context.Context, name string) error {
	if err := validateFileName(name); err != nil {
		return err
	}

	err := m.client.RemoveObject(ctx, m.bucket, m.objectKey(name), minio.RemoveObjectOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return fmt.Errorf("error removing object %s: %w", name, err)
	}
	return nil
}

func (m *minioStorage) Location() string {
	return path.Join(m.bucket, m.prefix)
}

func (m *minioStorage) objectKey(name string) string {
	if m.prefix == "" {
		return name
	}
	return m.prefix + "/" + name
}

func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, errors.New("empty endpoint")
	}

	// "minio:9000", "http://minio:9000" and "https://minio:9000" are accepted
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, errors.New("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, errors.New("endpoint must not contain a path")
		}
		return u.Host, u.Scheme == "https", nil
	}

	return raw, false, nil
}
