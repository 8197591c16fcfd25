package store

import (
	"context"
	"testing"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormaliseEndpoint(t *testing.T) {
	tests := []struct {
		in           string
		wantEndpoint string
		wantSecure   bool
		wantErr      bool
	}{
		{"minio:9000", "minio:9000", false, false},
		{" minio:9000 ", "minio:9000", false, false},
		{"http://minio:9000", "minio:9000", false, false},
		{"https://minio:9000", "minio:9000", true, false},
		{"http://minio:9000/", "minio:9000", false, false},
		{"http://minio:9000/foo", "", false, true},
		{"http://", "", false, true},
		{"", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ep, secure, err := normaliseEndpoint(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEndpoint, ep)
			assert.Equal(t, tt.wantSecure, secure)
		})
	}
}

func TestMinioStorage_ObjectKeyAndLocation(t *testing.T) {
	s := &minioStorage{bucket: "images", prefix: "uploads"}
	assert.Equal(t, "uploads/id-cat.png", s.objectKey("id-cat.png"))
	assert.Equal(t, "images/uploads", s.Location())

	s = &minioStorage{bucket: "images"}
	assert.Equal(t, "id-cat.png", s.objectKey("id-cat.png"))
	assert.Equal(t, "images", s.Location())
}

func TestNewMinIOStorage_IncompleteConfig(t *testing.T) {
	_, err := NewMinIOStorage(context.Background(), config.MinIO{Endpoint: "minio:9000", Bucket: "images"}, "uploads/")
	assert.ErrorIs(t, err, ErrCreatingStorage)
}

func TestNewMinIOStorage_BadEndpoint(t *testing.T) {
	_, err := NewMinIOStorage(context.Background(), config.MinIO{
		Endpoint:  "http://minio:9000/path",
		AccessKey: "ak",
		SecretKey: "sk",
		Bucket:    "images",
	}, "uploads/")
	assert.ErrorIs(t, err, ErrCreatingStorage)
}

func TestPutObjectOptions_BoundedPartSize(t *testing.T) {
	opts := putObjectOptions("image/png")

	assert.Equal(t, "image/png", opts.ContentType)
	assert.Equal(t, uint64(16<<20), opts.PartSize)
	// minio rejects parts below 5 MiB
	assert.GreaterOrEqual(t, opts.PartSize, uint64(5<<20))
}
