package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/config"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/logger"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/mock"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/store"
	"github.com/AbdulSamiEjaz/image-upload-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUploadSvc(t *testing.T, ctrl *gomock.Controller, maxFileSize int64) (UploadService, *mock.MockFileStorage, *mock.MockFilenameGenerator) {
	t.Helper()
	storage := mock.NewMockFileStorage(ctrl)
	filenames := mock.NewMockFilenameGenerator(ctrl)

	svc := NewUploadService(storage, filenames, config.Upload{MaxFileSize: maxFileSize}, logger.Nop())
	return svc, storage, filenames
}

// drain mimics a storage backend consuming the whole reader.
func drain(_ context.Context, _, _ string, r io.Reader) (int64, error) {
	return io.Copy(io.Discard, r)
}

func TestUploadService_Upload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, filenames := newTestUploadSvc(t, ctrl, 1024)
	ctx := context.Background()

	gomock.InOrder(
		filenames.EXPECT().Generate("cat.png").Return("id-cat.png"),
		storage.EXPECT().Save(ctx, "id-cat.png", "image/png", gomock.Any()).DoAndReturn(drain),
		storage.EXPECT().Location().Return("uploads/"),
	)

	stored, err := svc.Upload(ctx, models.Upload{
		OriginalName: "cat.png",
		MimeType:     "image/png",
		Content:      strings.NewReader("png-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, models.StoredFile{
		StoredName:   "id-cat.png",
		Directory:    "uploads/",
		Size:         int64(len("png-bytes")),
		OriginalName: "cat.png",
		MimeType:     "image/png",
	}, stored)
}

func TestUploadService_Upload_ExactlyAtLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, filenames := newTestUploadSvc(t, ctrl, 4)

	filenames.EXPECT().Generate(gomock.Any()).Return("id-a.png")
	storage.EXPECT().Save(gomock.Any(), "id-a.png", gomock.Any(), gomock.Any()).DoAndReturn(drain)
	storage.EXPECT().Location().Return("uploads/")

	stored, err := svc.Upload(context.Background(), models.Upload{
		OriginalName: "a.png",
		MimeType:     "image/png",
		Content:      strings.NewReader("1234"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), stored.Size)
}

func TestUploadService_Upload_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, filenames := newTestUploadSvc(t, ctrl, 4)

	filenames.EXPECT().Generate(gomock.Any()).Return("id-a.png")
	storage.EXPECT().Save(gomock.Any(), "id-a.png", gomock.Any(), gomock.Any()).DoAndReturn(drain)

	_, err := svc.Upload(context.Background(), models.Upload{
		OriginalName: "a.png",
		MimeType:     "image/png",
		Content:      strings.NewReader("12345"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadService_Upload_StorageFailureIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, filenames := newTestUploadSvc(t, ctrl, 1024)
	diskErr := errors.New("disk full")

	filenames.EXPECT().Generate(gomock.Any()).Return("id-a.png")
	storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), diskErr)

	_, err := svc.Upload(context.Background(), models.Upload{
		OriginalName: "a.png",
		MimeType:     "image/png",
		Content:      strings.NewReader("x"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoringFile)
	assert.ErrorIs(t, err, diskErr)
}

func TestUploadService_Upload_InvalidNamePassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, filenames := newTestUploadSvc(t, ctrl, 1024)

	filenames.EXPECT().Generate("..").Return("id-..")
	storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), store.ErrInvalidFileName)

	_, err := svc.Upload(context.Background(), models.Upload{
		OriginalName: "..",
		MimeType:     "image/png",
		Content:      strings.NewReader("x"),
	})

	assert.ErrorIs(t, err, store.ErrInvalidFileName)
	assert.NotErrorIs(t, err, ErrStoringFile)
}

func TestUploadService_Upload_TruncatedBodyIsMalformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, filenames := newTestUploadSvc(t, ctrl, 1024)

	filenames.EXPECT().Generate(gomock.Any()).Return("id-a.png")
	storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), io.ErrUnexpectedEOF)

	_, err := svc.Upload(context.Background(), models.Upload{
		OriginalName: "a.png",
		MimeType:     "image/png",
		Content:      strings.NewReader("x"),
	})

	assert.ErrorIs(t, err, ErrMalformedRequest)
}

func TestUploadService_Discard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, _ := newTestUploadSvc(t, ctrl, 1024)
	ctx := context.Background()

	storage.EXPECT().Remove(ctx, "id-a.png").Return(nil)
	require.NoError(t, svc.Discard(ctx, models.StoredFile{StoredName: "id-a.png"}))

	removeErr := errors.New("permission denied")
	storage.EXPECT().Remove(ctx, "id-b.png").Return(removeErr)
	err := svc.Discard(ctx, models.StoredFile{StoredName: "id-b.png"})
	assert.ErrorIs(t, err, removeErr)
}

func TestLimitedReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limit   int64
		want    string
		wantErr error
	}{
		{name: "empty", input: "", limit: 0, want: ""},
		{name: "under limit", input: "abc", limit: 10, want: "abc"},
		{name: "at limit", input: "abcd", limit: 4, want: "abcd"},
		{name: "over limit", input: "abcde", limit: 4, wantErr: ErrFileTooLarge},
		{name: "zero limit with data", input: "a", limit: 0, wantErr: ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := io.Copy(&out, &limitedReader{r: strings.NewReader(tt.input), n: tt.limit})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
