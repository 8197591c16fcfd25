package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	uploadDirPerm  = 0o755
	uploadFilePerm = 0o644
)

type diskStorage struct {
	dir string
}

// NewDiskStorage returns a [FileStorage] writing into dir, creating it when
// it does not exist yet.
func NewDiskStorage(dir string) (FileStorage, error) {
	if err := os.MkdirAll(dir, uploadDirPerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingStorage, err)
	}

	return &diskStorage{dir: dir}, nil
}

func (d *diskStorage) Save(ctx context.Context, name, _ string, r io.Reader) (int64, error) {
	if err := validateFileName(name); err != nil {
		return 0, err
	}

	path := filepath.Join(d.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, uploadFilePerm)
	if err != nil {
		return 0, fmt.Errorf("error creating %s: %w", path, err)
	}

	written, err := io.Copy(f, &contextReader{ctx: ctx, r: r})
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// partial files must not survive a failed upload
		_ = os.Remove(path)
		return 0, err
	}

	return written, nil
}

func (d *diskStorage) Remove(_ context.Context, name string) error {
	if err := validateFileName(name); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(d.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (d *diskStorage) Location() string {
	return d.dir
}

func validateFileName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	return nil
}

// contextReader stops a copy as soon as ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
