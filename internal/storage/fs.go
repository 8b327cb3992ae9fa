package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemStore keeps uploads in a local directory, addressed by
// basename. Keys containing path separators are rejected so a caller
// can never escape the root.
type FilesystemStore struct {
	root string
}

// NewFilesystemStore constructs a filesystem-backed upload store.
func NewFilesystemStore(root string) (*FilesystemStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("upload root is required")
	}
	return &FilesystemStore{root: root}, nil
}

// EnsureBucket creates the upload directory if it does not exist.
func (f *FilesystemStore) EnsureBucket(ctx context.Context) error {
	return os.MkdirAll(f.root, 0o755)
}

// Put writes an object under the root, replacing any existing file.
func (f *FilesystemStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	path, err := f.resolve(key)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(file, r); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Get opens a file under the root.
func (f *FilesystemStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := f.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Delete removes a file under the root.
func (f *FilesystemStore) Delete(ctx context.Context, key string) error {
	path, err := f.resolve(key)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// Bucket returns the root directory.
func (f *FilesystemStore) Bucket() string {
	return f.root
}

func (f *FilesystemStore) resolve(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == "." || key == ".." {
		return "", errors.New("invalid object key")
	}
	return filepath.Join(f.root, key), nil
}
