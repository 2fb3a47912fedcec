// Package storage persists uploaded images on the local filesystem. Files are
// deliberately outside the database transaction: an aborted create leaves its
// file behind, and removal after a committed delete is best-effort.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// MaxImageBytes is the upper bound accepted for a single upload.
const MaxImageBytes = 500_000

// extByMIME is the allow-list of accepted image types.
var extByMIME = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
}

var ErrUnsupportedImageType = errors.New("unsupported image type")
var ErrImageTooLarge = errors.New("image exceeds size limit")

// DiskStore writes images under a root directory with generated names.
type DiskStore struct {
	root string
}

// NewDiskStore ensures root exists and returns a store rooted there.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// Save writes src to a new file named <uuid>.<ext> and returns its path
// relative to the process working directory, which is also the path the file
// is served under. Rejects unknown MIME types and oversized payloads.
func (s *DiskStore) Save(src io.Reader, mimeType string) (string, error) {
	ext, ok := extByMIME[mimeType]
	if !ok {
		return "", ErrUnsupportedImageType
	}

	path := filepath.Join(s.root, uuid.NewString()+"."+ext)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	written, err := io.Copy(dst, io.LimitReader(src, MaxImageBytes+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err == nil && written > MaxImageBytes {
		err = ErrImageTooLarge
	}
	if err != nil {
		_ = os.Remove(path)
		if errors.Is(err, ErrImageTooLarge) {
			return "", err
		}
		return "", fmt.Errorf("write image file: %w", err)
	}

	return path, nil
}

// Remove deletes a previously saved image.
func (s *DiskStore) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}
