package ports

import "io"

// ImageStore persists uploaded image files. Files live outside the database
// transaction: a file saved before a failed create is not rolled back, and
// Remove after a committed delete is best-effort.
type ImageStore interface {
	// Save writes the image and returns the path it is served under.
	Save(src io.Reader, mimeType string) (string, error)
	Remove(path string) error
}
