package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage stores uploaded files on the local filesystem under
// <basePath>/<ownerID>/<documentID><ext> and serves them back under a
// public URL prefix. The returned URL is persisted onto the owning
// document by the caller.
type LocalStorage struct {
	basePath  string
	publicURL string
	maxSize   int64
}

// NewLocalStorage creates a local file storage rooted at basePath
func NewLocalStorage(basePath, publicURL string, maxSize int64) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStorage{
		basePath:  basePath,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxSize:   maxSize,
	}, nil
}

// BasePath returns the root directory files are written under
func (s *LocalStorage) BasePath() string {
	return s.basePath
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveImage writes an uploaded image keyed by owner and document id and
// returns its public URL
func (s *LocalStorage) SaveImage(ownerID, docID uuid.UUID, file *multipart.FileHeader) (string, error) {
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", s.maxSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	dir := filepath.Join(s.basePath, ownerID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create owner dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := docID.String() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.publicURL + "/" + ownerID.String() + "/" + name, nil
}

// Delete removes a stored file by its public URL. Missing files are not an
// error; the document may already have been cleaned up.
func (s *LocalStorage) Delete(url string) error {
	rel := strings.TrimPrefix(url, s.publicURL+"/")
	if rel == url || strings.Contains(rel, "..") {
		return fmt.Errorf("url %q is not managed by this storage", url)
	}
	err := os.Remove(filepath.Join(s.basePath, filepath.FromSlash(rel)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
