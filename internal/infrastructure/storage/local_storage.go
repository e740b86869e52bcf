package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"rentora.backend/pkg/crypto"
)

var (
	imageExtensions    = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
	documentExtensions = map[string]bool{".pdf": true}
	slipExtensions     = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".pdf": true}
)

// LocalStore stores uploaded files on local disk under a base directory.
type LocalStore struct {
	baseDir  string
	maxBytes int64
}

// NewLocalStore creates a local file store rooted at baseDir
func NewLocalStore(baseDir string, maxBytes int64) *LocalStore {
	return &LocalStore{baseDir: baseDir, maxBytes: maxBytes}
}

// SaveImage stores a property image, validating extension and size
func (s *LocalStore) SaveImage(filename string, r io.Reader) (string, error) {
	return s.save("images", filename, r, imageExtensions)
}

// SaveDocument stores a generated document (lease agreements, receipts)
func (s *LocalStore) SaveDocument(filename string, r io.Reader) (string, error) {
	return s.save("documents", filename, r, documentExtensions)
}

// SaveSlip stores an uploaded payment slip
func (s *LocalStore) SaveSlip(filename string, r io.Reader) (string, error) {
	return s.save("slips", filename, r, slipExtensions)
}

// Delete removes a stored file. Missing files are not an error.
func (s *LocalStore) Delete(path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// ReadFile returns the contents of a stored file
func (s *LocalStore) ReadFile(path string) ([]byte, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(full)
}

func (s *LocalStore) save(kind, filename string, r io.Reader, allowed map[string]bool) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowed[ext] {
		return "", fmt.Errorf("file extension %q is not allowed", ext)
	}

	token, err := crypto.GenerateRandomToken(16)
	if err != nil {
		return "", err
	}
	rel := filepath.Join(kind, token+ext)

	dir := filepath.Join(s.baseDir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage dir: %w", err)
	}

	f, err := os.Create(filepath.Join(s.baseDir, rel))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	// +1 so an exactly-at-limit file passes and one byte more trips the check.
	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if n > s.maxBytes {
		os.Remove(f.Name())
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", s.maxBytes)
	}

	return rel, nil
}

// resolve maps a stored relative path back to disk, refusing traversal.
func (s *LocalStore) resolve(path string) (string, error) {
	full := filepath.Join(s.baseDir, filepath.Clean("/"+path))
	if !strings.HasPrefix(full, filepath.Clean(s.baseDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid file path %q", path)
	}
	return full, nil
}
