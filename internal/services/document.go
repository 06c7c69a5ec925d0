package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"notepad/internal/logger"
	"notepad/internal/models"
)

// DocumentService handles whole-file plain text loading and saving.
type DocumentService struct {
	logger logger.Logger
}

var _ models.Documents = (*DocumentService)(nil)

// NewDocumentService creates a new document service
func NewDocumentService(log logger.Logger) *DocumentService {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &DocumentService{logger: log}
}

// Read returns the full content of path. Content must be valid UTF-8.
func (ds *DocumentService) Read(path string) (string, error) {
	startTime := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &models.FileAccessError{Op: "open", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &models.FileAccessError{Op: "open", Path: path, Err: models.ErrInvalidEncoding}
	}

	ds.logger.Debug("DocumentService", "file read", map[string]interface{}{
		"path":        path,
		"bytes":       len(data),
		"duration_ms": time.Since(startTime).Milliseconds(),
	})
	return string(data), nil
}

// Write replaces path with text. The content goes to a temporary file in the
// same directory first and is renamed into place, so a failed save never
// leaves a truncated target behind.
func (ds *DocumentService) Write(path, text string) error {
	startTime := time.Now()

	if err := writeAtomic(path, []byte(text)); err != nil {
		return &models.FileAccessError{Op: "save", Path: path, Err: err}
	}

	ds.logger.Debug("DocumentService", "file written", map[string]interface{}{
		"path":        path,
		"bytes":       len(text),
		"duration_ms": time.Since(startTime).Milliseconds(),
	})
	return nil
}

func writeAtomic(path string, data []byte) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
