package document

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	app_errors "pdf-chat/internal/errors"
	"pdf-chat/internal/model"
)

// Store is the single document slot of a session. Every successful Load
// replaces the previous document wholesale; a failed Load keeps it.
// Store is not safe for concurrent use; the owning session serializes access.
type Store struct {
	extractor TextExtractor
	tempDir   string
	now       func() time.Time

	text string
	info *model.DocumentInfo
}

// NewStore creates an empty store. tempDir may be empty to use os.TempDir().
func NewStore(extractor TextExtractor, tempDir string) *Store {
	return &Store{extractor: extractor, tempDir: tempDir, now: time.Now}
}

// Load spools r to a temporary file, extracts its pages and stores their text
// joined by newlines.
func (s *Store) Load(ctx context.Context, name string, r io.Reader) (*model.DocumentInfo, error) {
	tmp, err := os.CreateTemp(s.tempDir, "pdf-chat-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("could not create temporary file: %w", err)
	}
	path := tmp.Name()
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			slog.Warn("Failed to remove temporary upload", "path", path, "error", rmErr)
		}
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("could not spool upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("could not spool upload: %w", err)
	}

	pages, err := s.extractor.ExtractPages(ctx, path)
	if err != nil {
		return nil, err
	}

	text := strings.Join(pages, "\n")
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %q contains no extractable text", app_errors.ErrExtraction, name)
	}

	s.text = text
	s.info = &model.DocumentInfo{
		Name:       name,
		Pages:      len(pages),
		Characters: len([]rune(text)),
		LoadedAt:   s.now(),
	}
	slog.Info("Document loaded", "name", name, "pages", len(pages))

	info := *s.info
	return &info, nil
}

// Text returns the stored document text, or "" when nothing is loaded.
func (s *Store) Text() string { return s.text }

// Loaded reports whether a document is available for questions.
func (s *Store) Loaded() bool { return s.text != "" }

// Current returns a copy of the loaded document's metadata, or nil.
func (s *Store) Current() *model.DocumentInfo {
	if s.info == nil {
		return nil
	}
	info := *s.info
	return &info
}
