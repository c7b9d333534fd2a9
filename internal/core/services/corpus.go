package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hiresift/hiresift/internal/core/domain"
	"github.com/hiresift/hiresift/internal/core/ports/driven"
	"github.com/hiresift/hiresift/internal/core/ports/driving"
	"github.com/hiresift/hiresift/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService imports resume JSON files into the store and manages
// the corpus. It owns no matching logic; the search core treats the
// corpus it supplies as an opaque ordered sequence.
type CorpusService struct {
	store driven.ResumeStore
}

// NewCorpusService creates a new corpus service.
func NewCorpusService(store driven.ResumeStore) *CorpusService {
	return &CorpusService{store: store}
}

// ImportFile imports one JSON file holding a resume object or an array
// of resume objects.
func (c *CorpusService) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}

	var docs []map[string]any
	switch v := decoded.(type) {
	case map[string]any:
		docs = []map[string]any{v}
	case []any:
		for i, item := range v {
			fields, ok := item.(map[string]any)
			if !ok {
				logger.Warn("Skipping %s[%d]: not an object", path, i)
				continue
			}
			docs = append(docs, fields)
		}
	default:
		return 0, fmt.Errorf("decode %s: %w", path, domain.ErrInvalidInput)
	}

	now := time.Now()
	imported := 0
	for i, fields := range docs {
		uri := path
		if len(docs) > 1 {
			uri = fmt.Sprintf("%s#%d", path, i)
		}
		resume := &domain.Resume{
			ID:        uuid.New().String(),
			URI:       uri,
			Fields:    fields,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := c.store.Save(ctx, resume); err != nil {
			return imported, fmt.Errorf("save resume from %s: %w", uri, err)
		}
		imported++
	}

	logger.Info("Imported %d resumes from %s", imported, path)
	return imported, nil
}

// ImportDir imports every .json file under dir (non-recursive).
// Files that fail to decode are reported and skipped; the import
// continues with the remainder.
func (c *CorpusService) ImportDir(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	total := 0
	for _, name := range names {
		n, err := c.ImportFile(ctx, filepath.Join(dir, name))
		if err != nil {
			logger.Warn("Skipping %s: %v", name, err)
			continue
		}
		total += n
	}
	return total, nil
}

// List returns the full corpus in corpus order.
func (c *CorpusService) List(ctx context.Context) ([]domain.Resume, error) {
	return c.store.List(ctx)
}

// Get retrieves a resume by ID.
func (c *CorpusService) Get(ctx context.Context, id string) (*domain.Resume, error) {
	return c.store.Get(ctx, id)
}

// Remove deletes a resume by ID.
func (c *CorpusService) Remove(ctx context.Context, id string) error {
	return c.store.Delete(ctx, id)
}

// RemoveByURI deletes all resumes imported from a URI.
func (c *CorpusService) RemoveByURI(ctx context.Context, uri string) error {
	return c.store.DeleteByURI(ctx, uri)
}
