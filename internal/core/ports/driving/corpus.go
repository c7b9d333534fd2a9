package driving

import (
	"context"

	"github.com/hiresift/hiresift/internal/core/domain"
)

// CorpusService manages the resume corpus.
type CorpusService interface {
	// ImportFile imports one JSON file holding a resume object or an
	// array of resume objects. Returns the number imported.
	ImportFile(ctx context.Context, path string) (int, error)

	// ImportDir imports every .json file under dir (non-recursive).
	// Files that fail to decode are reported and skipped.
	ImportDir(ctx context.Context, dir string) (int, error)

	// List returns the full corpus in corpus order.
	List(ctx context.Context) ([]domain.Resume, error)

	// Get retrieves a resume by ID.
	Get(ctx context.Context, id string) (*domain.Resume, error)

	// Remove deletes a resume by ID.
	Remove(ctx context.Context, id string) error

	// RemoveByURI deletes all resumes imported from a URI.
	RemoveByURI(ctx context.Context, uri string) error
}
