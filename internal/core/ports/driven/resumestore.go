package driven

import (
	"context"

	"github.com/hiresift/hiresift/internal/core/domain"
)

// ResumeStore persists the resume corpus.
// List must return resumes in stable corpus order (import order); the
// search core relies on that ordering for its stable-filter guarantee.
type ResumeStore interface {
	// Save stores or updates a resume. An existing resume with the
	// same URI is replaced in place, keeping its corpus position.
	Save(ctx context.Context, resume *domain.Resume) error

	// Get retrieves a resume by ID.
	Get(ctx context.Context, id string) (*domain.Resume, error)

	// Delete removes a resume by ID.
	Delete(ctx context.Context, id string) error

	// DeleteByURI removes all resumes imported from a URI.
	// Used when a watched source file disappears.
	DeleteByURI(ctx context.Context, uri string) error

	// List returns the full corpus in corpus order.
	List(ctx context.Context) ([]domain.Resume, error)
}
