// Package memory provides in-memory implementations of the driven
// storage ports, used by tests and as a fallback when no database is
// configured.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/hiresift/hiresift/internal/core/domain"
	"github.com/hiresift/hiresift/internal/core/ports/driven"
)

// Ensure ResumeStore implements the interface.
var _ driven.ResumeStore = (*ResumeStore)(nil)

// ResumeStore is an in-memory implementation of driven.ResumeStore.
// The backing slice is the corpus order.
type ResumeStore struct {
	mu      sync.RWMutex
	resumes []domain.Resume
}

// NewResumeStore creates a new in-memory resume store.
func NewResumeStore() *ResumeStore {
	return &ResumeStore{}
}

// Save stores a resume, replacing any existing resume with the same
// URI in place so its corpus position is kept.
func (s *ResumeStore) Save(_ context.Context, resume *domain.Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.resumes {
		if s.resumes[i].URI == resume.URI {
			r := *resume
			r.Position = i
			r.CreatedAt = s.resumes[i].CreatedAt
			s.resumes[i] = r
			return nil
		}
	}

	r := *resume
	r.Position = len(s.resumes)
	s.resumes = append(s.resumes, r)
	return nil
}

// Get retrieves a resume by ID.
func (s *ResumeStore) Get(_ context.Context, id string) (*domain.Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.resumes {
		if s.resumes[i].ID == id {
			r := s.resumes[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes a resume by ID.
func (s *ResumeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deleteWhere(func(r *domain.Resume) bool { return r.ID == id })
}

// DeleteByURI removes all resumes imported from a URI, including the
// per-element URIs of array imports (uri#0, uri#1, ...).
func (s *ResumeStore) DeleteByURI(_ context.Context, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deleteWhere(func(r *domain.Resume) bool {
		return r.URI == uri || strings.HasPrefix(r.URI, uri+"#")
	})
}

// List returns a copy of the full corpus in corpus order.
func (s *ResumeStore) List(_ context.Context) ([]domain.Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Resume, len(s.resumes))
	copy(out, s.resumes)
	return out, nil
}

// deleteWhere drops matching resumes and renumbers positions.
// Caller must hold the write lock.
func (s *ResumeStore) deleteWhere(match func(*domain.Resume) bool) error {
	kept := s.resumes[:0]
	for i := range s.resumes {
		if !match(&s.resumes[i]) {
			kept = append(kept, s.resumes[i])
		}
	}
	for i := range kept {
		kept[i].Position = i
	}
	s.resumes = kept
	return nil
}
