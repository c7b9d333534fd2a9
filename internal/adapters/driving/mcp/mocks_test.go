package mcp

import (
	"context"

	"github.com/hiresift/hiresift/internal/core/domain"
)

// mockSearchService implements driving.SearchService for testing.
type mockSearchService struct {
	report    *domain.SearchReport
	err       error
	lastQuery string
	lastOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context, query string, opts domain.SearchOptions,
) (*domain.SearchReport, error) {
	m.lastQuery = query
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.report == nil {
		return &domain.SearchReport{}, nil
	}
	return m.report, nil
}

// mockCorpusService implements driving.CorpusService for testing.
type mockCorpusService struct {
	resumes []domain.Resume
	getErr  error
	listErr error
}

func (m *mockCorpusService) ImportFile(_ context.Context, _ string) (int, error) { return 0, nil }
func (m *mockCorpusService) ImportDir(_ context.Context, _ string) (int, error)  { return 0, nil }

func (m *mockCorpusService) List(_ context.Context) ([]domain.Resume, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.resumes, nil
}

func (m *mockCorpusService) Get(_ context.Context, id string) (*domain.Resume, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for i := range m.resumes {
		if m.resumes[i].ID == id {
			return &m.resumes[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCorpusService) Remove(_ context.Context, _ string) error      { return nil }
func (m *mockCorpusService) RemoveByURI(_ context.Context, _ string) error { return nil }
