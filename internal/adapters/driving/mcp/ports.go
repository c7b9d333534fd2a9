package mcp

import (
	"github.com/hiresift/hiresift/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point.
type Ports struct {
	// Search answers boolean queries against the corpus.
	Search driving.SearchService

	// Corpus manages the resume corpus. Optional.
	Corpus driving.CorpusService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Corpus is optional: without it only search is exposed
	return nil
}
