package driving

import (
	"context"

	"github.com/hiresift/hiresift/internal/core/domain"
)

// SearchService answers boolean queries against the resume corpus.
type SearchService interface {
	// Search parses the query once and scans the full corpus, returning
	// the resumes whose flattened, normalised text satisfies the
	// expression, in corpus order. A malformed query yields a
	// *boolquery.ParseError; an empty result set is success.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchReport, error)
}
