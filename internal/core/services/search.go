package services

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/hiresift/hiresift/internal/boolquery"
	"github.com/hiresift/hiresift/internal/core/domain"
	"github.com/hiresift/hiresift/internal/core/ports/driven"
	"github.com/hiresift/hiresift/internal/core/ports/driving"
	"github.com/hiresift/hiresift/internal/logger"
	"github.com/hiresift/hiresift/internal/normalise"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService scans the corpus with a parsed boolean query.
//
// The query is parsed exactly once per call; evaluating it against N
// resumes is N independent pipelines sharing only the read-only parsed
// query, so the scan fans out across a bounded worker pool with no
// locking. Results keep corpus order regardless of which worker
// finished first.
type SearchService struct {
	resumeStore driven.ResumeStore
}

// NewSearchService creates a new search service.
func NewSearchService(resumeStore driven.ResumeStore) *SearchService {
	return &SearchService{resumeStore: resumeStore}
}

// Search parses the query and scans the full corpus.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (*domain.SearchReport, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}
	if s.resumeStore == nil {
		return nil, domain.ErrStoreUnavailable
	}

	q, err := s.parseQuery(query)
	if err != nil {
		return nil, err
	}
	logger.Debug("Parsed query: %s", q.Root)

	resumes, err := s.resumeStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list corpus: %w", err)
	}
	logger.Info("Scanning %d resumes", len(resumes))

	verdicts := make([]bool, len(resumes))
	failed := make([]bool, len(resumes))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(resumes) {
		workers = len(resumes)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				matched, err := evaluate(q, &resumes[i])
				if err != nil {
					logger.Warn("Skipping resume %s: %v", resumes[i].ID, err)
					failed[i] = true
					continue
				}
				verdicts[i] = matched
			}
		}()
	}

feed:
	for i := range resumes {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &domain.SearchReport{Scanned: len(resumes)}
	for i := range resumes {
		if failed[i] {
			report.Skipped = append(report.Skipped, resumes[i].ID)
			continue
		}
		if verdicts[i] {
			report.Matches = append(report.Matches, resumes[i])
		}
	}

	report.Matches = paginate(report.Matches, opts.Offset, opts.Limit)
	logger.Info("Matched %d of %d resumes (%d skipped)",
		len(report.Matches), report.Scanned, len(report.Skipped))

	return report, nil
}

// parseQuery takes the single-term fast path when the raw query uses
// no operator token and no quote, otherwise runs the full parser.
func (s *SearchService) parseQuery(query string) (*boolquery.Query, error) {
	if !boolquery.NeedsParse(query) {
		logger.Debug("Single-term fast path")
		return boolquery.Single(query), nil
	}
	return boolquery.Parse(query)
}

// evaluate runs one resume through Flatten -> Normalise -> Match.
// A resume whose structure defeats processing is reported as an error
// so the scan can skip it and continue.
func evaluate(q *boolquery.Query, r *domain.Resume) (matched bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("process resume: %v", rec)
		}
	}()

	flat := normalise.Flatten(r.Fields)
	text := normalise.Normalise(flat)
	return q.Match(text), nil
}

// paginate applies offset and limit. Zero limit means no limit.
func paginate(resumes []domain.Resume, offset, limit int) []domain.Resume {
	if offset > 0 {
		if offset >= len(resumes) {
			return nil
		}
		resumes = resumes[offset:]
	}
	if limit > 0 && limit < len(resumes) {
		resumes = resumes[:limit]
	}
	return resumes
}
