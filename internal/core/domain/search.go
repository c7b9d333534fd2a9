package domain

// SearchOptions configures a search over the corpus.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero means no limit.
	Limit int

	// Offset is the number of results to skip.
	Offset int

	// Workers bounds the per-resume pipeline fan-out.
	// Zero selects a runtime default.
	Workers int
}

// SearchReport holds the outcome of one corpus scan.
// Matches preserve corpus order; an empty Matches is a successful
// outcome, not an error.
type SearchReport struct {
	// Matches are the resumes whose text satisfied the query.
	Matches []Resume

	// Scanned is the number of resumes evaluated.
	Scanned int

	// Skipped lists IDs of resumes that failed processing and were
	// skipped without aborting the scan.
	Skipped []string
}
