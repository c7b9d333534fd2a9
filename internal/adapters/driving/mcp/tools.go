package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hiresift/hiresift/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"boolean query over resume text, e.g. 'python AND (django OR flask)' or '\"machine learning\"'"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default all)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []CandidateOutput `json:"results"`
	Count   int               `json:"count"`
	Scanned int               `json:"scanned"`
}

// CandidateOutput represents a single matched resume.
type CandidateOutput struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	Email    string         `json:"email,omitempty"`
	Location string         `json:"location,omitempty"`
	Skills   []string       `json:"skills,omitempty"`
	Fields   map[string]any `json:"fields"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_resumes",
		Description: "Boolean search across the resume corpus (AND/OR/NOT, parentheses, quoted phrases)",
	}, s.handleSearch)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{Limit: input.Limit}

	report, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]CandidateOutput, len(report.Matches)),
		Count:   len(report.Matches),
		Scanned: report.Scanned,
	}

	for i := range report.Matches {
		r := &report.Matches[i]
		output.Results[i] = CandidateOutput{
			ID:       r.ID,
			Name:     r.Name(),
			Email:    r.Email(),
			Location: r.Location(),
			Skills:   r.Skills(),
			Fields:   r.Fields,
		}
	}

	return nil, output, nil
}
