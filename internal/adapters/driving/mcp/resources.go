package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for hiresift resources.
const uriScheme = "hiresift://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing the corpus.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "resumes",
		Name:        "resumes",
		Description: "List of all resumes in the corpus",
		MIMEType:    "application/json",
	}, s.handleCorpusResource)

	// Template for one resume document.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "resumes/{resumeId}",
		Name:        "resume",
		Description: "Full document of a specific resume",
		MIMEType:    "application/json",
	}, s.handleResumeResource)
}

// handleCorpusResource returns a summary list of the corpus.
func (s *Server) handleCorpusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	resumes, err := s.ports.Corpus.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing corpus: %w", err)
	}

	type resumeInfo struct {
		ID   string `json:"id"`
		Name string `json:"name,omitempty"`
		URI  string `json:"uri"`
	}

	infos := make([]resumeInfo, len(resumes))
	for i := range resumes {
		infos[i] = resumeInfo{
			ID:   resumes[i].ID,
			Name: resumes[i].Name(),
			URI:  resumes[i].URI,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling corpus: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleResumeResource returns the full document of one resume.
func (s *Server) handleResumeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	resumeID := extractResumeID(req.Params.URI)
	if resumeID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	resume, err := s.ports.Corpus.Get(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("getting resume: %w", err)
	}

	data, err := json.MarshalIndent(resume.Fields, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resume: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractResumeID extracts the resume ID from a URI like hiresift://resumes/{resumeId}.
func extractResumeID(uri string) string {
	const prefix = uriScheme + "resumes/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
