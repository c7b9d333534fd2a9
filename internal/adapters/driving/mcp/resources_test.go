package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiresift/hiresift/internal/core/domain"
)

func TestExtractResumeID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid resume URI",
			uri:      "hiresift://resumes/r-123",
			expected: "r-123",
		},
		{
			name:     "invalid prefix",
			uri:      "file://resumes/r-123",
			expected: "",
		},
		{
			name:     "collection URI has no ID",
			uri:      "hiresift://resumes",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractResumeID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleCorpusResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil corpus service returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		result, err := server.handleCorpusResource(ctx, makeReadResourceRequest("hiresift://resumes"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("lists corpus summaries", func(t *testing.T) {
		corpus := &mockCorpusService{
			resumes: []domain.Resume{
				{ID: "r1", URI: "/corpus/ada.json", Fields: map[string]any{"name": "Ada"}},
				{ID: "r2", URI: "/corpus/grace.json", Fields: map[string]any{"name": "Grace"}},
			},
		}
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Corpus: corpus})
		require.NoError(t, err)

		result, err := server.handleCorpusResource(ctx, makeReadResourceRequest("hiresift://resumes"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"id": "r1"`)
		assert.Contains(t, result.Contents[0].Text, "Grace")
	})

	t.Run("propagates list errors", func(t *testing.T) {
		corpus := &mockCorpusService{listErr: errors.New("store offline")}
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Corpus: corpus})
		require.NoError(t, err)

		result, err := server.handleCorpusResource(ctx, makeReadResourceRequest("hiresift://resumes"))

		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestServer_handleResumeResource(t *testing.T) {
	ctx := context.Background()
	corpus := &mockCorpusService{
		resumes: []domain.Resume{
			{ID: "r1", URI: "/corpus/ada.json", Fields: map[string]any{"name": "Ada"}},
		},
	}

	t.Run("returns full document", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Corpus: corpus})
		require.NoError(t, err)

		result, err := server.handleResumeResource(ctx, makeReadResourceRequest("hiresift://resumes/r1"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"name": "Ada"`)
	})

	t.Run("unknown resume errors", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Corpus: corpus})
		require.NoError(t, err)

		result, err := server.handleResumeResource(ctx, makeReadResourceRequest("hiresift://resumes/absent"))

		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("malformed URI errors", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Corpus: corpus})
		require.NoError(t, err)

		result, err := server.handleResumeResource(ctx, makeReadResourceRequest("hiresift://other/r1"))

		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("nil corpus service errors", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		result, err := server.handleResumeResource(ctx, makeReadResourceRequest("hiresift://resumes/r1"))

		require.Error(t, err)
		assert.Nil(t, result)
	})
}
