// Package mcp provides an MCP (Model Context Protocol) server adapter
// for hiresift. It lets AI assistants run boolean searches against the
// local resume corpus.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
