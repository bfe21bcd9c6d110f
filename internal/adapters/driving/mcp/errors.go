// Package mcp provides an MCP (Model Context Protocol) server adapter for vitrine.
// It lets AI assistants read the offerings each display surface renders.
package mcp

import "errors"

// ErrMissingContentService is returned when the content service is not provided.
var ErrMissingContentService = errors.New("mcp: content service is required")
