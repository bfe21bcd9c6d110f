package mcp

import (
	"github.com/mdsolution/vitrine/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Content resolves display surfaces.
	Content driving.ContentService

	// Records lists records in the local store.
	Records driving.RecordService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Content == nil {
		return ErrMissingContentService
	}
	// Records is optional
	return nil
}
