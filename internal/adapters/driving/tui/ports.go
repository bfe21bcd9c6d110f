// Package tui provides an interactive terminal preview of every display surface.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/mdsolution/vitrine/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Content resolves display surfaces.
	Content driving.ContentService

	// Records lists the local store. Optional.
	Records driving.RecordService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(content driving.ContentService, records driving.RecordService) *Ports {
	return &Ports{
		Content: content,
		Records: records,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Content == nil {
		return ErrMissingContentService
	}
	return nil
}
