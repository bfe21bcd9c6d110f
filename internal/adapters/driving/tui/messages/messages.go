// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/mdsolution/vitrine/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSurfaces lists the display surfaces.
	ViewSurfaces ViewType = iota
	// ViewOfferings previews one surface's resolved offerings.
	ViewOfferings
	// ViewRecords lists records in the local store.
	ViewRecords
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSurfaces:
		return "surfaces"
	case ViewOfferings:
		return "offerings"
	case ViewRecords:
		return "records"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// SurfaceSelected is sent when a surface is chosen for preview.
type SurfaceSelected struct {
	Surface domain.Surface
}

// ResolutionLoaded carries the outcome of resolving a surface.
// Generation identifies the mount that requested it; a view drops
// results whose generation is no longer current.
type ResolutionLoaded struct {
	Surface    string
	Generation uint64
	Resolution *domain.Resolution
	Err        error
}

// RefreshRequested asks the active preview to resolve again.
type RefreshRequested struct{}

// RecordsLoaded carries the local store listing.
type RecordsLoaded struct {
	Records []domain.ServiceRecord
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
