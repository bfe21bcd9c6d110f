package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown record source kind or file format.
	ErrUnsupportedType = errors.New("unsupported type")

	// Resolution Errors.

	// ErrUnknownSurface indicates no display surface is registered under the name.
	ErrUnknownSurface = errors.New("unknown surface")

	// ErrEmptyCatalog indicates a surface has no fallback entries.
	// This is a configuration defect and must stop startup.
	ErrEmptyCatalog = errors.New("fallback catalog is empty")

	// ErrIncompleteCatalog indicates a fallback entry has empty fields.
	ErrIncompleteCatalog = errors.New("fallback catalog entry is incomplete")

	// Record Source Errors.

	// ErrSourceUnavailable indicates the record source could not be reached.
	// Callers treat it the same as an empty record list.
	ErrSourceUnavailable = errors.New("record source unavailable")

	// ErrRateLimited indicates the admin service rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrSourceNotConfigured indicates settings lack what the chosen source needs.
	ErrSourceNotConfigured = errors.New("record source not configured")
)
