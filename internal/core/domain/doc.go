// Package domain defines the core business entities for Vitrine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ServiceRecord: A raw offering definition from the admin content service
//   - Descriptor: A fully populated offering, either from a fallback catalog
//     or produced by resolution
//   - Surface: The context a display surface resolves offerings for
//   - Resolution: The outcome of resolving one surface
//
// Absence is explicit: Text, Flag and Features distinguish "not provided"
// from a provided value, and collapse blank input to "not provided" when
// they are constructed.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
