package domain

import "time"

// Origin records where a resolution's descriptors came from.
type Origin string

// Resolution origins.
const (
	// OriginRemote means at least one remote record qualified.
	OriginRemote Origin = "remote"

	// OriginFallback means the fallback catalog was used verbatim.
	OriginFallback Origin = "fallback"
)

// String returns the string representation.
func (o Origin) String() string {
	return string(o)
}

// Resolution is the outcome of resolving one surface.
type Resolution struct {
	// Surface is the surface name.
	Surface string

	// Origin is remote or fallback.
	Origin Origin

	// Descriptors is the ordered, complete list to render.
	Descriptors []Descriptor

	// Selected is the number of remote records that qualified.
	Selected int

	// FetchErr is the swallowed record source error, if any.
	// It never changes what is rendered beyond forcing the fallback.
	FetchErr error

	// ResolvedAt is when the resolution was computed.
	ResolvedAt time.Time
}
