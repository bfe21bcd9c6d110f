package domain

// Surface identifies one display surface and the records it accepts.
type Surface struct {
	// Name is the unique surface key, e.g. "pricing".
	Name string

	// Title is a human-readable label.
	Title string

	// Category is the offering family the surface shows.
	Category Category

	// Page is the page tag records must carry to target this surface.
	Page string

	// CategoryOnly accepts records with no page tag.
	CategoryOnly bool

	// Single limits the surface to at most one record.
	Single bool

	// MatchByName lets a record pick its fallback entry by name
	// before falling back to position.
	MatchByName bool
}

// Accepts reports whether a record qualifies for this surface.
func (s *Surface) Accepts(r *ServiceRecord) bool {
	if r.Category != s.Category {
		return false
	}
	if !r.Active() {
		return false
	}
	page, ok := r.Page.Get()
	if !ok {
		return s.CategoryOnly
	}
	return page == s.Page
}
