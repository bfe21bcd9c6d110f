package domain

import "strings"

// Category tags the offering family a record belongs to.
type Category string

// Known offering families.
const (
	// CategoryMarketing is a monthly marketing management plan.
	CategoryMarketing Category = "marketing"

	// CategorySocialMedia is a social media management plan.
	CategorySocialMedia Category = "social_media"

	// CategoryCombos is a marketing + sales combo package.
	CategoryCombos Category = "combos"

	// CategoryConsultancy is the sales consultancy offering.
	CategoryConsultancy Category = "consultancy"

	// CategorySwot is a SWOT analysis tier.
	CategorySwot Category = "swot"
)

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMarketing, CategorySocialMedia, CategoryCombos, CategoryConsultancy, CategorySwot:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// AllCategories returns all known categories.
func AllCategories() []Category {
	return []Category{
		CategoryMarketing,
		CategorySocialMedia,
		CategoryCombos,
		CategoryConsultancy,
		CategorySwot,
	}
}

// ServiceRecord is an offering definition as stored by the admin content service.
// Nothing in it is trusted: every field may be absent.
type ServiceRecord struct {
	// ID is the opaque identifier assigned by the content service.
	ID Text

	Name        Text
	Subtitle    Text
	Description Text
	Price       Text
	ExtraInfo   Text
	CTAText     Text
	BadgeText   Text

	// Features is the ordered list of feature lines.
	Features Features

	// Category selects the offering family.
	Category Category

	// Page selects the display surface. Absent means "by category only".
	Page Text

	// IsActive is treated as active when unset.
	IsActive Flag

	// IsHighlighted controls emphasis styling.
	IsHighlighted Flag

	// DisplayOrder is the ascending sort key; absent is 0.
	DisplayOrder float64
}

// Active returns false only when the record is explicitly inactive.
func (r *ServiceRecord) Active() bool {
	return r.IsActive.Or(true)
}

// NormalizedName returns the lower-cased, trimmed name.
func (r *ServiceRecord) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(r.Name.String()))
}

// RecordFilter narrows a record listing.
type RecordFilter struct {
	// Category limits results to one category. Empty matches all.
	Category Category

	// Page limits results to one page tag. Empty matches all.
	Page string

	// Search is a case-insensitive substring matched against
	// name, category and page.
	Search string
}

// Matches returns true if the record passes the filter.
func (f RecordFilter) Matches(r *ServiceRecord) bool {
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Page != "" && r.Page.String() != f.Page {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(r.Name.String()), q) ||
		strings.Contains(strings.ToLower(string(r.Category)), q) ||
		strings.Contains(strings.ToLower(r.Page.String()), q)
}

// SeedReport summarises a default-seeding run.
type SeedReport struct {
	// Created lists "surface/name" for each record written.
	Created []string

	// Skipped lists "surface/name" for each record that already existed.
	Skipped []string
}
