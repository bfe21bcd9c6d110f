// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette used to preview offerings.
type Theme struct {
	// Primary is the brand accent, used for titles and prices.
	Primary lipgloss.Color

	// Highlight marks emphasised offerings and their badges.
	Highlight lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Remote marks content resolved from remote records.
	Remote lipgloss.Color

	// Fallback marks content taken from the built-in catalog.
	Fallback lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the card border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"), // Blue
		Highlight:  lipgloss.Color("#F59E0B"), // Amber
		Foreground: lipgloss.Color("#E5E7EB"), // Light gray
		Muted:      lipgloss.Color("#6B7280"), // Medium gray
		Remote:     lipgloss.Color("#10B981"), // Green
		Fallback:   lipgloss.Color("#A78BFA"), // Violet
		Error:      lipgloss.Color("#EF4444"), // Red
		Border:     lipgloss.Color("#374151"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for the list cursor row.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Card frames one offering.
	Card lipgloss.Style

	// HighlightedCard frames an emphasised offering.
	HighlightedCard lipgloss.Style

	// Price renders the price line.
	Price lipgloss.Style

	// Badge renders the badge of a highlighted offering.
	Badge lipgloss.Style

	// Remote labels a remote resolution.
	Remote lipgloss.Style

	// Fallback labels a fallback resolution.
	Fallback lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(36)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Card: card,

		HighlightedCard: card.
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Highlight),

		Price: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#111827")).
			Background(theme.Highlight).
			Padding(0, 1),

		Remote: lipgloss.NewStyle().
			Foreground(theme.Remote),

		Fallback: lipgloss.NewStyle().
			Foreground(theme.Fallback),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#111827")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
