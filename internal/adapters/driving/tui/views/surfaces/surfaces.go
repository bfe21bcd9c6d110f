// Package surfaces provides the surface picker, the TUI's home view.
package surfaces

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/keymap"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/messages"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/styles"
	"github.com/mdsolution/vitrine/internal/core/domain"
)

// Item represents a single entry in the picker.
type Item struct {
	Label   string
	Surface *domain.Surface
	View    messages.ViewType
	Quit    bool // If true, selecting this item quits the app
}

// View lists every display surface followed by navigation entries.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new surface picker. withRecords adds an entry for
// the local record listing.
func NewView(s *styles.Styles, surfaces []domain.Surface, withRecords bool) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	items := make([]Item, 0, len(surfaces)+3)
	for i := range surfaces {
		surface := surfaces[i]
		label := surface.Title
		if label == "" {
			label = surface.Name
		}
		items = append(items, Item{Label: label, Surface: &surface, View: messages.ViewOfferings})
	}
	if withRecords {
		items = append(items, Item{Label: "Local records", View: messages.ViewRecords})
	}
	items = append(items,
		Item{Label: "Help", View: messages.ViewHelp},
		Item{Label: "Quit", Quit: true},
	)

	return &View{
		styles: s,
		keys:   keymap.DefaultKeyMap(),
		items:  items,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case key.Matches(msg, v.keys.Down):
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case key.Matches(msg, v.keys.Select):
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			if item.Surface != nil {
				surface := *item.Surface
				return v, func() tea.Msg {
					return messages.SurfaceSelected{Surface: surface}
				}
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}

		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the picker.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("vitrine"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Display surfaces"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}

		line := cursor + style.Render(item.Label)
		if item.Surface != nil {
			line += v.styles.Muted.Render("  " + item.Surface.Category.String() + "/" + item.Surface.Page)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the picker entries.
func (v *View) Items() []Item {
	return v.items
}
