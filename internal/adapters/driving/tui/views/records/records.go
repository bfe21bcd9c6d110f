// Package records lists the service records held in the local store.
package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/keymap"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/messages"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/styles"
	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driving"
)

// ErrNoRecordService is reported when no local store is configured.
var ErrNoRecordService = errors.New("no local record store configured")

// View lists records ordered by display order.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	service  driving.RecordService
	ctx      context.Context
	records  []domain.ServiceRecord
	selected int
	loading  bool
	err      error
	width    int
	height   int
}

// NewView creates a new records view.
func NewView(s *styles.Styles, service driving.RecordService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		service: service,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for store calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the records.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	service, ctx := v.service, v.ctx
	return func() tea.Msg {
		if service == nil {
			return messages.RecordsLoaded{Err: ErrNoRecordService}
		}
		records, err := service.List(ctx, domain.RecordFilter{})
		return messages.RecordsLoaded{Records: records, Err: err}
	}
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.RecordsLoaded:
		v.loading = false
		v.records = msg.Records
		v.err = msg.Err
		v.selected = 0

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewSurfaces}
			}
		case key.Matches(msg, v.keys.Refresh):
			return v, v.Init()
		case key.Matches(msg, v.keys.Up):
			if v.selected > 0 {
				v.selected--
			}
		case key.Matches(msg, v.keys.Down):
			if v.selected < len(v.records)-1 {
				v.selected++
			}
		}
	}
	return v, nil
}

// View renders the listing.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Local records"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
	case len(v.records) == 0:
		b.WriteString(v.styles.Muted.Render("No records. Run 'vitrine seed' to copy the fallback catalogs."))
	default:
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %-6s %-13s %-14s %-6s %s", "ORDER", "CATEGORY", "PAGE", "ACTIVE", "NAME")))
		b.WriteString("\n")
		for i := range v.records {
			b.WriteString(v.renderRow(&v.records[i], i == v.selected))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [r] Reload  [esc] Back"))
	return b.String()
}

func (v *View) renderRow(r *domain.ServiceRecord, selected bool) string {
	active := "yes"
	if !r.Active() {
		active = "no"
	}
	line := fmt.Sprintf("%-6g %-13s %-14s %-6s %s",
		r.DisplayOrder, r.Category, r.Page.Or("-"), active, r.Name.Or("(unnamed)"))
	if selected {
		return "> " + v.styles.Selected.Render(line)
	}
	return "  " + v.styles.Normal.Render(line)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Records returns the loaded records.
func (v *View) Records() []domain.ServiceRecord {
	return v.records
}

// Selected returns the cursor index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
