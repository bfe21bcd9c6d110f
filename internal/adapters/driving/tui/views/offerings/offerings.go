// Package offerings previews the offerings one display surface renders.
//
// The view mirrors a mounted page section: it shows the fallback catalog
// at once, resolves the surface in the background and swaps in the result.
// Every mount is tagged with a generation, and a ResolutionLoaded message
// for any other generation is dropped, so a slow fetch can never overwrite
// a surface the user has already left.
package offerings

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/components/status"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/keymap"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/messages"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/styles"
	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driving"
)

// cardWidth is the rendered width of one card including its border.
const cardWidth = 40

// View previews one surface.
type View struct {
	styles  *styles.Styles
	keys    *keymap.KeyMap
	content driving.ContentService
	ctx     context.Context
	bar     *status.Bar
	spinner spinner.Model

	surface    domain.Surface
	resolution *domain.Resolution
	generation uint64
	cancel     context.CancelFunc
	loading    bool
	selected   int
	err        error

	width  int
	height int
}

// NewView creates an unmounted offerings view.
func NewView(s *styles.Styles, content driving.ContentService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = s.Muted

	return &View{
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		content: content,
		ctx:     context.Background(),
		bar:     status.NewBar(s, nil),
		spinner: sp,
		width:   80,
		height:  24,
	}
}

// WithContext sets the parent context for fetches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Mount shows surface's fallback catalog and starts resolving it.
// Any previous mount is unmounted first.
func (v *View) Mount(surface domain.Surface) tea.Cmd {
	v.Unmount()

	v.surface = surface
	v.selected = 0
	v.err = nil
	v.generation++

	fallback, err := v.content.Fallback(surface.Name)
	if err != nil {
		v.resolution = nil
		v.err = err
		v.bar.SetState(status.StateError)
		v.bar.SetMessage(err.Error())
		return nil
	}
	v.resolution = fallback
	v.loading = true
	v.bar.SetState(status.StateLoading)
	v.bar.SetMessage("")
	v.bar.SetCount(len(fallback.Descriptors))

	ctx, cancel := context.WithCancel(v.ctx)
	v.cancel = cancel

	return tea.Batch(v.spinner.Tick, resolve(ctx, v.content, surface.Name, v.generation))
}

// Unmount cancels the in-flight fetch. Its result, if it still arrives,
// is discarded.
func (v *View) Unmount() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	if v.loading {
		v.generation++
		v.loading = false
	}
}

func resolve(ctx context.Context, content driving.ContentService, name string, gen uint64) tea.Cmd {
	return func() tea.Msg {
		res, err := content.Resolve(ctx, name)
		return messages.ResolutionLoaded{
			Surface:    name,
			Generation: gen,
			Resolution: res,
			Err:        err,
		}
	}
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ResolutionLoaded:
		v.applyResolution(msg)
		return v, nil

	case messages.RefreshRequested:
		return v, v.Mount(v.surface)

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Back):
			v.Unmount()
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewSurfaces}
			}
		case key.Matches(msg, v.keys.Refresh):
			return v, v.Mount(v.surface)
		case key.Matches(msg, v.keys.Up, v.keys.Prev):
			if v.selected > 0 {
				v.selected--
			}
		case key.Matches(msg, v.keys.Down, v.keys.Next):
			if v.resolution != nil && v.selected < len(v.resolution.Descriptors)-1 {
				v.selected++
			}
		}
	}

	return v, nil
}

func (v *View) applyResolution(msg messages.ResolutionLoaded) {
	if msg.Generation != v.generation || msg.Surface != v.surface.Name {
		return
	}
	v.loading = false
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}

	if msg.Err != nil {
		v.err = msg.Err
		v.bar.SetState(status.StateError)
		v.bar.SetMessage(msg.Err.Error())
		return
	}

	v.resolution = msg.Resolution
	v.bar.SetCount(len(msg.Resolution.Descriptors))
	v.bar.SetMessage("")
	if msg.Resolution.Origin == domain.OriginRemote {
		v.bar.SetState(status.StateRemote)
		return
	}
	v.bar.SetState(status.StateFallback)
	if msg.Resolution.FetchErr != nil {
		v.bar.SetMessage("source unavailable")
	}
}

// View renders the preview.
func (v *View) View() string {
	var b strings.Builder

	title := v.surface.Title
	if title == "" {
		title = v.surface.Name
	}
	b.WriteString(v.styles.Title.Render(title))
	if v.loading {
		b.WriteString(" " + v.spinner.View())
	}
	b.WriteString("\n\n")

	if v.resolution != nil {
		b.WriteString(v.renderCards())
		b.WriteString("\n")
	} else if v.err != nil {
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	v.bar.SetWidth(v.width)
	b.WriteString(v.bar.View())

	return b.String()
}

func (v *View) renderCards() string {
	descs := v.resolution.Descriptors
	cards := make([]string, len(descs))
	for i := range descs {
		cards[i] = v.renderCard(&descs[i], i == v.selected)
	}

	if len(cards) > 1 && v.width >= cardWidth*len(cards) {
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (v *View) renderCard(d *domain.Descriptor, selected bool) string {
	var b strings.Builder

	if d.Highlighted {
		b.WriteString(v.styles.Badge.Render(d.BadgeText))
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Normal.Bold(true).Render(d.Name))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(d.Subtitle))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Price.Render(d.Price))
	b.WriteString(" ")
	b.WriteString(v.styles.Muted.Render(d.ExtraInfo))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render(d.Description))
	b.WriteString("\n\n")
	for _, f := range d.Features {
		b.WriteString(v.styles.Normal.Render("• " + f))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Selected.Render("[ " + d.CTAText + " ]"))

	style := v.styles.Card
	if d.Highlighted {
		style = v.styles.HighlightedCard
	}
	if selected {
		style = style.BorderForeground(v.styles.Theme().Primary)
	}
	return style.Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Surface returns the mounted surface.
func (v *View) Surface() domain.Surface {
	return v.surface
}

// Resolution returns the resolution on display, or nil.
func (v *View) Resolution() *domain.Resolution {
	return v.resolution
}

// Generation returns the current mount generation.
func (v *View) Generation() uint64 {
	return v.generation
}

// Loading reports whether a fetch is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Selected returns the index of the focused card.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
