package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/keymap"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/messages"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/styles"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/views/offerings"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/views/records"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/views/surfaces"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	surfacesView  *surfaces.View
	offeringsView *offerings.View
	recordsView   *records.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        keymap.DefaultKeyMap(),
		surfacesView:  surfaces.NewView(s, ports.Content.Surfaces(), ports.Records != nil),
		offeringsView: offerings.NewView(s, ports.Content),
		recordsView:   records.NewView(s, ports.Records),
		currentView:   messages.ViewSurfaces,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.offeringsView.WithContext(ctx)
	a.recordsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("vitrine - offerings preview"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			a.offeringsView.Unmount()
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewSurfaces:
			if keymap.Matches(msg.String(), a.keymap.Help) {
				a.currentView = messages.ViewHelp
				return a, nil
			}
			a.surfacesView, cmd = a.surfacesView.Update(msg)
		case messages.ViewOfferings:
			a.offeringsView, cmd = a.offeringsView.Update(msg)
		case messages.ViewRecords:
			a.recordsView, cmd = a.recordsView.Update(msg)
		case messages.ViewHelp:
			if keymap.Matches(msg.String(), a.keymap.Back) {
				a.currentView = messages.ViewSurfaces
			}
		}
		return a, cmd

	case messages.SurfaceSelected:
		a.currentView = messages.ViewOfferings
		return a, a.offeringsView.Mount(msg.Surface)

	case messages.ViewChanged:
		if a.currentView == messages.ViewOfferings && msg.View != messages.ViewOfferings {
			a.offeringsView.Unmount()
		}
		a.currentView = msg.View
		if msg.View == messages.ViewRecords {
			return a, a.recordsView.Init()
		}
		return a, nil

	case messages.ResolutionLoaded:
		// Always routed: the view discards stale generations itself.
		a.offeringsView, cmd = a.offeringsView.Update(msg)
		return a, cmd

	case messages.RecordsLoaded:
		a.recordsView, cmd = a.recordsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		a.offeringsView.Unmount()
		return a, tea.Quit
	}

	// Forward other messages (spinner ticks) to the active view
	if a.currentView == messages.ViewOfferings {
		a.offeringsView, cmd = a.offeringsView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSurfaces:
		return a.surfacesView.View()
	case messages.ViewOfferings:
		return a.offeringsView.View()
	case messages.ViewRecords:
		return a.recordsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.surfacesView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Surfaces:
  j/k, ↑/↓    Navigate surfaces
  enter       Preview surface
  q           Quit

Preview:
  h/l, ←/→    Move between offerings
  r           Resolve again
  esc         Back to surfaces

Offerings render from the fallback catalog first and switch to
remote records once they arrive. Leaving a preview cancels its fetch.

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Offerings returns the preview view.
func (a *App) Offerings() *offerings.View {
	return a.offeringsView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.surfacesView.SetDimensions(width, height)
	a.offeringsView.SetDimensions(width, height)
	a.recordsView.SetDimensions(width, height)
}
