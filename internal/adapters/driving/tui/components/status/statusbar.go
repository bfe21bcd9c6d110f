// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/keymap"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/styles"
)

// State represents the current preview state for display.
type State string

const (
	StateReady    State = "ready"
	StateLoading  State = "loading"
	StateRemote   State = "remote"
	StateFallback State = "fallback"
	StateError    State = "error"
	StateHelp     State = "help"
)

// Bar displays preview status and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	count   int
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Resolving...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateRemote:
		return s.styles.Remote.Render(fmt.Sprintf("%s · remote", s.countLabel()))
	case StateFallback:
		label := fmt.Sprintf("%s · fallback", s.countLabel())
		if s.message != "" {
			label += " (" + s.message + ")"
		}
		return s.styles.Fallback.Render(label)
	case StateReady:
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) countLabel() string {
	if s.count == 1 {
		return "1 offering"
	}
	return fmt.Sprintf("%d offerings", s.count)
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.state {
	case StateLoading, StateRemote, StateFallback:
		bindings = s.keymap.PreviewHelp()
	case StateReady, StateError, StateHelp:
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetCount sets the number of offerings on display.
func (s *Bar) SetCount(count int) {
	s.count = count
}

// Count returns the number of offerings on display.
func (s *Bar) Count() int {
	return s.count
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.count = 0
}
