package surfaces

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/messages"
	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/styles"
	"github.com/mdsolution/vitrine/internal/core/domain"
)

func testSurfaces() []domain.Surface {
	return []domain.Surface{
		{Name: "pricing", Title: "Planos de Marketing", Category: domain.CategoryMarketing, Page: "home"},
		{Name: "swot", Category: domain.CategorySwot, Page: "swot"},
	}
}

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles(), testSurfaces(), true)

	require.NotNil(t, view)
	// 2 surfaces + records + help + quit
	require.Len(t, view.Items(), 5)
	assert.Equal(t, "Planos de Marketing", view.Items()[0].Label)
	assert.Equal(t, "swot", view.Items()[1].Label, "untitled surface uses its name")
	assert.Equal(t, messages.ViewRecords, view.Items()[2].View)
	assert.True(t, view.Items()[4].Quit)
	assert.Equal(t, 0, view.Selected())
}

func TestNewView_WithoutRecords(t *testing.T) {
	view := NewView(nil, testSurfaces(), false)

	require.Len(t, view.Items(), 4)
	assert.NotNil(t, view.styles)
	for _, item := range view.Items() {
		assert.NotEqual(t, messages.ViewRecords, item.View)
	}
}

func TestView_Init(t *testing.T) {
	assert.Nil(t, NewView(nil, nil, false).Init())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, nil, false)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
}

func TestView_Update_Navigate(t *testing.T) {
	view := NewView(nil, testSurfaces(), false)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 3, view.Selected(), "cannot move past last item")

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, view.Selected(), "cannot move above first item")
}

func TestView_Update_SelectSurface(t *testing.T) {
	view := NewView(nil, testSurfaces(), false)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.SurfaceSelected)
	require.True(t, ok)
	assert.Equal(t, "pricing", msg.Surface.Name)
}

func TestView_Update_SelectHelp(t *testing.T) {
	view := NewView(nil, testSurfaces(), false)
	view.selected = 2

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHelp}, cmd())
}

func TestView_Update_Quit(t *testing.T) {
	view := NewView(nil, testSurfaces(), false)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_View(t *testing.T) {
	view := NewView(nil, testSurfaces(), true)
	assert.Equal(t, "Initialising...", view.View())

	view.SetDimensions(80, 24)
	out := view.View()

	assert.Contains(t, out, "vitrine")
	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "Planos de Marketing")
	assert.Contains(t, out, "marketing/home")
	assert.Contains(t, out, "Local records")
	assert.Contains(t, out, "Quit")
}
