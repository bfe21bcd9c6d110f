package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdsolution/vitrine/internal/adapters/driving/tui/messages"
	"github.com/mdsolution/vitrine/internal/core/domain"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(NewPorts(&MockContentService{}, &MockRecordService{}))
	require.NoError(t, err)
	app.SetDimensions(120, 40)
	return app
}

// resolutionFrom runs the batch returned by a mount and returns its ResolutionLoaded.
func resolutionFrom(t *testing.T, cmd tea.Cmd) messages.ResolutionLoaded {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if msg, ok := c().(messages.ResolutionLoaded); ok {
			return msg
		}
	}
	t.Fatal("no ResolutionLoaded in batch")
	return messages.ResolutionLoaded{}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(NewPorts(&MockContentService{}, nil))

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewSurfaces, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingContentService)
	assert.Nil(t, app)
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t)

	assert.NotNil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, err := NewApp(NewPorts(&MockContentService{}, nil))
	require.NoError(t, err)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_View_NotReady(t *testing.T) {
	app, err := NewApp(NewPorts(&MockContentService{}, nil))
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_SelectSurface_MountsPreview(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	selected, ok := cmd().(messages.SurfaceSelected)
	require.True(t, ok)

	_, cmd = app.Update(selected)

	assert.Equal(t, messages.ViewOfferings, app.CurrentView())
	assert.Contains(t, app.View(), "Planos fallback", "fallback rendered while loading")

	app.Update(resolutionFrom(t, cmd))

	assert.Contains(t, app.View(), "remote")
	assert.Equal(t, domain.OriginRemote, app.Offerings().Resolution().Origin)
}

func TestApp_LeavingPreview_DiscardsLateResolution(t *testing.T) {
	var fetchCtx context.Context
	content := &MockContentService{
		ResolveFunc: func(ctx context.Context, name string) (*domain.Resolution, error) {
			fetchCtx = ctx
			return &domain.Resolution{Surface: name, Origin: domain.OriginRemote}, nil
		},
	}
	app, err := NewApp(NewPorts(content, nil))
	require.NoError(t, err)
	app.SetDimensions(120, 40)

	_, cmd := app.Update(messages.SurfaceSelected{Surface: testSurfaces()[0]})
	late := resolutionFrom(t, cmd)

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	app.Update(cmd())
	app.Update(late)

	assert.Equal(t, messages.ViewSurfaces, app.CurrentView())
	assert.Equal(t, domain.OriginFallback, app.Offerings().Resolution().Origin)
	assert.ErrorIs(t, fetchCtx.Err(), context.Canceled)
}

func TestApp_RecordsView(t *testing.T) {
	records := &MockRecordService{Records: []domain.ServiceRecord{
		{Name: domain.SomeText("Plano Premium"), Category: domain.CategoryMarketing},
	}}
	app, err := NewApp(NewPorts(&MockContentService{}, records))
	require.NoError(t, err)
	app.SetDimensions(120, 40)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewRecords})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewRecords, app.CurrentView())
	assert.Contains(t, app.View(), "Plano Premium")
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Help")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewSurfaces, app.CurrentView())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_QuitMessage(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
}
