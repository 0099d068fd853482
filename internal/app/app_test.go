package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqltrail/sqltrail/internal/api"
	"github.com/sqltrail/sqltrail/internal/router"
	"github.com/sqltrail/sqltrail/internal/screens/home"
	"github.com/sqltrail/sqltrail/internal/screens/welcome"
	"github.com/sqltrail/sqltrail/internal/screens/workspace"
	"github.com/sqltrail/sqltrail/internal/trail"
)

type nopBackend struct{}

func (nopBackend) FetchQuestion(context.Context) (*api.Question, error) {
	return &api.Question{ID: 1, Prompt: "p"}, nil
}

func (nopBackend) FetchQuestions(context.Context, string) ([]api.Question, error) {
	return nil, nil
}

func (nopBackend) Validate(context.Context, api.ValidateRequest) (*api.Outcome, error) {
	return &api.Outcome{}, nil
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(AppModel)
	require.True(t, ok)
	return out, cmd
}

func TestNewAppModel_StartsWithWelcome(t *testing.T) {
	m := NewAppModel(Options{Backend: nopBackend{}})
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())
}

func TestNewAppModel_SkipWelcome(t *testing.T) {
	m := NewAppModel(Options{Backend: nopBackend{}, SkipWelcome: true})
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
}

func TestNewAppModel_DirectWorkspace(t *testing.T) {
	mode := trail.Track("universidade")
	m := NewAppModel(Options{Backend: nopBackend{}, SkipWelcome: true, Start: &mode})
	ws, ok := m.router.Active().(*workspace.WorkspaceScreen)
	require.True(t, ok)
	assert.Equal(t, mode, ws.State().Mode)
}

func TestUpdate_EscPopsWorkspace(t *testing.T) {
	m := NewAppModel(Options{Backend: nopBackend{}, SkipWelcome: true})
	m.router.Push(workspace.New(trail.Single(), workspace.Deps{Backend: nopBackend{}}, true))
	require.Equal(t, 2, m.router.Depth())

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestUpdate_EscClosesOverlayFirst(t *testing.T) {
	m := NewAppModel(Options{Backend: nopBackend{}, SkipWelcome: true})
	ws := workspace.New(trail.Track("universidade"), workspace.Deps{Backend: nopBackend{}}, true)
	m.router.Push(ws)

	m, _ = update(t, m, tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})
	require.True(t, ws.InterceptsEscape())

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.False(t, ws.InterceptsEscape())
	assert.Equal(t, 2, m.router.Depth())
}

func TestUpdate_EscAtRootIsNoop(t *testing.T) {
	m := NewAppModel(Options{Backend: nopBackend{}, SkipWelcome: true})
	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := NewAppModel(Options{Backend: nopBackend{}})
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_RendersFrame(t *testing.T) {
	m := NewAppModel(Options{Backend: nopBackend{}, SkipWelcome: true})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	content := m.render()
	assert.Contains(t, content, "SQL Trail")
	assert.Contains(t, content, home.Heading)
	assert.Contains(t, content, "Ctrl+C")
}

func TestView_EmptyBeforeSize(t *testing.T) {
	m := NewAppModel(Options{Backend: nopBackend{}})
	assert.Empty(t, m.render())
}

func TestView_TooSmall(t *testing.T) {
	m := NewAppModel(Options{Backend: nopBackend{}, SkipWelcome: true})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal muito pequeno")
}
