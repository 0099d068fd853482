// Package app holds the root Bubble Tea model.
package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/sqltrail/sqltrail/internal/router"
	"github.com/sqltrail/sqltrail/internal/screen"
	"github.com/sqltrail/sqltrail/internal/screens/home"
	"github.com/sqltrail/sqltrail/internal/screens/welcome"
	"github.com/sqltrail/sqltrail/internal/screens/workspace"
	"github.com/sqltrail/sqltrail/internal/trail"
	"github.com/sqltrail/sqltrail/internal/tracks"
	"github.com/sqltrail/sqltrail/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Backend     trail.Backend
	Logger      *zap.Logger
	Timeout     time.Duration
	DiagramsDir string

	// Catalog lists the tracks offered on the selection screen. Defaults
	// to tracks.All().
	Catalog []tracks.Track

	// Start opens a workspace directly instead of the track selection.
	Start *trail.Mode

	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *zap.Logger
	width  int
	height int
}

// NewAppModel builds the screen stack described by opts.
func NewAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Catalog == nil {
		opts.Catalog = tracks.All()
	}
	deps := workspace.Deps{
		Backend:     opts.Backend,
		Logger:      opts.Logger,
		Timeout:     opts.Timeout,
		DiagramsDir: opts.DiagramsDir,
	}

	first := func() screen.Screen {
		if opts.Start != nil {
			return workspace.New(*opts.Start, deps, false)
		}
		return home.New(opts.Catalog, func(mode trail.Mode) screen.Screen {
			return workspace.New(mode, deps, true)
		})
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = first()
	} else {
		initial = welcome.New(first)
	}
	return AppModel{
		router: router.New(initial),
		logger: opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if ic, ok := m.router.Active().(screen.EscapeInterceptor); ok && ic.InterceptsEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg:
		m.logger.Debug("push screen", zap.String("title", msg.Screen.Title()))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if frame := m.render(); frame != "" {
		v.SetContent(frame)
	}
	return v
}

// render draws the whole frame, or "" before the first size is known.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, context := "", ""
	if active != nil {
		title = active.Title()
	}
	if cp, ok := active.(screen.ContextProvider); ok {
		context = cp.HeaderContext()
	}
	header := layout.RenderHeader(title, context, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Sair"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Voltar"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Sair"}}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(NewAppModel(opts))
	_, err := p.Run()
	return err
}
