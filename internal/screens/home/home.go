// Package home is the track selection screen.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sqltrail/sqltrail/internal/router"
	"github.com/sqltrail/sqltrail/internal/screen"
	"github.com/sqltrail/sqltrail/internal/trail"
	"github.com/sqltrail/sqltrail/internal/tracks"
	"github.com/sqltrail/sqltrail/internal/ui/components"
	"github.com/sqltrail/sqltrail/internal/ui/layout"
	"github.com/sqltrail/sqltrail/internal/ui/theme"
)

// Menu labels beyond the catalog tracks.
const (
	Heading     = "Selecione o Banco de Dados"
	LabelSingle = "Questão Avulsa"
	LabelQuit   = "Sair"
)

// buttonWidth is the fixed width for track buttons.
const buttonWidth = 34

// WorkspaceFactory builds the workspace screen for a mode.
type WorkspaceFactory func(mode trail.Mode) screen.Screen

// HomeScreen lets the learner pick a track.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the track selection screen. Choosing an entry pushes the
// workspace built by open.
func New(catalog []tracks.Track, open WorkspaceFactory) *HomeScreen {
	push := func(mode trail.Mode) func() tea.Cmd {
		return func() tea.Cmd {
			s := open(mode)
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := make([]components.MenuItem, 0, len(catalog)+2)
	for _, t := range catalog {
		items = append(items, components.MenuItem{
			Icon:   tracks.Icon(t.Slug),
			Label:  t.Title,
			Action: push(trail.Track(t.Slug)),
		})
	}
	items = append(items,
		components.MenuItem{Icon: "❓", Label: LabelSingle, Action: push(trail.Single())},
		components.MenuItem{Icon: "⏻", Label: LabelQuit, Action: func() tea.Cmd { return tea.Quit }},
	)

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Trilhas"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(Heading)

	sub := theme.Hint.Render("Escolha uma trilha para praticar consultas SQL")

	content := strings.Join([]string{
		heading,
		sub,
		"",
		h.menu.View(buttonWidth),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(content))
}
