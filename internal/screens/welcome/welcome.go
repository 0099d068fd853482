package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sqltrail/sqltrail/internal/router"
	"github.com/sqltrail/sqltrail/internal/screen"
	"github.com/sqltrail/sqltrail/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "Aprenda SQL resolvendo consultas de verdade"

const databaseArt = `   ╭─────────╮
   │╲_______╱│
   │ SELECT  │
   │╲_______╱│
   │  FROM   │
   │╲_______╱│
   │  WHERE  │
   ╰─────────╯`

// cursor frames blink beside the database
var cursorFrames = []string{"▌", " "}

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the next screen.
type WelcomeScreen struct {
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by nextFactory.
func New(nextFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		nextFactory: nextFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	art := lipgloss.NewStyle().Foreground(theme.Secondary).Render(databaseArt)

	// Phase 2+: blinking cursor beside the query keywords
	if w.elapsed >= phase1End {
		frame := cursorFrames[w.tickCount%len(cursorFrames)]
		cur := lipgloss.NewStyle().Foreground(theme.Accent).Render(frame)
		lines := strings.Split(art, "\n")
		for _, i := range []int{2, 4, 6} {
			if i < len(lines) {
				lines[i] += " " + cur
			}
		}
		art = strings.Join(lines, "\n")
	}
	sections = append(sections, art)

	// Phase 3+: banner, tagline and hint
	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("pressione qualquer tecla para continuar"),
		)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
