package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/sqltrail/sqltrail/internal/api"
	"github.com/sqltrail/sqltrail/internal/tracks"
	"github.com/sqltrail/sqltrail/internal/ui/layout"
	"github.com/sqltrail/sqltrail/internal/ui/theme"
)

// Header action labels.
const (
	LabelNewQuestion    = "Nova Questão"
	LabelNextQuestion   = "Próxima Questão"
	LabelSelectQuestion = "Selecionar Questão"
	LabelDiagram        = "Ver Mapa Conceitual"
	LabelBackToTracks   = "Voltar às trilhas"
)

// NextQuestionMsg asks for a new question (single variant) or the next one
// in the set (multi variant).
type NextQuestionMsg struct{}

// QuestionChosenMsg reports a pick from the question list.
type QuestionChosenMsg struct {
	ID int
}

// DiagramLoadedMsg carries the result of loading the reference diagram.
type DiagramLoadedMsg struct {
	Name    string
	Diagram tracks.Diagram
	Err     error
}

// HeaderProps is what the header needs from its owner on every call.
type HeaderProps struct {
	// Multi selects the multi-question variant with the question list.
	Multi     bool
	Questions []api.Question
	CurrentID int
	// CanGoBack shows the back-to-tracks action.
	CanGoBack   bool
	DiagramsDir string
	DiagramName string
}

// HeaderKeyMap defines the header's bindings.
type HeaderKeyMap struct {
	Next    key.Binding
	List    key.Binding
	Diagram key.Binding
	Up      key.Binding
	Down    key.Binding
	PageUp  key.Binding
	PageDn  key.Binding
	Choose  key.Binding
	Close   key.Binding
}

// DefaultHeaderKeyMap returns the default header bindings.
func DefaultHeaderKeyMap() HeaderKeyMap {
	return HeaderKeyMap{
		Next:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("Ctrl+N", LabelNewQuestion)),
		List:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("Ctrl+L", LabelSelectQuestion)),
		Diagram: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("Ctrl+D", LabelDiagram)),
		Up:      key.NewBinding(key.WithKeys("up", "k")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		PageUp:  key.NewBinding(key.WithKeys("pgup")),
		PageDn:  key.NewBinding(key.WithKeys("pgdown")),
		Choose:  key.NewBinding(key.WithKeys("enter")),
		Close:   key.NewBinding(key.WithKeys("esc")),
	}
}

// Header is the navigation bar. It owns only which overlay is open; all
// question data comes in through HeaderProps.
type Header struct {
	keys HeaderKeyMap

	listOpen   bool
	listCursor int
	listOffset int
	listRows   int

	diagramOpen    bool
	diagramLoading bool
	diagramName    string
	diagram        tracks.Diagram
	diagramErr     error
}

// NewHeader creates a header with no overlay open.
func NewHeader() Header {
	return Header{keys: DefaultHeaderKeyMap(), listRows: 10}
}

// OverlayOpen reports whether an overlay currently has the keyboard.
func (h Header) OverlayOpen() bool {
	return h.listOpen || h.diagramOpen
}

// CloseOverlay closes whichever overlay is open.
func (h *Header) CloseOverlay() {
	h.listOpen = false
	h.diagramOpen = false
}

// SetListRows sets how many entries the question list shows at once.
func (h *Header) SetListRows(n int) {
	h.listRows = max(n, 1)
	if h.listCursor >= h.listOffset+h.listRows {
		h.listOffset = h.listCursor - h.listRows + 1
	}
}

// Update handles header bindings and overlay navigation. It reports
// whether msg was consumed.
func (h Header) Update(msg tea.Msg, props HeaderProps) (Header, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case DiagramLoadedMsg:
		if msg.Name != h.diagramName {
			return h, nil, true
		}
		h.diagramLoading = false
		h.diagram, h.diagramErr = msg.Diagram, msg.Err
		return h, nil, true
	case tea.KeyPressMsg:
		if h.listOpen {
			return h.updateList(msg, props)
		}
		if h.diagramOpen {
			if key.Matches(msg, h.keys.Close, h.keys.Diagram) {
				h.diagramOpen = false
			}
			return h, nil, true
		}
		switch {
		case key.Matches(msg, h.keys.Next):
			return h, func() tea.Msg { return NextQuestionMsg{} }, true
		case key.Matches(msg, h.keys.List) && props.Multi:
			h.openList(props)
			return h, nil, true
		case key.Matches(msg, h.keys.Diagram):
			return h, h.openDiagram(props), true
		}
	}
	return h, nil, false
}

func (h *Header) openList(props HeaderProps) {
	h.listOpen = true
	h.listCursor = 0
	for i, q := range props.Questions {
		if q.ID == props.CurrentID {
			h.listCursor = i
			break
		}
	}
	h.listOffset = 0
	h.clampList(len(props.Questions))
}

func (h Header) updateList(msg tea.KeyPressMsg, props HeaderProps) (Header, tea.Cmd, bool) {
	n := len(props.Questions)
	switch {
	case key.Matches(msg, h.keys.Close, h.keys.List):
		h.listOpen = false
	case key.Matches(msg, h.keys.Up):
		h.listCursor--
	case key.Matches(msg, h.keys.Down):
		h.listCursor++
	case key.Matches(msg, h.keys.PageUp):
		h.listCursor -= h.listRows
	case key.Matches(msg, h.keys.PageDn):
		h.listCursor += h.listRows
	case key.Matches(msg, h.keys.Choose):
		if h.listCursor < 0 || h.listCursor >= n {
			return h, nil, true
		}
		id := props.Questions[h.listCursor].ID
		h.listOpen = false
		return h, func() tea.Msg { return QuestionChosenMsg{ID: id} }, true
	}
	h.clampList(n)
	return h, nil, true
}

// clampList keeps the cursor in range and visible.
func (h *Header) clampList(n int) {
	if n > 0 {
		h.listCursor = min(max(h.listCursor, 0), n-1)
	} else {
		h.listCursor = 0
	}
	if h.listCursor < h.listOffset {
		h.listOffset = h.listCursor
	}
	if h.listCursor >= h.listOffset+h.listRows {
		h.listOffset = h.listCursor - h.listRows + 1
	}
}

func (h *Header) openDiagram(props HeaderProps) tea.Cmd {
	h.diagramOpen = true
	h.diagramLoading = true
	h.diagramErr = nil
	dir, name := props.DiagramsDir, props.DiagramName
	h.diagramName = name
	return func() tea.Msg {
		d, err := tracks.LoadDiagram(dir, name)
		return DiagramLoadedMsg{Name: name, Diagram: d, Err: err}
	}
}

// Hints lists the header actions for the footer.
func (h Header) Hints(props HeaderProps) []layout.KeyHint {
	if h.listOpen {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navegar"},
			{Key: "Enter", Description: "Abrir"},
			{Key: "Esc", Description: "Fechar"},
		}
	}
	if h.diagramOpen {
		return []layout.KeyHint{{Key: "Esc", Description: "Fechar"}}
	}
	var hints []layout.KeyHint
	if props.Multi {
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+L", Description: LabelSelectQuestion},
			layout.KeyHint{Key: "Ctrl+N", Description: LabelNextQuestion})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+N", Description: LabelNewQuestion})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+D", Description: LabelDiagram})
	if props.CanGoBack {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: LabelBackToTracks})
	}
	return hints
}

// View renders the action bar.
func (h Header) View(props HeaderProps, width int) string {
	var parts []string
	for _, hint := range h.Hints(props) {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(hint.Key)+" "+
				lipgloss.NewStyle().Foreground(theme.Text).Render(hint.Description))
	}
	bar := strings.Join(parts, lipgloss.NewStyle().Foreground(theme.Border).Render("  │  "))

	if props.Multi && len(props.Questions) > 0 {
		pos := 0
		for i, q := range props.Questions {
			if q.ID == props.CurrentID {
				pos = i + 1
				break
			}
		}
		counter := RenderPosition(pos, len(props.Questions))
		gap := width - lipgloss.Width(bar) - lipgloss.Width(counter) - 2
		if gap > 0 {
			bar += strings.Repeat(" ", gap) + counter
		}
	}
	return bar
}

// Overlay renders the open overlay, or "" when none is open.
func (h Header) Overlay(props HeaderProps, width int) string {
	switch {
	case h.listOpen:
		return theme.Overlay.Render(h.listView(props, max(width-8, 20)))
	case h.diagramOpen:
		return theme.Overlay.Render(h.diagramView())
	default:
		return ""
	}
}

func (h Header) listView(props HeaderProps, width int) string {
	var b strings.Builder
	b.WriteString(theme.PanelTitle.Render(LabelSelectQuestion))
	b.WriteString("\n\n")
	if len(props.Questions) == 0 {
		b.WriteString(theme.Hint.Render("Nenhuma questão encontrada."))
		return b.String()
	}

	end := min(h.listOffset+h.listRows, len(props.Questions))
	for i := h.listOffset; i < end; i++ {
		q := props.Questions[i]
		label := QuestionLabel(i, q, width)
		switch {
		case i == h.listCursor:
			b.WriteString(theme.Selected.Render("▸ " + label))
		case q.ID == props.CurrentID:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("• " + label))
		default:
			b.WriteString(theme.Unselected.Render("  " + label))
		}
		b.WriteString("\n")
	}
	if len(props.Questions) > h.listRows {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d-%d de %d", h.listOffset+1, end, len(props.Questions))))
	}
	return b.String()
}

// QuestionLabel is the list entry for the question at index i: a 1-based
// ordinal and the first line of the prompt, truncated to width.
func QuestionLabel(i int, q api.Question, width int) string {
	prompt := strings.Join(strings.Fields(q.Prompt), " ")
	return ansi.Truncate(fmt.Sprintf("Questão %d: %s", i+1, prompt), max(width-2, 10), "…")
}

func (h Header) diagramView() string {
	var b strings.Builder
	b.WriteString(theme.PanelTitle.Render(LabelDiagram))
	b.WriteString("\n\n")
	switch {
	case h.diagramLoading:
		b.WriteString(theme.Hint.Render("Carregando diagrama..."))
	case h.diagramErr != nil:
		b.WriteString(theme.Incorrect.Render("Diagrama indisponível: " + h.diagramErr.Error()))
	case h.diagram.Text != "":
		b.WriteString(theme.Body.Render(h.diagram.Text))
	default:
		b.WriteString(theme.Body.Render("Diagrama: " + h.diagram.Path))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Abra o arquivo em um visualizador de imagens."))
	}
	return b.String()
}
