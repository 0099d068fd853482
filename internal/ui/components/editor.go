package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sqltrail/sqltrail/internal/ui/theme"
)

// SubmitLabel is the editor's submit action.
const SubmitLabel = "Validar Consulta"

// SubmitQueryMsg is emitted when the learner submits the query.
type SubmitQueryMsg struct {
	SQL string
}

// Editor is the multi-line SQL input with its submit button.
type Editor struct {
	area   textarea.Model
	submit Button
}

// NewEditor creates an empty, unfocused editor.
func NewEditor() Editor {
	area := textarea.New()
	area.Placeholder = "SELECT * FROM ..."
	area.ShowLineNumbers = true
	area.CharLimit = 0
	area.Prompt = "│ "

	return Editor{
		area:   area,
		submit: NewButton(SubmitLabel,
			key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("Ctrl+S", "validar"))),
	}
}

// Focus gives the text area keyboard focus.
func (e *Editor) Focus() tea.Cmd {
	return e.area.Focus()
}

// Blur removes keyboard focus.
func (e *Editor) Blur() {
	e.area.Blur()
}

// Value returns the current text.
func (e Editor) Value() string {
	return e.area.Value()
}

// SetValue replaces the text.
func (e *Editor) SetValue(s string) {
	e.area.SetValue(s)
}

// SetBusy disables submission while a validation is running.
func (e *Editor) SetBusy(busy bool) {
	e.submit.SetActive(!busy)
}

// SetSize sizes the text area to fit width x height including the button.
func (e *Editor) SetSize(width, height int) {
	e.area.SetWidth(max(width-4, 10))
	e.area.SetHeight(max(height-4, 3))
}

// Update handles the submit binding and forwards everything else to the
// text area.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	if e.submit.Matches(msg) {
		if !e.submit.Active() {
			return e, nil
		}
		sql := e.area.Value()
		return e, func() tea.Msg { return SubmitQueryMsg{SQL: sql} }
	}

	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)
	return e, cmd
}

// View renders the text area above the submit button.
func (e Editor) View(focused bool) string {
	card := theme.Card
	if focused {
		card = theme.FocusedCard
	}
	var b strings.Builder
	b.WriteString(theme.PanelTitle.Render("Consulta SQL"))
	b.WriteString("\n")
	b.WriteString(e.area.View())
	return lipgloss.JoinVertical(lipgloss.Right,
		card.Render(b.String()),
		e.submit.View(),
	)
}
