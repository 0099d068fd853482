package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/spinner"
	"charm.land/lipgloss/v2"

	"github.com/sqltrail/sqltrail/internal/ui/theme"
)

// StatusLabel prefixes every status line.
const StatusLabel = "Status da Consulta: "

// Status shows the operation status, with a spinner while busy.
type Status struct {
	spinner spinner.Model
	active  bool
}

// NewStatus creates an idle status indicator.
func NewStatus() Status {
	return Status{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

// SetBusy starts or stops the spinner. It returns the first tick when the
// spinner starts.
func (s *Status) SetBusy(busy bool) tea.Cmd {
	if busy == s.active {
		return nil
	}
	s.active = busy
	if busy {
		return s.spinner.Tick
	}
	return nil
}

// Busy reports whether the spinner is running.
func (s Status) Busy() bool {
	return s.active
}

// Update advances the spinner. Ticks stop once the status is idle.
func (s Status) Update(msg tea.Msg) (Status, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok || !s.active {
		return s, nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the status line for message, colored by the backend's
// verdict when there is one.
func (s Status) View(message string, verdict *bool) string {
	msgStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if verdict != nil {
		msgStyle = theme.Incorrect
		if *verdict {
			msgStyle = theme.Correct
		}
	}
	line := lipgloss.NewStyle().Foreground(theme.TextDim).Render(StatusLabel) +
		msgStyle.Render(message)
	if s.active {
		return s.spinner.View() + " " + line
	}
	return "  " + line
}
