package workspace

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sqltrail/sqltrail/internal/ui/components"
	"github.com/sqltrail/sqltrail/internal/ui/layout"
	"github.com/sqltrail/sqltrail/internal/ui/theme"
)

// promptTitle heads the card holding the question prompt.
const promptTitle = "Enunciado"

// editorHeight gives the editor a third of the content area, within bounds.
func editorHeight(height int) int {
	return min(max(height/3, 6), 14)
}

func (w *WorkspaceScreen) View(width, height int) string {
	props := w.headerProps()
	bar := w.header.View(props, width)

	if overlay := w.header.Overlay(props, width); overlay != "" {
		body := lipgloss.Place(width, max(height-2, 1), lipgloss.Center, lipgloss.Center, overlay)
		return bar + "\n\n" + body
	}

	st := w.ctrl.State()
	w.editor.SetSize(width, editorHeight(height))

	prompt := theme.Card.Width(max(width-2, 20)).Render(
		theme.PanelTitle.Render(promptTitle) + "\n" +
			theme.Body.Width(max(width-6, 16)).Render(st.Prompt))

	sections := []string{
		bar,
		prompt,
		w.editor.View(true),
		w.status.View(st.Status, st.Verdict),
		w.results(width),
	}
	return strings.Join(sections, "\n")
}

// results places the two result cards side by side on wide terminals and
// stacked otherwise.
func (w *WorkspaceScreen) results(width int) string {
	st := w.ctrl.State()
	if layout.IsCompactWidth(width) {
		return lipgloss.JoinVertical(lipgloss.Left,
			components.RenderResultCard(components.LearnerResultTitle, st.Learner, st.LearnerFooter, width-2),
			components.RenderResultCard(components.ExpectedResultTitle, st.Expected, st.ExpectedFooter, width-2),
		)
	}
	half := (width - 2) / 2
	return lipgloss.JoinHorizontal(lipgloss.Top,
		components.RenderResultCard(components.LearnerResultTitle, st.Learner, st.LearnerFooter, half),
		components.RenderResultCard(components.ExpectedResultTitle, st.Expected, st.ExpectedFooter, half),
	)
}
