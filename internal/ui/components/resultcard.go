package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sqltrail/sqltrail/internal/api"
	"github.com/sqltrail/sqltrail/internal/ui/theme"
)

// Result panel titles.
const (
	LearnerResultTitle  = "Resultado do Aluno"
	ExpectedResultTitle = "Resultado Esperado"
)

// RenderResultCard renders a titled card holding a result table and the
// footer line supplied by the caller.
func RenderResultCard(title string, res *api.TableResult, footer string, width int) string {
	inner := max(width-4, 10)

	var b strings.Builder
	b.WriteString(theme.PanelTitle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(res, inner))
	if footer != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(footer))
	}

	return theme.Card.
		Width(width).
		Render(lipgloss.NewStyle().MaxWidth(inner).Render(b.String()))
}
