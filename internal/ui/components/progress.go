package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sqltrail/sqltrail/internal/ui/theme"
)

// positionBarWidth is the bar's cell count, excluding the label.
const positionBarWidth = 12

// RenderPosition shows where pos (1-based) sits in a set of total
// questions: a short bar followed by "Questão pos de total".
func RenderPosition(pos, total int) string {
	label := theme.Hint.Render(fmt.Sprintf("Questão %d de %d", pos, total))
	if total <= 0 {
		return label
	}

	filled := min(max(positionBarWidth*pos/total, 0), positionBarWidth)
	bar := lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", positionBarWidth-filled))
	return bar + "  " + label
}
