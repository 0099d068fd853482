package components

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/sqltrail/sqltrail/internal/api"
	"github.com/sqltrail/sqltrail/internal/ui/theme"
)

// EmptyResult is shown in place of a table with nothing to display.
const EmptyResult = "Nenhum resultado para exibir."

// RenderTable renders a query result. A nil or row-less result renders the
// empty-state message. Null cells are dimmed. A positive width caps the
// table width.
func RenderTable(res *api.TableResult, width int) string {
	if res.Empty() {
		return theme.Hint.Render(EmptyResult)
	}

	rows := make([][]string, len(res.Rows))
	nulls := make([][]bool, len(res.Rows))
	for i, row := range res.Rows {
		rows[i] = make([]string, len(row))
		nulls[i] = make([]bool, len(row))
		for j, cell := range row {
			rows[i][j] = api.FormatCell(cell)
			nulls[i][j] = api.IsNull(cell)
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(res.Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return theme.TableHeader
			case row >= 0 && row < len(nulls) && col < len(nulls[row]) && nulls[row][col]:
				return theme.NullCell
			default:
				return theme.TableCell
			}
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}
