package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 30))
	assert.True(t, IsTooSmall(100, 23))
	assert.False(t, IsTooSmall(80, 24))
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Trilha", "🎓 Universidade", 100)
	assert.Contains(t, out, "SQL Trail")
	assert.Contains(t, out, "Trilha")
	assert.Contains(t, out, "Universidade")
}

func TestRenderFooter_IncludesCredit(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "Ctrl+S", Description: "Validar"}}, 100)
	assert.Contains(t, out, "Ctrl+S")
	assert.Contains(t, out, Credit)
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("", "", 90)
	footer := RenderFooter(nil, 90)
	frame := RenderFrame(header, "corpo", footer, 90, 30)
	assert.Equal(t, 30, lipgloss.Height(frame))
	assert.True(t, strings.HasPrefix(frame, header))
}
