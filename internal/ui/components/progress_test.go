package components

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestRenderPosition(t *testing.T) {
	out := RenderPosition(2, 4)
	assert.Contains(t, out, "Questão 2 de 4")
	assert.Equal(t, positionBarWidth+2+lipgloss.Width("Questão 2 de 4"), lipgloss.Width(out))
}

func TestRenderPosition_EmptySet(t *testing.T) {
	assert.Equal(t, lipgloss.Width("Questão 0 de 0"), lipgloss.Width(RenderPosition(0, 0)))
}
