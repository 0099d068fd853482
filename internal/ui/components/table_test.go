package components

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqltrail/sqltrail/internal/api"
)

func TestRenderTable_Empty(t *testing.T) {
	assert.Contains(t, RenderTable(nil, 80), EmptyResult)
	assert.Contains(t, RenderTable(&api.TableResult{Columns: []string{"id"}}, 80), EmptyResult)
}

func TestRenderTable_HeadersAndRows(t *testing.T) {
	out := RenderTable(&api.TableResult{
		Columns: []string{"nome", "salario", "ativo"},
		Rows: [][]api.Cell{
			{"Ana", json.Number("3500.5"), true},
			{"Bruno", nil, false},
		},
		TotalRows: 2,
	}, 0)

	for _, want := range []string{"nome", "salario", "ativo", "Ana", "3500.5", "true", "Bruno", "NULL", "false"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, EmptyResult)
}

func TestRenderResultCard(t *testing.T) {
	res := &api.TableResult{Columns: []string{"id"}, Rows: [][]api.Cell{{json.Number("1")}}, TotalRows: 30}
	out := RenderResultCard(LearnerResultTitle, res, "Mostrando 1 de 30 linhas", 60)
	assert.Contains(t, out, LearnerResultTitle)
	assert.Contains(t, out, "Mostrando 1 de 30 linhas")

	out = RenderResultCard(ExpectedResultTitle, nil, "", 60)
	assert.Contains(t, out, EmptyResult)
	assert.False(t, strings.Contains(out, "Mostrando"))
}
