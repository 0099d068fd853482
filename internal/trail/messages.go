package trail

import (
	"errors"
	"fmt"

	"github.com/sqltrail/sqltrail/internal/api"
)

// User-facing texts.
const (
	PromptInitial        = "Selecione Nova Questão para carregar um enunciado..."
	PromptNoQuestions    = "Nenhuma questão encontrada."
	StatusNoQuestions    = "Nenhuma questão encontrada para esta trilha."
	StatusProcessed      = "Consulta processada."
	StatusNotFound       = "Erro: A questão selecionada não foi encontrada."
	FallbackLoadQuestion = "Erro ao carregar questão."
	FallbackLoadTrack    = "Erro ao carregar lista de questões."
	FallbackValidate     = "Erro desconhecido ao realizar validação."
)

func statusLoadingTrack(slug string) string {
	return fmt.Sprintf("Carregando trilha %q...", slug)
}

func statusTrackLoaded(slug string, n int) string {
	return fmt.Sprintf("Trilha %q carregada com %d questões.", slug, n)
}

// Footer is the row-count line shown under a result table.
func Footer(t *api.TableResult) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("Mostrando %d de %d linhas", len(t.Rows), t.TotalRows)
}

// MessageFor maps an operation error to status text: the backend's own
// error text when it sent one, else the transport-level description, else
// fallback.
func MessageFor(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
