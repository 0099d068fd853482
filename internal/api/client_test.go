package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	return c
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no scheme", "127.0.0.1:5000"},
		{"ftp", "ftp://example.com"},
		{"no host", "http://"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.url)
			assert.Error(t, err)
		})
	}
}

func TestNewClient_Default(t *testing.T) {
	c, err := NewClient("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestFetchQuestion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/question", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = io.WriteString(w, `{"id": 7, "enunciado": "Select all employees"}`)
	})

	q, err := c.FetchQuestion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, q.ID)
	assert.Equal(t, "Select all employees", q.Prompt)
}

func TestFetchQuestions_SendsSlug(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/questions", r.URL.Path)
		assert.Equal(t, "e-commerce", r.URL.Query().Get("slug"))
		_, _ = io.WriteString(w, `[{"id": 1, "slug": "e-commerce", "enunciado": "Liste os pedidos"}]`)
	})

	qs, err := c.FetchQuestions(context.Background(), "e-commerce")
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "Liste os pedidos", qs[0].Prompt)
}

func TestFetchQuestions_EmptySlug(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1")
	require.NoError(t, err)
	_, err = c.FetchQuestions(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptySlug)
}

func TestValidate_PayloadAndShape(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"message": "Parabéns!", "result_table": {"data": {"columns": ["id"], "rows": [[1], [2]], "total_rows": 5}}}`)
	})

	id := 3
	out, err := c.Validate(context.Background(), ValidateRequest{
		StudentSQL: "SELECT id FROM alunos",
		QuestionID: &id,
		Slug:       "universidade",
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM alunos", got["student_sql"])
	assert.Equal(t, float64(3), got["question_id"])
	assert.Equal(t, "universidade", got["slug"])
	assert.Equal(t, "Parabéns!", out.Message)
	require.NotNil(t, out.Learner)
	assert.Equal(t, 5, out.Learner.TotalRows)
}

func TestValidate_SingleModeOmitsSlugAndSendsNullID(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"error": "Questão inválida ou não carregada."}`)
	})

	out, err := c.Validate(context.Background(), ValidateRequest{StudentSQL: "select 1"})
	require.NoError(t, err)
	_, hasSlug := got["slug"]
	assert.False(t, hasSlug)
	v, hasID := got["question_id"]
	assert.True(t, hasID)
	assert.Nil(t, v)
	assert.Equal(t, "Questão inválida ou não carregada.", out.Error)
}

func TestBackendErrorCarriesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error": "syntax error"}`)
	})

	_, err := c.Validate(context.Background(), ValidateRequest{StudentSQL: "selec"})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "syntax error", apiErr.Message)
	assert.Equal(t, "syntax error", err.Error())
	assert.NotEmpty(t, apiErr.RequestID)
}

func TestBackendErrorWithoutBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "Internal Server Error")
	})

	_, err := c.FetchQuestion(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "request failed with status code 500", err.Error())
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewClient(url)
	require.NoError(t, err)

	_, err = c.FetchQuestion(context.Background())
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "GET /question", te.Op)
}

func TestTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(block) })

	c, err := NewClient(srv.URL, WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = c.FetchQuestion(context.Background())
	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id": 1, "enunciado": "x"}`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchQuestion(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
