package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// wireTable is a result table as the backend sends it. The track backend
// reports the full count as "total", the single-question backend as
// "total_rows".
type wireTable struct {
	Columns   []string `json:"columns"`
	Rows      [][]Cell `json:"rows"`
	TotalRows *int     `json:"total_rows"`
	Total     *int     `json:"total"`
}

type wireNested struct {
	Data  json.RawMessage `json:"data"`
	Error *string         `json:"error"`
}

type wireValidate struct {
	Valid    *bool           `json:"valid"`
	Message  *string         `json:"message"`
	Error    *string         `json:"error"`
	Result   json.RawMessage `json:"result_table"`
	Expected json.RawMessage `json:"expected_table"`
}

// DecodeQuestion decodes a GET /question body.
func DecodeQuestion(raw []byte) (*Question, error) {
	if err := validateBody(questionSchema, raw); err != nil {
		return nil, err
	}
	var q Question
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, &InvalidResponseError{Content: raw, Err: err}
	}
	return &q, nil
}

// DecodeQuestions decodes a GET /questions body.
func DecodeQuestions(raw []byte) ([]Question, error) {
	if err := validateBody(questionListSchema, raw); err != nil {
		return nil, err
	}
	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, &InvalidResponseError{Content: raw, Err: err}
	}
	return qs, nil
}

// DecodeOutcome decodes a POST /validate body of the given shape into an
// Outcome. Both shapes go through the same path; only result extraction
// depends on the shape.
func DecodeOutcome(shape Shape, raw []byte) (*Outcome, error) {
	if err := validateBody(validateSchemaFor(shape), raw); err != nil {
		return nil, err
	}

	var w wireValidate
	if err := unmarshalNumbers(raw, &w); err != nil {
		return nil, &InvalidResponseError{Content: raw, Err: err}
	}

	out := &Outcome{Valid: w.Valid}
	if w.Message != nil {
		out.Message = *w.Message
	}
	if w.Error != nil {
		out.Error = *w.Error
	}

	var err error
	if out.Learner, err = extractResult(shape, w.Result); err != nil {
		return nil, &InvalidResponseError{Content: raw, Err: fmt.Errorf("result_table: %w", err)}
	}
	if out.Expected, err = extractResult(shape, w.Expected); err != nil {
		return nil, &InvalidResponseError{Content: raw, Err: fmt.Errorf("expected_table: %w", err)}
	}
	return out, nil
}

// extractResult unwraps one result table. A missing or null table, or a
// nested table whose data is missing or null, yields nil.
func extractResult(shape Shape, raw json.RawMessage) (*TableResult, error) {
	if isNull(raw) {
		return nil, nil
	}
	if shape == ShapeNested {
		var n wireNested
		if err := unmarshalNumbers(raw, &n); err != nil {
			return nil, err
		}
		if isNull(n.Data) {
			return nil, nil
		}
		raw = n.Data
	}

	var t wireTable
	if err := unmarshalNumbers(raw, &t); err != nil {
		return nil, err
	}
	return t.normalize()
}

func (t wireTable) normalize() (*TableResult, error) {
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
	}

	total := len(t.Rows)
	switch {
	case t.TotalRows != nil:
		total = *t.TotalRows
	case t.Total != nil:
		total = *t.Total
	}
	if total < len(t.Rows) {
		total = len(t.Rows)
	}

	columns := t.Columns
	if columns == nil {
		columns = []string{}
	}
	rows := t.Rows
	if rows == nil {
		rows = [][]Cell{}
	}
	return &TableResult{Columns: columns, Rows: rows, TotalRows: total}, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// unmarshalNumbers decodes keeping numeric cells as json.Number so they
// render exactly as the backend sent them.
func unmarshalNumbers(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}
