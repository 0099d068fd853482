package api

// Question is a single exercise prompt served by the backend.
type Question struct {
	ID     int    `json:"id"`
	Slug   string `json:"slug,omitempty"`
	Prompt string `json:"enunciado"`
}

// Cell is one value of a result row. After decoding it holds a string,
// json.Number, bool or nil.
type Cell = any

// TableResult is a tabular query result. Rows may be a truncated preview of
// a larger server-side result; TotalRows is the full count.
type TableResult struct {
	Columns   []string
	Rows      [][]Cell
	TotalRows int
}

// Empty reports whether there is nothing to display.
func (t *TableResult) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Shape selects how /validate nests its result tables on the wire.
type Shape int

const (
	// ShapeFlat carries result_table / expected_table as the table itself.
	ShapeFlat Shape = iota
	// ShapeNested wraps each table as {data: table|null, error: string}.
	ShapeNested
)

func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeNested:
		return "nested"
	default:
		return "unknown"
	}
}

// ValidateRequest is the POST /validate payload.
type ValidateRequest struct {
	StudentSQL string `json:"student_sql"`
	QuestionID *int   `json:"question_id"`
	Slug       string `json:"slug,omitempty"`
}

// Shape returns the response shape the backend uses for this request.
// Track requests (with a slug) get nested results.
func (r ValidateRequest) Shape() Shape {
	if r.Slug != "" {
		return ShapeNested
	}
	return ShapeFlat
}

// Outcome is a decoded /validate response, independent of wire shape.
type Outcome struct {
	// Valid is the backend's verdict, nil when the backend omitted it.
	Valid    *bool
	Message  string
	Error    string
	Learner  *TableResult
	Expected *TableResult
}
