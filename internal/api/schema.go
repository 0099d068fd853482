package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schema is one response contract, compiled on first use.
type schema struct {
	name    string
	compile func() (*jsonschema.Schema, error)
}

func newSchema(name string, def map[string]any) *schema {
	return &schema{
		name:    name,
		compile: sync.OnceValues(func() (*jsonschema.Schema, error) { return compileDefinition(name, def) }),
	}
}

var cellSchema = map[string]any{
	"type": []any{"string", "number", "boolean", "null"},
}

var tableSchema = map[string]any{
	"type":     "object",
	"required": []any{"columns", "rows"},
	"properties": map[string]any{
		"columns": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"rows": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "array", "items": cellSchema},
		},
		"total_rows": map[string]any{"type": "integer", "minimum": 0},
		"total":      map[string]any{"type": "integer", "minimum": 0},
	},
}

var nestedTableSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"data": map[string]any{
			"oneOf": []any{map[string]any{"type": "null"}, tableSchema},
		},
		"error": map[string]any{"type": []any{"string", "null"}},
	},
}

func questionDefinition(requireSlug bool) map[string]any {
	required := []any{"id", "enunciado"}
	if requireSlug {
		required = append(required, "slug")
	}
	return map[string]any{
		"type":     "object",
		"required": required,
		"properties": map[string]any{
			"id":        map[string]any{"type": "integer"},
			"slug":      map[string]any{"type": "string"},
			"enunciado": map[string]any{"type": "string"},
		},
	}
}

func validateDefinition(table map[string]any) map[string]any {
	optional := func(def map[string]any) map[string]any {
		return map[string]any{"oneOf": []any{map[string]any{"type": "null"}, def}}
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"valid":          map[string]any{"type": []any{"boolean", "null"}},
			"message":        map[string]any{"type": []any{"string", "null"}},
			"error":          map[string]any{"type": []any{"string", "null"}},
			"result_table":   optional(table),
			"expected_table": optional(table),
		},
	}
}

var (
	questionSchema = newSchema("question", questionDefinition(false))

	questionListSchema = newSchema("question-list", map[string]any{
		"type":  "array",
		"items": questionDefinition(false),
	})

	validateFlatSchema   = newSchema("validate-flat", validateDefinition(tableSchema))
	validateNestedSchema = newSchema("validate-nested", validateDefinition(nestedTableSchema))
)

func validateSchemaFor(shape Shape) *schema {
	if shape == ShapeNested {
		return validateNestedSchema
	}
	return validateFlatSchema
}

// validateBody checks raw against s. Any failure, including a body that
// is not JSON at all, is an *InvalidResponseError.
func validateBody(s *schema, raw []byte) error {
	invalid := func(err error) error {
		return &InvalidResponseError{Content: raw, Err: err}
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return invalid(fmt.Errorf("invalid JSON: %w", err))
	}
	compiled, err := s.compile()
	if err != nil {
		return invalid(err)
	}
	if err := compiled.Validate(doc); err != nil {
		return invalid(fmt.Errorf("%s: %w", s.name, err))
	}
	return nil
}

// compileDefinition round-trips def through JSON, since the compiler only
// accepts decoded JSON values, and compiles it under a sqltrail URL.
func compileDefinition(name string, def map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}

	url := "schema://sqltrail/" + name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	return c.Compile(url)
}
