package api

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// NullMarker is how a null cell is displayed, keeping it distinct from an
// empty string.
const NullMarker = "NULL"

// FormatCell renders a cell value for display.
func FormatCell(c Cell) string {
	switch v := c.(type) {
	case nil:
		return NullMarker
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// IsNull reports whether c is a null cell.
func IsNull(c Cell) bool {
	return c == nil
}
