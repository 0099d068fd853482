package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sqltrail.log")
	logger, closeFn, err := New(path, "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("backend call", zap.String("path", "/question"), zap.Int("status", 200))
	require.NoError(t, closeFn())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "backend call", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "/question", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}
