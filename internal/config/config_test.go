package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup location at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, key := range []string{"API_URL", "TIMEOUT", "LOG_FILE", "LOG_LEVEL", "DIAGRAMS_DIR"} {
		t.Setenv(envPrefix+key, "")
		require.NoError(t, os.Unsetenv(envPrefix+key))
	}
	return dir
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultDiagramsDir, cfg.DiagramsDir)
	assert.Equal(t, filepath.Join(dir, "state", "sqltrail", "sqltrail.log"), cfg.LogFile)
	assert.Empty(t, cfg.File)
}

func TestLoad_WorkingDirectoryFile(t *testing.T) {
	isolate(t)
	writeFile(t, "sqltrail.yaml", "api_url: http://backend:8080\ntimeout: 5s\n")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://backend:8080", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "sqltrail.yaml", cfg.File)
}

func TestLoad_UserConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "sqltrail", "config.yaml")
	writeFile(t, path, "diagrams_dir: /srv/diagramas\n")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "/srv/diagramas", cfg.DiagramsDir)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)
	_, err := Load("nope.yaml", nil)
	assert.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)
	writeFile(t, "custom.yaml", "api_url: http://file:1\nlog_level: warn\ntimeout: 2s\n")
	t.Setenv("SQLTRAIL_API_URL", "http://env:2")
	t.Setenv("SQLTRAIL_TIMEOUT", "3s")

	cfg, err := Load("custom.yaml", newFlags(t, "--api-url", "http://flag:3"))
	require.NoError(t, err)
	assert.Equal(t, "http://flag:3", cfg.APIURL, "flag beats env")
	assert.Equal(t, 3*time.Second, cfg.Timeout, "env beats file")
	assert.Equal(t, "warn", cfg.LogLevel, "file beats default")
}

func TestLoad_UnsetFlagsDoNotOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SQLTRAIL_LOG_LEVEL", "debug")

	cfg, err := Load("", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"relative url", []string{"--api-url", "localhost:5000"}},
		{"ftp url", []string{"--api-url", "ftp://host"}},
		{"zero timeout", []string{"--timeout", "0s"}},
		{"bad level", []string{"--log-level", "verbose"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := Load("", newFlags(t, tt.args...))
			assert.Error(t, err)
		})
	}
}
