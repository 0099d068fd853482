// Package config loads sqltrail settings from defaults, a YAML file,
// SQLTRAIL_* environment variables and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

// Defaults.
const (
	DefaultAPIURL      = "http://127.0.0.1:5000"
	DefaultTimeout     = 30 * time.Second
	DefaultLogLevel    = "info"
	DefaultDiagramsDir = "diagrams"

	appName   = "sqltrail"
	envPrefix = "SQLTRAIL_"
)

// Config holds the resolved settings.
type Config struct {
	APIURL      string        `koanf:"api_url"`
	Timeout     time.Duration `koanf:"timeout"`
	LogFile     string        `koanf:"log_file"`
	LogLevel    string        `koanf:"log_level"`
	DiagramsDir string        `koanf:"diagrams_dir"`

	// File is the config file that was read, empty when none was found.
	File string `koanf:"-"`
}

// RegisterFlags adds the global flags that override config keys. Flag names
// are the keys in kebab-case.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default ./sqltrail.yaml or $XDG_CONFIG_HOME/sqltrail/config.yaml)")
	fs.String("api-url", DefaultAPIURL, "validation backend base URL")
	fs.Duration("timeout", DefaultTimeout, "per-request timeout")
	fs.String("log-file", "", "log file (default $XDG_STATE_HOME/sqltrail/sqltrail.log)")
	fs.String("log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	fs.String("diagrams-dir", DefaultDiagramsDir, "directory holding reference diagrams")
}

// DefaultLogFile returns the log path under the XDG state directory.
func DefaultLogFile() string {
	return filepath.Join(xdgDir("XDG_STATE_HOME", ".local", "state"), appName, appName+".log")
}

func defaultUserConfigFile() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), appName, "config.yaml")
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}
