package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the resolved values.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.APIURL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("api_url: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("api_url %q: scheme must be http or https", c.APIURL))
	case u.Host == "":
		errs = append(errs, fmt.Errorf("api_url %q: missing host", c.APIURL))
	}

	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level %q: must be one of %v", c.LogLevel, logLevels))
	}
	return errors.Join(errs...)
}
