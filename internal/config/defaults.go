package config

import (
	"time"

	"github.com/deuexpo/keepa/internal/api"
)

// Default values for optional configuration fields.
const (
	DefaultDomain       = "com"
	DefaultAPITimeout   = 30 * time.Second
	DefaultMaxAttempts  = 3
	DefaultRetryBackoff = 30 * time.Second
	DefaultPollInterval = 1 * time.Hour
	DefaultExportDir    = "data"
	DefaultReducer      = "min"
	DefaultMetricsPort  = 9090
	DefaultMetricsPath  = "/metrics"
)

// DefaultFields are the price histories exported when none are configured.
var DefaultFields = []string{"AMAZON", "NEW", "SALES"}

func (c *TrackerConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = api.DefaultBaseURL
	}
	if c.API.Domain == "" {
		c.API.Domain = DefaultDomain
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxAttempts == 0 {
		c.API.MaxAttempts = DefaultMaxAttempts
	}
	if c.API.RetryBackoff == 0 {
		c.API.RetryBackoff = DefaultRetryBackoff
	}

	// Poller defaults
	if c.Poller.Interval == 0 {
		c.Poller.Interval = DefaultPollInterval
	}

	// Export defaults
	if c.Export.Dir == "" {
		c.Export.Dir = DefaultExportDir
	}
	if len(c.Export.Fields) == 0 {
		c.Export.Fields = append([]string(nil), DefaultFields...)
	}
	if c.Export.Reducer == "" {
		c.Export.Reducer = DefaultReducer
	}

	// Metrics defaults
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}
