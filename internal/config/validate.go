package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/deuexpo/keepa/internal/api"
	"github.com/deuexpo/keepa/internal/series"
)

// Validate checks that all required fields are set and values are valid.
func (c *TrackerConfig) Validate() error {
	if c.API.AccessKey == "" {
		return errors.New("api.access_key is required")
	}
	if _, err := api.ParseDomain(c.API.Domain); err != nil {
		return fmt.Errorf("api.domain: %w", err)
	}
	if c.API.MaxAttempts < 1 {
		return errors.New("api.max_attempts must be >= 1")
	}

	if len(c.Poller.ASINs) == 0 {
		return errors.New("poller.asins is required")
	}
	if len(c.Poller.ASINs) > 100 {
		return fmt.Errorf("poller.asins allows at most 100 entries, got %d", len(c.Poller.ASINs))
	}
	if c.Poller.Interval < time.Minute {
		return fmt.Errorf("poller.interval must be at least 1m, got %s", c.Poller.Interval)
	}

	for _, name := range c.Export.Fields {
		if _, err := api.ParseField(name); err != nil {
			return fmt.Errorf("export.fields: %w", err)
		}
	}
	if _, err := series.ParseReducer(c.Export.Reducer); err != nil {
		return fmt.Errorf("export.reducer: %w", err)
	}

	if c.Metrics.Port < 1 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics.port must be between 1 and 65535, got %d", c.Metrics.Port)
	}

	return nil
}
