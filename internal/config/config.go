package config

import "time"

// TrackerConfig is the root configuration for a tracker instance.
type TrackerConfig struct {
	API     APIConfig     `yaml:"api"`
	Poller  PollerConfig  `yaml:"poller"`
	Export  ExportConfig  `yaml:"export"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// APIConfig holds Keepa API settings.
type APIConfig struct {
	BaseURL      string        `yaml:"base_url"`
	AccessKey    string        `yaml:"access_key"`
	Domain       string        `yaml:"domain"` // marketplace TLD suffix, e.g. "com", "de"
	Timeout      time.Duration `yaml:"timeout"`
	MaxAttempts  int           `yaml:"max_attempts"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

// PollerConfig holds product poll settings.
type PollerConfig struct {
	Interval time.Duration `yaml:"interval"`
	ASINs    []string      `yaml:"asins"`
	Rating   bool          `yaml:"rating"`
}

// ExportConfig holds CSV export settings.
type ExportConfig struct {
	Dir     string   `yaml:"dir"`
	Fields  []string `yaml:"fields"`  // history field names, e.g. AMAZON, NEW, SALES
	Reducer string   `yaml:"reducer"` // min, max or mean
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}
