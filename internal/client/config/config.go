package config

import "time"

// Config holds runtime settings for the RentIQ CLI.
//
// Fields:
//   - ServerEndpointURL: base URL of the REST API, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: path of the local sqlite file holding session state.
type Config struct {
	ServerEndpointURL string
	RequestTimeout    time.Duration
	DatabasePath      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointURL = "http://localhost:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "rentiq.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
