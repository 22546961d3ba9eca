package config

import "time"

// Config holds runtime settings for the CatKeeper CLI.
//
// Fields:
//   - APIBaseURL: base URL of the cat catalog API, without a trailing slash.
//   - APIKey: key sent in the x-api-key header; empty means unauthenticated.
//   - DatabaseDSN: path of the local sqlite cache database.
//   - RequestTimeout: per-request timeout for remote calls.
//   - ProbeTimeout: TCP dial timeout of the connectivity probe.
//   - OnlineCheckInterval: how often the CLI probes API reachability.
//   - ImageFetchWorkers: concurrency bound of the breed image fan-out.
type Config struct {
	APIBaseURL          string
	APIKey              string
	DatabaseDSN         string
	RequestTimeout      time.Duration
	ProbeTimeout        time.Duration
	OnlineCheckInterval time.Duration
	ImageFetchWorkers   int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.thecatapi.com/v1"
	c.DatabaseDSN = "catkeeper.db"
	c.RequestTimeout = 15 * time.Second
	c.ProbeTimeout = 2 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.ImageFetchWorkers = 8
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
