package config

import (
	"encoding/json"
	"os"
	"time"

	"catkeeper/internal/flagx"
	"catkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify timeouts either as
// strings like "15s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	APIKey              string         `json:"api_key"`
	DatabaseDSN         string         `json:"database_dsn"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	ProbeTimeout        timex.Duration `json:"probe_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	ImageFetchWorkers   int            `json:"image_fetch_workers"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config; fields missing from the
//     file keep their earlier value.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RequestTimeout != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout)
	}
	if jc.ProbeTimeout != 0 {
		cfg.ProbeTimeout = time.Duration(jc.ProbeTimeout)
	}
	if jc.OnlineCheckInterval != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval)
	}
	if jc.ImageFetchWorkers != 0 {
		cfg.ImageFetchWorkers = jc.ImageFetchWorkers
	}
}
