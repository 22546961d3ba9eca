// Package config loads runtime configuration for the CatKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the cat catalog API
//	-k string   API key sent as x-api-key
//	-d string   path of the local sqlite cache database
//	-t int      remote request timeout (seconds)
//	-p int      connectivity probe timeout (seconds)
//	-i int      online status check interval (seconds)
//	-w int      parallel image fetch workers
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.thecatapi.com/v1",
//	  "api_key": "live_...",
//	  "database_dsn": "catkeeper.db",
//	  "request_timeout": "15s",
//	  "probe_timeout": "2s",
//	  "online_check_interval": "3s",
//	  "image_fetch_workers": 8
//	}
//
// Note: This package does not read environment variables; use the JSON file
// or flags to configure values. A missing API key is prompted for
// interactively by the CLI.
package config
