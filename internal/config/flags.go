package config

import (
	"flag"
	"os"
	"time"

	"catkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the cat catalog API (default from Config)
//	-k string   API key
//	-d string   sqlite database path
//	-t int      remote request timeout in seconds (default from Config)
//	-p int      connectivity probe timeout in seconds (default from Config)
//	-i int      online check interval in seconds (default from Config)
//	-w int      parallel image fetch workers (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-d", "-t", "-p", "-i", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the cat catalog API")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key sent as x-api-key")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local sqlite cache database")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "remote request timeout (in seconds)")
	probeTimeout := fs.Int("p", int(cfg.ProbeTimeout.Seconds()), "connectivity probe timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.IntVar(&cfg.ImageFetchWorkers, "w", cfg.ImageFetchWorkers, "parallel image fetch workers")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.ProbeTimeout = time.Duration(*probeTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
