package cli

import (
	"bufio"
	"context"
	"net/http"
	"os"
	"time"

	"catkeeper/internal/config"
	"catkeeper/internal/logging"
	"catkeeper/internal/netx"
	"catkeeper/internal/remote/catapi"
	"catkeeper/internal/services"
	"catkeeper/internal/store"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	service *services.BreedService
	store   *store.Store
	checker netx.Checker
	log     logging.Logger
	Mode    Mode
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {

	apiKey := c.APIKey
	if apiKey == "" {
		key, err := GetAPIKey(os.Stdout)
		if err != nil {
			return nil, err
		}
		apiKey = string(key)
	}

	st, err := store.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	src := catapi.New(c.APIBaseURL, apiKey, log,
		catapi.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout}))

	checker, err := netx.NewDialChecker(c.APIBaseURL, c.ProbeTimeout)
	if err != nil {
		return nil, err
	}

	svc := services.NewBreedService(st, src, checker, log,
		services.WithImageFetchConcurrency(c.ImageFetchWorkers))

	return &App{
		config:  c,
		service: svc,
		store:   st,
		checker: checker,
		log:     log,
	}, nil
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) getStatus() string {
	if a.Mode == "" {
		return ""
	}
	return "(" + string(a.Mode) + ")"
}

// Run performs the startup refresh, starts the connectivity watcher and
// blocks in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	res := a.service.Refresh(ctx)
	switch res.Status {
	case services.InitSuccess:
		a.setMode(ctx, ModeOnline)
		printlnFn("Catalog refreshed from the remote API.")
	case services.InitOfflineDataAvailable:
		a.setMode(ctx, ModeOffline)
		printlnFn("Offline: showing the cached catalog.")
	case services.InitError:
		a.setMode(ctx, ModeOffline)
		printlnFn("Startup failed:", res.Message)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	printlnFn("Welcome to CatKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// StartOnlineStatusWatcher probes API reachability on the given interval and
// flips the displayed mode when it changes.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, a.config.ProbeTimeout)
			connected := a.checker.IsConnected(probeCtx)
			cancel()

			if connected {
				a.setMode(ctx, ModeOnline)
			} else {
				a.setMode(ctx, ModeOffline)
			}

		case <-ctx.Done():
			return
		}
	}
}
