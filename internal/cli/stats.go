package cli

import (
	"context"
	"fmt"

	"catkeeper/internal/services"
)

func (a *App) Stats(ctx context.Context) error {
	avg, ok, err := a.service.AverageMinLifeSpan(ctx)
	if err != nil {
		a.log.Error(ctx, "computing life-span statistics", "error", err)
		return err
	}
	if !ok {
		printlnFn("No life-span data in the cached catalog.")
		return nil
	}
	printlnFn(fmt.Sprintf("Average minimum life span: %.1f years", avg))
	return nil
}

func (a *App) Sync(ctx context.Context) error {
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
		printlnFn("Sync failed:", res.Message)
	}
	return nil
}
