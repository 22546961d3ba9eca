// Package cli provides the interactive CatKeeper command-line client.
//
// It wires configuration, the local sqlite cache, the remote catalog client,
// and an interactive REPL that works both online and offline. Typical flow:
// prompt for an API key when none is configured, run an initial refresh,
// start a background connectivity watcher, and execute user commands.
//
// Key features:
//   - List breeds and favourites from the local cache
//   - Favourite / unfavourite a breed, queued while offline
//   - Show a single breed with its details
//   - Life-span statistics over the cached catalog
//   - Sync (full refresh) against the remote catalog
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
