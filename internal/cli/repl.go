package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Favourites(ctx context.Context) error
	Favourite(ctx context.Context, breedID string) error
	Unfavourite(ctx context.Context, breedID string) error
	Show(ctx context.Context, breedID string) error
	Stats(ctx context.Context) error
	Sync(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the CatKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//   - help              — show available commands
//   - list | l          — list the cached breeds
//   - favs              — list favourited breeds
//   - fav <breed-id>    — favourite a breed (queued while offline)
//   - unfav <breed-id>  — remove a favourite (queued while offline)
//   - show <breed-id>   — show one breed with details
//   - stats             — life-span statistics over the cached catalog
//   - sync              — run a full refresh against the remote catalog
//   - exit | quit       — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ck %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, favs, fav <breed-id>, unfav <breed-id>, show <breed-id>, stats, sync, exit")

		case "l", "list":
			_ = a.List(ctx)

		case "favs":
			_ = a.Favourites(ctx)

		case "fav":
			if len(args) == 0 {
				printlnFn("Usage: fav <breed-id>")
				continue
			}
			_ = a.Favourite(ctx, args[0])

		case "unfav":
			if len(args) == 0 {
				printlnFn("Usage: unfav <breed-id>")
				continue
			}
			_ = a.Unfavourite(ctx, args[0])

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <breed-id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "stats":
			_ = a.Stats(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
