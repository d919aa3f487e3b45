// Package cli provides the interactive notes command-line client.
//
// It wires configuration, the REST client, the note store and an interactive
// REPL. A background watcher pings the server and switches the App between
// online and offline mode.
//
// Key features:
//   - List notes newest first, optionally filtered by category
//   - Create and edit notes through a staged draft ('new', 'edit', 'save')
//   - Delete notes and reload the collection from the server
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
