// Package cli provides the interactive marketplace command-line client.
//
// It wires configuration, the local store, the application services, and an
// interactive REPL. Typical flow: open the database, seed demo data on first
// run, restore any persisted session, and execute user commands.
//
// Key features:
//   - Register / Login / Logout (local demo auth)
//   - Browse and search the catalog, filter by category
//   - Add / Edit / Delete own listings
//   - Like products and review the liked list
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
