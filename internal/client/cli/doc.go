// Package cli provides the interactive IvyCraft command-line client.
//
// It wires configuration, the credential store, the session manager and the
// feature services into a REPL. Typical flow: restore the stored session,
// print notifications as they arrive and execute user commands.
//
// Key features:
//   - Signup / Login / Logout
//   - Application tracker: list, add, status, toggle tasks, remove, tips
//   - Essay drafts with AI feedback
//   - Course list and school course plans
//   - Premium insights behind the entitlement gate, and the upgrade flow
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
