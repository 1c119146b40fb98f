// Package cli provides the interactive bank client.
//
// It wires configuration, the local session database, the HTTP API client
// and the session services into a small REPL. The prompt header shows who is
// logged in; the home page shows one of three screens depending on the
// session and on whether the user has an account:
//
//   - a welcome page when nobody is logged in,
//   - an onboarding page with an "open account" call to action,
//   - the account list.
//
// Both the header and the home page follow session changes through the
// session bus, so login and logout refresh them without being told.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
