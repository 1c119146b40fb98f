// Package client contains client-side building blocks for the bank API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Login, Register, GetUser and ListAccounts.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that stamps every
//     request with an X-Request-ID, bounds it with a timeout and maps
//     responses onto the error taxonomy below.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) opening the
//     SQLite file that keeps the logged-in identity across restarts.
//
// # Error Handling
//
//   - ErrUnavailable: the server could not be reached (transport failure).
//   - *RemoteError: the server answered with a non-2xx status; its body text
//     is kept verbatim. A 404 also matches ErrNotFound via errors.Is.
//
// All operations accept context.Context and honor cancellation/timeouts.
package client
