// Package cli provides the interactive SchoolGuard admin console.
//
// It wires configuration, the local session store, the backend API client,
// and an interactive REPL gated on the authentication state. Typical flow:
// restore a remembered session, prompt for credentials if none, and execute
// admin commands against the backend.
//
// Key features:
//   - Login / AdminLogin / Signup / Logout with local form validation and
//     a failed-attempt lockout
//   - Dashboard snapshot, live watch (background polling), backend stats
//   - Volunteer roster: list, add, check-in/out, bulk approve
//   - Incidents and notifications
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
