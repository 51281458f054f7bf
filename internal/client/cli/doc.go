// Package cli implements the interactive hospital-management client: a REPL
// that authenticates against the backend, tracks the role-specific dashboard
// the user would land on, and drives the API operations available to that
// role.
package cli
