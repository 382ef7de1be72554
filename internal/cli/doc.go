// Package cli provides the interactive userseed form.
//
// It wires configuration, the in-memory user list, the password generator
// and the exporters behind a small read–eval–print loop. Typical flow: set
// the organization, add accounts one by one (passwords are generated unless
// typed in), review the list, then export it for Bitwarden or for the
// identity provider.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// stdin is closed. See runREPL for the command set.
package cli
