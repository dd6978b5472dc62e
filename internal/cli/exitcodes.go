// Package cli provides shared output helpers and exit codes for the
// shebangfmt CLI.
package cli

// Standard exit codes for the shebangfmt CLI.
//
// These follow the gofmt convention:
//   - 0: Success
//   - 1: Check failure (files need formatting under -check)
//   - 2: Error (I/O failure, bad usage, etc.)
const (
	// ExitOK indicates successful execution with no issues.
	ExitOK = 0

	// ExitNeedsFormat indicates -check mode found files whose shebang
	// line needs formatting.
	ExitNeedsFormat = 1

	// ExitError indicates a fatal error occurred (I/O error, bad usage, etc.).
	ExitError = 2
)
