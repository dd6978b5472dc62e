package cli

import (
	"fmt"
	"io"
)

// The helpers below drop write errors on purpose: everything shebangfmt
// prints goes to the process's stdout or stderr, and a failed write to
// either has no recovery path worth plumbing through every caller.

// Writef writes formatted output to the writer.
//
// Example:
//
//	cli.Writef(stdout, "==> %s <==\n", result.Path)
func Writef(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// Writeln writes its arguments followed by a newline, as in fmt.Fprintln.
//
// Example:
//
//	cli.Writeln(stdout, result.Path) // -l listing
//	cli.Writeln(stderr, "shebangfmt:", err)
func Writeln(w io.Writer, args ...any) {
	_, _ = fmt.Fprintln(w, args...)
}

// Write writes a string to the writer. Used for pre-rendered text such as
// unified diffs, where no formatting or trailing newline should be added.
func Write(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}

// WriteBytes writes raw bytes to the writer. Used to emit formatted file
// content to stdout exactly as it would be written to disk.
func WriteBytes(w io.Writer, b []byte) {
	_, _ = w.Write(b)
}
