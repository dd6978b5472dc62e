// Package shebang normalizes the shebang line at the top of script files.
package shebang

import (
	"bytes"
	"os"
)

// scanLimit bounds how far into the file the first line is searched for a
// line terminator. A shebang line longer than this is left untouched.
const scanLimit = 1024

// marker is the shebang magic at the start of a script.
var marker = []byte("#!")

// Result represents the outcome of formatting a file.
type Result struct {
	// Path is the file path (empty for stdin).
	Path string
	// Original is the original content.
	Original []byte
	// Formatted is the formatted content.
	Formatted []byte
	// Err is any error that occurred while reading the file.
	Err error
}

// Changed returns true if the file content was changed by formatting.
func (r *Result) Changed() bool {
	if r.Err != nil {
		return false
	}
	return !bytes.Equal(r.Original, r.Formatted)
}

// Format normalizes the shebang line of src and returns the result.
//
// If src does not begin with "#!", it is returned unchanged. Otherwise the
// first line is rewritten so that the interpreter path immediately follows
// the "#!" marker and every run of spaces and tabs between tokens becomes a
// single space, with trailing whitespace dropped. The line terminator and
// every byte after it are preserved verbatim.
//
// The transform is total and idempotent. When src is already canonical,
// Format returns src itself.
func Format(src []byte) []byte {
	if !bytes.HasPrefix(src, marker) {
		return src
	}

	end := lineEnd(src)
	if end < 0 {
		// No terminator within the scan window; leave the oversized
		// first line alone rather than normalize half of it.
		return src
	}

	line := src[len(marker):end]
	normalized := normalizeLine(line)
	if bytes.Equal(normalized, line) {
		return src
	}

	out := make([]byte, 0, len(marker)+len(normalized)+len(src)-end)
	out = append(out, marker...)
	out = append(out, normalized...)
	out = append(out, src[end:]...)
	return out
}

// FormatFile reads a file, formats it, and returns the result.
// Read errors are reported through Result.Err.
func FormatFile(path string) *Result {
	result := &Result{Path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Original = src
	result.Formatted = Format(src)
	return result
}

// lineEnd returns the offset of the first line terminator in src, or
// len(src) when src ends without one inside the scan window. It returns -1
// when the first line extends past the window.
func lineEnd(src []byte) int {
	window := src
	if len(window) > scanLimit {
		window = window[:scanLimit]
	}
	if i := bytes.IndexAny(window, "\r\n"); i >= 0 {
		return i
	}
	if len(src) > scanLimit {
		return -1
	}
	return len(src)
}

// normalizeLine rewrites the portion of the shebang line after "#!":
// the interpreter and argument tokens joined by single spaces, with no
// leading or trailing whitespace. The input contains no line terminators.
func normalizeLine(line []byte) []byte {
	var out []byte
	i := skipBlank(line, 0)
	for i < len(line) {
		start := i
		for i < len(line) && line[i] != ' ' && line[i] != '\t' {
			i++
		}
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, line[start:i]...)
		i = skipBlank(line, i)
	}
	return out
}

func skipBlank(line []byte, i int) int {
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}
