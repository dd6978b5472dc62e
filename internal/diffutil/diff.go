// Package diffutil renders unified diffs for formatter output.
package diffutil

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/term"
)

var (
	addColor    = color.New(color.FgGreen)
	deleteColor = color.New(color.FgRed)
	headerColor = color.New(color.Bold)
)

// Unified returns a unified diff between original and formatted content,
// labeled with path on both sides. Returns "" when the contents are equal.
func Unified(path string, original, formatted []byte) string {
	if bytes.Equal(original, formatted) {
		return ""
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(formatted)),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	return text
}

// Write writes a diff to w, colorized when w is a terminal.
func Write(w io.Writer, diff string) {
	if diff == "" {
		return
	}
	if !isTerminal(w) {
		_, _ = io.WriteString(w, diff)
		return
	}
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			_, _ = headerColor.Fprint(w, line)
		case strings.HasPrefix(line, "+"):
			_, _ = addColor.Fprint(w, line)
		case strings.HasPrefix(line, "-"):
			_, _ = deleteColor.Fprint(w, line)
		default:
			_, _ = io.WriteString(w, line)
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
