package diffutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestUnified(t *testing.T) {
	original := []byte("#!  /bin/sh\necho hi\n")
	formatted := []byte("#!/bin/sh\necho hi\n")

	diff := Unified("script.sh", original, formatted)

	if !strings.Contains(diff, "--- script.sh") {
		t.Errorf("diff missing from-file header:\n%s", diff)
	}
	if !strings.Contains(diff, "+++ script.sh") {
		t.Errorf("diff missing to-file header:\n%s", diff)
	}
	if !strings.Contains(diff, "-#!  /bin/sh\n") {
		t.Errorf("diff missing removed line:\n%s", diff)
	}
	if !strings.Contains(diff, "+#!/bin/sh\n") {
		t.Errorf("diff missing added line:\n%s", diff)
	}
	if !strings.Contains(diff, " echo hi\n") {
		t.Errorf("diff missing context line:\n%s", diff)
	}
}

func TestUnified_Equal(t *testing.T) {
	content := []byte("#!/bin/sh\n")
	if diff := Unified("x.sh", content, content); diff != "" {
		t.Errorf("Unified() = %q for equal content, want empty", diff)
	}
}

func TestWrite_NonTerminal(t *testing.T) {
	diff := Unified("x.sh", []byte("#! /bin/sh\n"), []byte("#!/bin/sh\n"))

	var buf bytes.Buffer
	Write(&buf, diff)

	// A plain writer gets the diff verbatim, without escape sequences.
	if got := buf.String(); got != diff {
		t.Errorf("Write() = %q, want %q", got, diff)
	}
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, "")
	if buf.Len() != 0 {
		t.Errorf("Write() produced output %q for empty diff", buf.String())
	}
}
