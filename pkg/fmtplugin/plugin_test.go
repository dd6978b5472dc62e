package fmtplugin

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hashbang/shebangfmt/internal/shebang"
)

func testPlugin() Plugin {
	return Plugin{
		Info: Info{
			Name:      "shebangfmt",
			Version:   "0.1.0",
			ConfigKey: "shebang",
		},
		Matching: FileMatching{
			FileExtensions: []string{"sh", "py"},
			FileNames:      []string{"Makefile"},
		},
		Format: func(path string, content []byte) []byte {
			return shebang.Format(content)
		},
	}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		req  FormatRequest
		want FormatResponse
	}{
		{
			name: "needs formatting",
			req:  FormatRequest{Path: "x.sh", Content: "#!  /bin/sh\necho hi\n"},
			want: FormatResponse{Changed: true, Content: "#!/bin/sh\necho hi\n"},
		},
		{
			name: "already formatted",
			req:  FormatRequest{Path: "x.sh", Content: "#!/bin/sh\necho hi\n"},
			want: FormatResponse{},
		},
		{
			name: "no shebang",
			req:  FormatRequest{Path: "x.sh", Content: "echo hi\n"},
			want: FormatResponse{},
		},
		{
			name: "range from start",
			req: FormatRequest{
				Path:    "x.sh",
				Content: "#! /bin/sh\necho hi\n",
				Range:   &Range{Start: 0, End: 11},
			},
			want: FormatResponse{Changed: true, Content: "#!/bin/sh\n"},
		},
		{
			name: "range not at start is ignored",
			req: FormatRequest{
				Path:    "x.sh",
				Content: "#! /bin/sh\necho hi\n",
				Range:   &Range{Start: 5, End: 11},
			},
			want: FormatResponse{},
		},
		{
			name: "range end past content is clamped",
			req: FormatRequest{
				Path:    "x.sh",
				Content: "#! /bin/sh\n",
				Range:   &Range{Start: 0, End: 9999},
			},
			want: FormatResponse{Changed: true, Content: "#!/bin/sh\n"},
		},
	}

	p := testPlugin()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Handle(tc.req)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Handle() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestServe_Stream(t *testing.T) {
	var in bytes.Buffer
	enc := json.NewEncoder(&in)
	requests := []FormatRequest{
		{Path: "a.sh", Content: "#!  /bin/sh\n"},
		{Path: "b.py", Content: "#!/usr/bin/env python3\n"},
		{Path: "c.pl", Content: "#! /usr/bin/perl  -w\n"},
	}
	for _, req := range requests {
		if err := enc.Encode(req); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	if err := testPlugin().serve(&in, &out); err != nil {
		t.Fatalf("serve() error: %v", err)
	}

	dec := json.NewDecoder(&out)
	var responses []FormatResponse
	for dec.More() {
		var resp FormatResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatal(err)
		}
		responses = append(responses, resp)
	}

	want := []FormatResponse{
		{Changed: true, Content: "#!/bin/sh\n"},
		{},
		{Changed: true, Content: "#!/usr/bin/perl -w\n"},
	}
	if diff := cmp.Diff(want, responses); diff != "" {
		t.Errorf("serve() responses mismatch (-want +got):\n%s", diff)
	}
}

func TestServe_BadInput(t *testing.T) {
	var out bytes.Buffer
	err := testPlugin().serve(strings.NewReader("{not json"), &out)
	if err == nil {
		t.Fatal("serve() expected error for malformed input")
	}
}

func TestWriteManifest(t *testing.T) {
	var out bytes.Buffer
	if err := WriteManifest(&out, testPlugin()); err != nil {
		t.Fatalf("WriteManifest() error: %v", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(out.Bytes(), &manifest); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if manifest.Info.Name != "shebangfmt" {
		t.Errorf("manifest name = %q, want %q", manifest.Info.Name, "shebangfmt")
	}
	if manifest.Info.ConfigKey != "shebang" {
		t.Errorf("manifest config key = %q, want %q", manifest.Info.ConfigKey, "shebang")
	}
	if diff := cmp.Diff(testPlugin().Matching, manifest.FileMatching); diff != "" {
		t.Errorf("manifest file matching mismatch (-want +got):\n%s", diff)
	}
}
