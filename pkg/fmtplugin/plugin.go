package fmtplugin

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Plugin defines a formatting plugin served over the stdio protocol.
type Plugin struct {
	// Info describes the plugin for discovery.
	Info Info

	// Matching lists the file types the plugin wants routed to it.
	Matching FileMatching

	// Format transforms one file's content. It receives the file path for
	// gating and the complete content, and returns the formatted content.
	// It must be pure: same input, same output, no side effects.
	Format func(path string, content []byte) []byte
}

// Serve is the main entrypoint for plugin binaries. It handles the plugin
// protocol: in metadata mode it writes the manifest and returns, otherwise
// it answers format requests from stdin until EOF.
func Serve(p Plugin) {
	if !IsPlugin() {
		fmt.Fprintf(os.Stderr, "This is a formatting plugin. Run it through a host framework, or use the shebangfmt CLI.\n")
		os.Exit(1)
	}

	if IsMetadataMode() {
		if err := WriteManifest(os.Stdout, p); err != nil {
			fmt.Fprintf(os.Stderr, "plugin: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := p.serve(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "plugin: %v\n", err)
		os.Exit(1)
	}
}

// WriteManifest writes the metadata-mode manifest for p.
func WriteManifest(w io.Writer, p Plugin) error {
	manifest := Manifest{
		Info:         p.Info,
		FileMatching: p.Matching,
	}
	return json.NewEncoder(w).Encode(manifest)
}

// Handle answers a single format request.
func (p Plugin) Handle(req FormatRequest) FormatResponse {
	content := []byte(req.Content)

	if req.Range != nil {
		// The shebang line is always at offset zero; a range starting
		// anywhere else cannot contain it.
		if req.Range.Start != 0 {
			return FormatResponse{}
		}
		end := req.Range.End
		if end > len(content) {
			end = len(content)
		}
		if end < 0 {
			end = 0
		}
		content = content[:end]
	}

	formatted := p.Format(req.Path, content)
	if string(formatted) == string(content) {
		return FormatResponse{}
	}
	return FormatResponse{Changed: true, Content: string(formatted)}
}

// serve decodes format requests from r until EOF and writes one response
// per request to w.
func (p Plugin) serve(r io.Reader, w io.Writer) error {
	dec := json.NewDecoder(r)
	enc := json.NewEncoder(w)
	for {
		var req FormatRequest
		if err := dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("decode request: %w", err)
		}
		if err := enc.Encode(p.Handle(req)); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
	}
}
