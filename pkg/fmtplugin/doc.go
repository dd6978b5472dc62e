// Package fmtplugin implements the plugin side of the shebangfmt formatting
// plugin contract.
//
// A host formatting framework launches the plugin binary and talks to it
// over stdio. Two modes exist, selected by environment variables:
//
//   - Metadata mode: the plugin writes a JSON manifest (plugin identity plus
//     the file extensions and filenames it wants to receive) to stdout and
//     exits. Hosts use this for discovery and file routing.
//   - Format mode: the plugin reads a stream of JSON format requests from
//     stdin, one per file, and answers each with a JSON response saying
//     whether the content changed and, if so, what it changed to.
//
// The plugin performs no I/O of its own: file paths travel with the request
// for file-type gating only, and reading or writing files is the host's
// responsibility.
//
// # Quick Start
//
//	package main
//
//	import "github.com/hashbang/shebangfmt/pkg/fmtplugin"
//
//	func main() {
//		fmtplugin.Serve(fmtplugin.Plugin{
//			Info: fmtplugin.Info{
//				Name:      "shebangfmt",
//				Version:   "0.1.0",
//				ConfigKey: "shebang",
//			},
//			Matching: fmtplugin.FileMatching{
//				FileExtensions: []string{"sh", "bash", "py"},
//				FileNames:      []string{"Makefile"},
//			},
//			Format: func(path string, content []byte) []byte {
//				// pure transform over the file content
//				return content
//			},
//		})
//	}
//
// # Environment Variables
//
//	fmtplugin.IsPlugin()       // true if launched by a host framework
//	fmtplugin.IsMetadataMode() // true if the host asked for the manifest
package fmtplugin
