// Package plugin assembles the shebangfmt plugin identity and configuration
// resolution on top of the fmtplugin protocol types.
package plugin

import (
	"fmt"
	"sort"

	"github.com/hashbang/shebangfmt/internal/filekind"
	"github.com/hashbang/shebangfmt/internal/version"
	"github.com/hashbang/shebangfmt/pkg/fmtplugin"
)

// ConfigKey is the key under which hosts namespace this plugin's config.
const ConfigKey = "shebang"

// DefaultInfo returns the plugin identity for this build.
func DefaultInfo() fmtplugin.Info {
	return fmtplugin.Info{
		Name:      "shebangfmt",
		Version:   version.Version,
		ConfigKey: ConfigKey,
		HelpURL:   "https://github.com/hashbang/shebangfmt",
	}
}

// ResolveConfig resolves the plugin configuration. The plugin recognizes no
// configuration keys: every provided key produces a diagnostic and is
// otherwise ignored, and the file matching info is always the built-in
// script file lists.
func ResolveConfig(config map[string]any) fmtplugin.ResolveResult {
	result := fmtplugin.ResolveResult{
		FileMatching: fmtplugin.FileMatching{
			FileExtensions: filekind.Extensions(),
			FileNames:      filekind.Filenames(),
		},
	}

	keys := make([]string, 0, len(config))
	for key := range config {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		result.Diagnostics = append(result.Diagnostics, fmtplugin.Diagnostic{
			PropertyName: key,
			Message:      fmt.Sprintf("unknown property %q", key),
		})
	}
	return result
}
