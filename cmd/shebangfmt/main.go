package main

import (
	"os"

	"github.com/hashbang/shebangfmt/internal/cmd/shebangfmt"
	"github.com/hashbang/shebangfmt/internal/plugin"
	"github.com/hashbang/shebangfmt/internal/shebang"
	"github.com/hashbang/shebangfmt/pkg/fmtplugin"
)

func main() {
	// When launched by a host formatting framework, speak the plugin
	// protocol on stdio instead of running the CLI.
	if fmtplugin.IsPlugin() {
		fmtplugin.Serve(fmtplugin.Plugin{
			Info:     plugin.DefaultInfo(),
			Matching: plugin.ResolveConfig(nil).FileMatching,
			Format: func(path string, content []byte) []byte {
				return shebang.Format(content)
			},
		})
		return
	}

	os.Exit(shebangfmt.Run(os.Args[1:]))
}
